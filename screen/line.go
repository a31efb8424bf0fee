// Copyright © 2026 Phosphor contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/line.go
// Summary: Per-line dimension attribute and row storage.

package screen

// LineDimensions is the DECSWL/DECDWL/DECDHL attribute of a row.
//
// DoubleHeightTop and DoubleHeightBottom must sort after DoubleWidth so
// renderers can test dim > DoubleWidth for "double height".
type LineDimensions int

const (
	SingleWidth LineDimensions = iota
	DoubleWidth
	DoubleHeightTop
	DoubleHeightBottom
)

func (d LineDimensions) String() string {
	switch d {
	case SingleWidth:
		return "single-width"
	case DoubleWidth:
		return "double-width"
	case DoubleHeightTop:
		return "double-height-top"
	case DoubleHeightBottom:
		return "double-height-bottom"
	}
	return "unknown"
}

// Line is a screen row: its cells plus the line dimension attribute.
type Line struct {
	Dimensions LineDimensions
	Cells      []Cell
}

func newLine(width int) Line {
	return Line{Cells: make([]Cell, width)}
}

func (l *Line) clear() {
	l.Dimensions = SingleWidth
	for i := range l.Cells {
		l.Cells[i] = Cell{}
	}
}
