// Copyright © 2026 Phosphor contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/erase.go
// Summary: ED/EL erase primitives over the grid.

package screen

// EraseMode selects which part of the display or line an erase covers.
type EraseMode int

const (
	EraseToEnd EraseMode = iota
	EraseToStart
	EraseAll
)

// EraseDisplay clears part of the screen relative to the cursor. Cleared
// cells take the cursor's current attributes; rows cleared end-to-end
// drop back to single width.
func (s *Screen) EraseDisplay(mode EraseMode) {
	switch mode {
	case EraseToEnd:
		s.eraseInLine(s.Cursor.Y, s.Cursor.X, s.width-1)
		for y := s.Cursor.Y + 1; y < s.height; y++ {
			s.eraseInLine(y, 0, s.width-1)
		}
	case EraseToStart:
		for y := 0; y < s.Cursor.Y; y++ {
			s.eraseInLine(y, 0, s.width-1)
		}
		s.eraseInLine(s.Cursor.Y, 0, s.Cursor.X)
	case EraseAll:
		for y := 0; y < s.height; y++ {
			s.eraseInLine(y, 0, s.width-1)
		}
	}
}

// EraseLine clears part of the cursor's row.
func (s *Screen) EraseLine(mode EraseMode) {
	switch mode {
	case EraseToEnd:
		s.eraseInLine(s.Cursor.Y, s.Cursor.X, s.width-1)
	case EraseToStart:
		s.eraseInLine(s.Cursor.Y, 0, s.Cursor.X)
	case EraseAll:
		s.eraseInLine(s.Cursor.Y, 0, s.width-1)
	}
}

// eraseInLine blanks columns [from, to] of row y. A full-width erase
// also resets the row's dimensions.
func (s *Screen) eraseInLine(y, from, to int) {
	line := &s.lines[y]
	blank := s.blankCell()
	for x := from; x <= to && x < s.width; x++ {
		line.Cells[x] = blank
	}
	if from == 0 && to >= s.width-1 {
		line.Dimensions = SingleWidth
	}
}
