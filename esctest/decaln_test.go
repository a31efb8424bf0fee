// Copyright © 2026 Phosphor contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: esctest/decaln_test.go
// Summary: DECALN and DECSWL/DECDWL/DECDHL compliance.

package esctest

import (
	"testing"

	"github.com/phosphorterm/phosphor/screen"
)

// Test_DECALN_FillsScreen tests the adjustment pattern fill.
func Test_DECALN_FillsScreen(t *testing.T) {
	d := NewDriver(80, 24)
	DECALN(d)

	AssertEQ(t, d.GetScreenChar(NewPoint(1, 1)), 'E')
	AssertEQ(t, d.GetScreenChar(NewPoint(80, 1)), 'E')
	AssertEQ(t, d.GetScreenChar(NewPoint(1, 24)), 'E')
	AssertEQ(t, d.GetScreenChar(NewPoint(80, 24)), 'E')
	AssertEQ(t, d.GetScreenChar(NewPoint(40, 12)), 'E')
}

// Test_DECDWL_MarksLineDoubleWidth tests the per-line dimension flag.
func Test_DECDWL_MarksLineDoubleWidth(t *testing.T) {
	d := NewDriver(80, 24)
	CUP(d, NewPoint(1, 3))
	d.WriteRaw(ESC + "#6")

	AssertEQ(t, d.Screen().Line(2).Dimensions, screen.DoubleWidth)
	AssertEQ(t, d.Screen().Line(1).Dimensions, screen.SingleWidth)
}

// Test_DECDHL_MarksTopAndBottomHalves tests the double-height pair.
func Test_DECDHL_MarksTopAndBottomHalves(t *testing.T) {
	d := NewDriver(80, 24)
	CUP(d, NewPoint(1, 5))
	d.WriteRaw(ESC + "#3")
	CUP(d, NewPoint(1, 6))
	d.WriteRaw(ESC + "#4")

	AssertEQ(t, d.Screen().Line(4).Dimensions, screen.DoubleHeightTop)
	AssertEQ(t, d.Screen().Line(5).Dimensions, screen.DoubleHeightBottom)
}

// Test_DoubleWidth_HalvesColumns tests that a double-width row holds
// half as many characters and advances two columns per glyph.
func Test_DoubleWidth_HalvesColumns(t *testing.T) {
	d := NewDriver(80, 24)
	d.WriteRaw(ESC + "#6")
	d.Write("AB")

	position := d.GetCursorPosition()
	AssertEQ(t, position.X, 5)

	// Storage is packed at the start of the row.
	AssertEQ(t, d.Screen().Cell(0, 0).Rune(), 'A')
	AssertEQ(t, d.Screen().Cell(1, 0).Rune(), 'B')
}

// Test_ED_ResetsLineDimensions tests that a full-line erase drops the
// row back to single width.
func Test_ED_ResetsLineDimensions(t *testing.T) {
	d := NewDriver(80, 24)
	d.WriteRaw(ESC + "#6")
	ED(d, 2)
	AssertEQ(t, d.Screen().Line(0).Dimensions, screen.SingleWidth)
}
