// Copyright © 2026 Phosphor contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: esctest/sgr_test.go
// Summary: SGR attribute compliance.

package esctest

import (
	"testing"

	"github.com/phosphorterm/phosphor/screen"
)

// Test_SGR_BasicAttributes tests that rendition flags land on the cells
// written under them.
func Test_SGR_BasicAttributes(t *testing.T) {
	d := NewDriver(80, 24)
	SGR(d, 1, 4, 5, 7)
	d.Write("X")

	cell := d.GetCellAt(NewPoint(1, 1))
	AssertEQ(t, cell.Intensity, screen.IntensityBold)
	AssertEQ(t, cell.Underline, screen.UnderlineSingle)
	AssertEQ(t, cell.Blink, screen.BlinkSlow)
	AssertEQ(t, cell.Negative, true)
}

// Test_SGR_ResetRestoresDefaults tests that SGR 0 returns to the plain
// rendition.
func Test_SGR_ResetRestoresDefaults(t *testing.T) {
	d := NewDriver(80, 24)
	SGR(d, 1, 7, 33, 44)
	SGR(d, 0)
	d.Write("X")

	cell := d.GetCellAt(NewPoint(1, 1))
	AssertEQ(t, cell.Intensity, screen.IntensityNormal)
	AssertEQ(t, cell.Negative, false)
	AssertEQ(t, cell.Foreground, screen.PaletteColor(7))
	AssertEQ(t, cell.Background, screen.PaletteColor(0))
}

// Test_SGR_EmptyIsReset tests that CSI m means SGR 0.
func Test_SGR_EmptyIsReset(t *testing.T) {
	d := NewDriver(80, 24)
	SGR(d, 1)
	d.WriteRaw(ESC + "[m")
	d.Write("X")

	cell := d.GetCellAt(NewPoint(1, 1))
	AssertEQ(t, cell.Intensity, screen.IntensityNormal)
}

// Test_SGR_AnsiColors tests the 30-37/40-47 color parameters.
func Test_SGR_AnsiColors(t *testing.T) {
	d := NewDriver(80, 24)
	SGR(d, 31, 42)
	d.Write("X")

	cell := d.GetCellAt(NewPoint(1, 1))
	AssertEQ(t, cell.Foreground, screen.PaletteColor(1))
	AssertEQ(t, cell.Background, screen.PaletteColor(2))
}

// Test_SGR_BrightColors tests the aixterm 90-97/100-107 range.
func Test_SGR_BrightColors(t *testing.T) {
	d := NewDriver(80, 24)
	SGR(d, 94, 101)
	d.Write("X")

	cell := d.GetCellAt(NewPoint(1, 1))
	AssertEQ(t, cell.Foreground, screen.PaletteColor(12))
	AssertEQ(t, cell.Background, screen.PaletteColor(9))
}

// Test_SGR_Palette256 tests SGR 38;5;N / 48;5;N indexed color.
func Test_SGR_Palette256(t *testing.T) {
	d := NewDriver(80, 24)
	SGR(d, 38, 5, 196, 48, 5, 22)
	d.Write("X")

	cell := d.GetCellAt(NewPoint(1, 1))
	AssertEQ(t, cell.Foreground, screen.PaletteColor(196))
	AssertEQ(t, cell.Background, screen.PaletteColor(22))
}

// Test_SGR_Truecolor tests SGR 38;2;R;G;B direct color.
func Test_SGR_Truecolor(t *testing.T) {
	d := NewDriver(80, 24)
	SGR(d, 38, 2, 250, 100, 25)
	d.Write("X")

	cell := d.GetCellAt(NewPoint(1, 1))
	AssertEQ(t, cell.Foreground, screen.RGBColor(250, 100, 25))
}

// Test_SGR_TruncatedExtendedColorKeepsEarlierParams tests that an
// incomplete 38 keeps the attributes set before it.
func Test_SGR_TruncatedExtendedColorKeepsEarlierParams(t *testing.T) {
	d := NewDriver(80, 24)
	SGR(d, 1, 38, 5)
	d.Write("X")

	cell := d.GetCellAt(NewPoint(1, 1))
	AssertEQ(t, cell.Intensity, screen.IntensityBold)
	AssertEQ(t, cell.Foreground, screen.PaletteColor(7))
}

// Test_SGR_ClearCounterparts tests the 2x off parameters.
func Test_SGR_ClearCounterparts(t *testing.T) {
	d := NewDriver(80, 24)
	SGR(d, 1, 3, 4, 5, 7, 9)
	SGR(d, 22, 23, 24, 25, 27, 29)
	d.Write("X")

	cell := d.GetCellAt(NewPoint(1, 1))
	expected := screen.DefaultAttrs()
	expected.CodePoint = 'X'
	AssertEQ(t, cell, expected)
}

// Test_SGR_ConcealSuppressesGlyphs tests that SGR 8 leaves blank cells
// in the cursor's colors until SGR 28.
func Test_SGR_ConcealSuppressesGlyphs(t *testing.T) {
	d := NewDriver(80, 24)
	SGR(d, 8)
	d.Write("secret")
	SGR(d, 28)
	d.Write("!")

	AssertScreenCharsInRectEqual(t, d, NewRect(1, 1, 7, 1),
		[]string{"      !"})
}

// Test_SGR_AppliesToErase tests that erase fills carry the live
// background.
func Test_SGR_AppliesToErase(t *testing.T) {
	d := NewDriver(80, 24)
	SGR(d, 41)
	ED(d, 2)

	cell := d.GetCellAt(NewPoint(40, 12))
	AssertEQ(t, cell.Background, screen.PaletteColor(1))
}
