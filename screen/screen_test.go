// Copyright © 2026 Phosphor contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/screen_test.go
// Summary: Grid, cursor and scroll primitives.

package screen

import "testing"

func write(s *Screen, text string) {
	for _, r := range text {
		s.Putch(r)
	}
}

func rowText(s *Screen, y, width int) string {
	text := make([]rune, width)
	for x := 0; x < width; x++ {
		text[x] = s.Cell(x, y).Rune()
	}
	return string(text)
}

func TestNewDefaults(t *testing.T) {
	s := New(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d", s.Width(), s.Height())
	}
	if s.ScrollTop() != 0 || s.ScrollBottom() != 23 {
		t.Errorf("region = [%d,%d], want [0,23]", s.ScrollTop(), s.ScrollBottom())
	}
	if s.Cursor.X != 0 || s.Cursor.Y != 0 {
		t.Errorf("cursor = (%d,%d), want home", s.Cursor.X, s.Cursor.Y)
	}
	for x := 0; x < 80; x++ {
		want := x > 0 && x%8 == 0
		if s.TabStop(x) != want {
			t.Errorf("tab stop at %d = %v, want %v", x, s.TabStop(x), want)
		}
	}
	if !s.Mode(DECANM) || !s.Mode(DECARM) || !s.Mode(DECTCEM) {
		t.Error("power-on modes missing")
	}
	if s.Mode(DECOM) || s.Mode(LNM) {
		t.Error("unexpected power-on modes set")
	}
}

func TestPutchAdvancesAndCopiesAttrs(t *testing.T) {
	s := New(80, 24)
	s.Cursor.Attrs.Intensity = IntensityBold
	write(s, "hi")

	if got := rowText(s, 0, 2); got != "hi" {
		t.Errorf("row 0 = %q", got)
	}
	if s.Cell(0, 0).Intensity != IntensityBold {
		t.Error("attributes not copied into cell")
	}
	if s.Cursor.X != 2 {
		t.Errorf("cursor X = %d, want 2", s.Cursor.X)
	}
}

func TestPutchWideRune(t *testing.T) {
	s := New(80, 24)
	write(s, "楽x")

	if s.Cell(0, 0).Rune() != '楽' {
		t.Errorf("cell 0 = %q", s.Cell(0, 0).Rune())
	}
	if s.Cell(2, 0).Rune() != 'x' {
		t.Errorf("cell 2 = %q, want x after two-column glyph", s.Cell(2, 0).Rune())
	}
}

func TestDeferredWrapLatch(t *testing.T) {
	s := New(10, 5)
	s.WarpTo(9, 0)
	s.Putch('X')

	if !s.Cursor.LastColumn {
		t.Fatal("latch should be set in the last column")
	}
	if s.Cursor.X != 9 {
		t.Errorf("cursor X = %d, want 9", s.Cursor.X)
	}

	s.Putch('Y')
	if s.Cursor.Y != 1 || s.Cursor.X != 1 {
		t.Errorf("cursor = (%d,%d), want (1,1)", s.Cursor.X, s.Cursor.Y)
	}
	if s.Cell(0, 1).Rune() != 'Y' {
		t.Error("wrapped glyph missing")
	}
}

func TestLatchClearedByMotionAndCR(t *testing.T) {
	s := New(10, 5)
	s.WarpTo(9, 0)
	s.Putch('X')
	s.CarriageReturn()
	if s.Cursor.LastColumn {
		t.Error("CR should release the latch")
	}

	s.WarpTo(9, 0)
	s.Putch('X')
	s.WarpTo(5, 0)
	if s.Cursor.LastColumn {
		t.Error("addressing should release the latch")
	}
}

func TestNoWrapWithoutDECAWM(t *testing.T) {
	s := New(10, 5)
	s.SetMode(DECAWM, false)
	s.WarpTo(9, 0)
	s.Putch('X')
	s.Putch('Y')

	if s.Cursor.Y != 0 || s.Cursor.X != 9 {
		t.Errorf("cursor = (%d,%d), want pinned at (9,0)", s.Cursor.X, s.Cursor.Y)
	}
	if s.Cell(9, 0).Rune() != 'Y' {
		t.Error("overprint expected in last column")
	}
}

func TestScrollUpRecyclesBottomRow(t *testing.T) {
	s := New(10, 3)
	write(s, "aaa")
	s.WarpTo(0, 1)
	write(s, "bbb")
	s.WarpTo(0, 2)
	write(s, "ccc")

	s.ScrollUp()

	if got := rowText(s, 0, 3); got != "bbb" {
		t.Errorf("row 0 = %q, want bbb", got)
	}
	if got := rowText(s, 1, 3); got != "ccc" {
		t.Errorf("row 1 = %q, want ccc", got)
	}
	if got := rowText(s, 2, 3); got != "   " {
		t.Errorf("row 2 = %q, want blank", got)
	}
}

func TestScrollBlankUsesCursorColors(t *testing.T) {
	s := New(10, 3)
	s.Cursor.Attrs.Background = PaletteColor(4)
	s.ScrollUp()

	if s.Cell(0, 2).Background != PaletteColor(4) {
		t.Error("vacated row should wear cursor background")
	}
	if s.Cell(0, 2).Rune() != ' ' {
		t.Error("vacated row should be empty")
	}
}

func TestScrollRespectsRegion(t *testing.T) {
	s := New(10, 5)
	write(s, "top")
	s.WarpTo(0, 4)
	write(s, "bot")
	s.SetScrollRegion(1, 3)

	s.WarpTo(0, 3)
	s.Newline() // at region bottom: scrolls rows 1..3 only

	if got := rowText(s, 0, 3); got != "top" {
		t.Errorf("row 0 = %q, want top untouched", got)
	}
	if got := rowText(s, 4, 3); got != "bot" {
		t.Errorf("row 4 = %q, want bot untouched", got)
	}
}

func TestScrollDownAtRegionTop(t *testing.T) {
	s := New(10, 5)
	s.SetScrollRegion(1, 3)
	s.WarpTo(0, 1)
	write(s, "xx")
	s.WarpTo(0, 1)
	s.RevLine()

	if got := rowText(s, 2, 2); got != "xx" {
		t.Errorf("row 2 = %q, want xx pushed down", got)
	}
	if s.Cursor.Y != 1 {
		t.Errorf("cursor Y = %d, want 1", s.Cursor.Y)
	}
}

func TestInsertDeleteLineOutsideRegionIgnored(t *testing.T) {
	s := New(10, 5)
	s.WarpTo(0, 4)
	write(s, "keep")
	s.SetScrollRegion(1, 3)
	s.WarpTo(0, 4)
	s.InsertLine(2)
	s.DeleteLine(2)

	if got := rowText(s, 4, 4); got != "keep" {
		t.Errorf("row 4 = %q, want keep", got)
	}
}

func TestWarpToClampsUnderOriginMode(t *testing.T) {
	s := New(10, 10)
	s.SetScrollRegion(2, 6)
	s.SetMode(DECOM, true)

	s.WarpTo(0, 0)
	if s.Cursor.Y != 2 {
		t.Errorf("Y = %d, want clamped to region top", s.Cursor.Y)
	}
	s.WarpTo(0, 9)
	if s.Cursor.Y != 6 {
		t.Errorf("Y = %d, want clamped to region bottom", s.Cursor.Y)
	}
}

func TestTabAdvancesToNextStop(t *testing.T) {
	s := New(80, 24)
	s.Tab()
	if s.Cursor.X != 8 {
		t.Errorf("X = %d, want 8", s.Cursor.X)
	}
	s.ClearAllTabs()
	s.Tab()
	if s.Cursor.X != 79 {
		t.Errorf("X = %d, want last column with no stops", s.Cursor.X)
	}
}

func TestDeleteCharacterShiftsAndZeroFills(t *testing.T) {
	s := New(10, 2)
	write(s, "abcdefghij")
	s.CarriageReturn()
	s.Cursor.LastColumn = false
	s.WarpTo(2, 0)
	s.DeleteCharacter(3)

	if got := rowText(s, 0, 10); got != "abfghij   " {
		t.Errorf("row 0 = %q", got)
	}
}

func TestEraseDisplayFillsWithCursorAttrs(t *testing.T) {
	s := New(10, 3)
	write(s, "junk")
	s.Cursor.Attrs.Background = PaletteColor(2)
	s.WarpTo(0, 0)
	s.EraseDisplay(EraseAll)

	if s.Cell(0, 0).Rune() != ' ' {
		t.Error("content should be erased")
	}
	if s.Cell(5, 1).Background != PaletteColor(2) {
		t.Error("erase should paint cursor background")
	}
}

func TestEraseFullLineResetsDimensions(t *testing.T) {
	s := New(10, 3)
	s.SetLineDimensions(DoubleWidth)
	s.EraseLine(EraseAll)
	if s.Line(0).Dimensions != SingleWidth {
		t.Error("full erase should reset line dimensions")
	}

	s.SetLineDimensions(DoubleWidth)
	s.WarpTo(5, 0)
	s.EraseLine(EraseToEnd)
	if s.Line(0).Dimensions != DoubleWidth {
		t.Error("partial erase should keep line dimensions")
	}
}

func TestResetMatchesFreshScreen(t *testing.T) {
	s := New(20, 10)
	write(s, "dirty")
	s.SetMode(DECOM, true)
	s.SetScrollRegion(2, 7)
	s.SetPaletteColor(3, Color{R: 1, G: 2, B: 3})
	s.SetTab()
	s.Cursor.Attrs.Negative = true
	s.SaveCursor()

	s.Reset()
	fresh := New(20, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			if s.Cell(x, y) != fresh.Cell(x, y) {
				t.Fatalf("cell (%d,%d) differs after reset", x, y)
			}
		}
	}
	if s.Cursor != fresh.Cursor || s.Saved != fresh.Saved {
		t.Error("cursor state differs after reset")
	}
	if s.ScrollTop() != fresh.ScrollTop() || s.ScrollBottom() != fresh.ScrollBottom() {
		t.Error("region differs after reset")
	}
	if *s.Palette() != *fresh.Palette() {
		t.Error("palette differs after reset")
	}
	for x := 0; x < 20; x++ {
		if s.TabStop(x) != fresh.TabStop(x) {
			t.Errorf("tab stop %d differs after reset", x)
		}
	}
	if s.Mode(DECOM) {
		t.Error("origin mode survived reset")
	}
}

func TestRestoreCursorClampsAfterShrink(t *testing.T) {
	s := New(132, 24)
	s.WarpTo(100, 10)
	s.SaveCursor()
	s.Resize(80, 24)
	s.RestoreCursor()

	if s.Cursor.X != 79 {
		t.Errorf("X = %d, want clamped to 79", s.Cursor.X)
	}
}

func TestScreenAlignKeepsAttributes(t *testing.T) {
	s := New(10, 3)
	s.Cursor.Attrs.Negative = true
	s.Putch('x')
	s.ScreenAlign()

	if s.Cell(0, 0).Rune() != 'E' {
		t.Error("pattern fill missing")
	}
	if !s.Cell(0, 0).Negative {
		t.Error("alignment fill should not rewrite attributes")
	}
}
