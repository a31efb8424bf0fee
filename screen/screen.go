// Copyright © 2026 Phosphor contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/screen.go
// Summary: The character-cell grid and the mutation primitives the
//          interpreter drives: warp, scroll, erase, putch, tabs.
// Notes: Every operation preserves the cursor and region invariants.

package screen

import (
	"github.com/mattn/go-runewidth"
)

// Direction names a cursor movement for MoveCursor.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Screen owns the grid, cursor, saved cursor, tab stops, scroll region,
// palette and mode flags. One Screen is owned by one interpreter; tests
// may construct as many as they like.
type Screen struct {
	width, height           int
	lines                   []Line
	tabStops                []bool
	scrollTop, scrollBottom int
	palette                 [PaletteSize]Color
	modes                   Mode

	Cursor Cursor
	Saved  Cursor
}

// New creates a screen of the given size with factory defaults.
func New(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	s.Reset()
	return s
}

// Width returns the number of columns.
func (s *Screen) Width() int { return s.width }

// Height returns the number of rows.
func (s *Screen) Height() int { return s.height }

// ScrollTop returns the inclusive top row of the scroll region.
func (s *Screen) ScrollTop() int { return s.scrollTop }

// ScrollBottom returns the inclusive bottom row of the scroll region.
func (s *Screen) ScrollBottom() int { return s.scrollBottom }

// Line returns row y for reading. The renderer must not mutate it.
func (s *Screen) Line(y int) *Line { return &s.lines[y] }

// Cell returns the cell at column x of row y.
func (s *Screen) Cell(x, y int) Cell { return s.lines[y].Cells[x] }

// Palette returns the live palette table.
func (s *Screen) Palette() *[PaletteSize]Color { return &s.palette }

// SetPaletteColor redefines palette entry n (OSC 4).
func (s *Screen) SetPaletteColor(n int, c Color) {
	if n < 0 || n >= PaletteSize {
		return
	}
	s.palette[n] = c
}

// Resize reallocates the grid. Tab stops return to every 8th column,
// the scroll region to the full height, the cursor to home. Attributes,
// modes and the palette are untouched.
func (s *Screen) Resize(width, height int) {
	s.width = width
	s.height = height
	s.lines = make([]Line, height)
	for y := range s.lines {
		s.lines[y] = newLine(width)
	}
	s.tabStops = make([]bool, width)
	for i := 8; i < width; i += 8 {
		s.tabStops[i] = true
	}
	s.scrollTop = 0
	s.scrollBottom = height - 1
	s.Cursor.X = 0
	s.Cursor.Y = 0
	s.Cursor.LastColumn = false
}

// Reset restores the terminal to its initial state: grid cleared, tab
// stops and modes to defaults, factory palette, cursor and saved cursor
// reinitialized. The result is indistinguishable from a fresh screen of
// the same size.
func (s *Screen) Reset() {
	for y := range s.lines {
		s.lines[y].clear()
	}
	s.tabStops = make([]bool, s.width)
	for i := 8; i < s.width; i += 8 {
		s.tabStops[i] = true
	}
	s.scrollTop = 0
	s.scrollBottom = s.height - 1
	s.modes = modeDefaults
	s.palette = DefaultPalette()
	s.Cursor = homeCursor()
	s.Saved = s.Cursor
}

// WarpTo moves the cursor to (x, y), clamping into bounds. Under DECOM
// the vertical bounds are the scroll region. Clears the wrap latch.
func (s *Screen) WarpTo(x, y int) {
	minY, maxY := 0, s.height-1
	if s.Mode(DECOM) {
		minY, maxY = s.scrollTop, s.scrollBottom
	}

	if x < 0 {
		x = 0
	} else if x >= s.width {
		x = s.width - 1
	}
	if y < minY {
		y = minY
	} else if y > maxY {
		y = maxY
	}

	s.Cursor.X = x
	s.Cursor.Y = y
	s.Cursor.LastColumn = false
}

// MoveCursor moves the cursor n cells in the given direction, clamping
// at the screen (or region, under DECOM) edges.
func (s *Screen) MoveCursor(dir Direction, n int) {
	switch dir {
	case Up:
		s.WarpTo(s.Cursor.X, s.Cursor.Y-n)
	case Down:
		s.WarpTo(s.Cursor.X, s.Cursor.Y+n)
	case Left:
		s.WarpTo(s.Cursor.X-n, s.Cursor.Y)
	case Right:
		s.WarpTo(s.Cursor.X+n, s.Cursor.Y)
	}
}

// Newline moves the cursor down one row, scrolling the region up when it
// sits on the region's bottom row. Column handling is the caller's
// business (LNM).
func (s *Screen) Newline() {
	s.Cursor.LastColumn = false
	if s.Cursor.Y < s.scrollBottom {
		s.Cursor.Y++
	} else {
		s.ScrollUp()
	}
}

// RevLine moves the cursor up one row, scrolling the region down when it
// sits on the region's top row.
func (s *Screen) RevLine() {
	s.Cursor.LastColumn = false
	if s.Cursor.Y > s.scrollTop {
		s.Cursor.Y--
	} else {
		s.ScrollDown()
	}
}

// CarriageReturn moves the cursor to column 0 and releases the wrap latch.
func (s *Screen) CarriageReturn() {
	s.Cursor.X = 0
	s.Cursor.LastColumn = false
}

// NextLine is NEL: carriage return plus Newline.
func (s *Screen) NextLine() {
	s.Cursor.X = 0
	s.Newline()
}

// ScrollUp shifts the scroll region up one row. The top row of the
// region leaves; the bottom row becomes blank cells carrying the current
// cursor attributes.
func (s *Screen) ScrollUp() {
	s.scrollLines(s.scrollTop, s.scrollBottom, 1)
}

// ScrollDown shifts the scroll region down one row.
func (s *Screen) ScrollDown() {
	s.scrollLines(s.scrollTop, s.scrollBottom, -1)
}

// scrollLines shifts rows [top, bottom] by one: up when dir > 0, down
// otherwise. Vacated rows are blank single-width rows in the cursor's
// colors.
func (s *Screen) scrollLines(top, bottom, dir int) {
	if dir > 0 {
		leaving := s.lines[top]
		copy(s.lines[top:bottom], s.lines[top+1:bottom+1])
		s.lines[bottom] = leaving
		s.blankLine(bottom)
	} else {
		leaving := s.lines[bottom]
		copy(s.lines[top+1:bottom+1], s.lines[top:bottom])
		s.lines[top] = leaving
		s.blankLine(top)
	}
}

func (s *Screen) blankLine(y int) {
	l := &s.lines[y]
	l.Dimensions = SingleWidth
	blank := s.blankCell()
	for i := range l.Cells {
		l.Cells[i] = blank
	}
}

// blankCell is what erases and scrolls fill with: an empty cell wearing
// the cursor's current attributes.
func (s *Screen) blankCell() Cell {
	c := s.Cursor.Attrs
	c.CodePoint = 0
	return c
}

// InsertLine opens n blank rows at the cursor, pushing rows below it
// toward the region bottom. No-op outside the scroll region.
func (s *Screen) InsertLine(n int) {
	if s.Cursor.Y < s.scrollTop || s.Cursor.Y > s.scrollBottom {
		return
	}
	for i := 0; i < n && i <= s.scrollBottom-s.Cursor.Y; i++ {
		s.scrollLines(s.Cursor.Y, s.scrollBottom, -1)
	}
	s.Cursor.LastColumn = false
}

// DeleteLine removes n rows at the cursor, pulling rows below it up and
// opening blanks at the region bottom. No-op outside the scroll region.
func (s *Screen) DeleteLine(n int) {
	if s.Cursor.Y < s.scrollTop || s.Cursor.Y > s.scrollBottom {
		return
	}
	for i := 0; i < n && i <= s.scrollBottom-s.Cursor.Y; i++ {
		s.scrollLines(s.Cursor.Y, s.scrollBottom, 1)
	}
	s.Cursor.LastColumn = false
}

// Putch writes one code point at the cursor with DEC Autowrap semantics:
// a latched wrap performs CR+LF first, the cell takes the cursor's
// attributes, and the advance accounts for wide glyphs and double-width
// lines.
func (s *Screen) Putch(cp rune) {
	if s.Cursor.LastColumn {
		s.Cursor.X = 0
		s.Newline()
	}

	line := &s.lines[s.Cursor.Y]

	// Double-width rows expose half the columns.
	x := s.Cursor.X
	if line.Dimensions != SingleWidth {
		x /= 2
	}

	cell := &line.Cells[x]
	*cell = s.Cursor.Attrs
	if !s.Cursor.Conceal {
		cell.CodePoint = s.Cursor.Translate(cp)
	}

	inc := 1
	if runewidth.RuneWidth(cp) >= 2 {
		inc = 2
	}
	if line.Dimensions != SingleWidth {
		inc *= 2
	}

	if s.Cursor.X+inc >= s.width {
		s.Cursor.LastColumn = s.Mode(DECAWM)
	} else {
		s.Cursor.X += inc
		s.Cursor.LastColumn = false
	}
}

// Tab advances the cursor to the next tab stop, or the last column when
// none remains.
func (s *Screen) Tab() {
	x := s.Cursor.X + 1
	for x < s.width-1 && !s.tabStops[x] {
		x++
	}
	s.WarpTo(x, s.Cursor.Y)
}

// SetTab sets a tab stop at the cursor column (HTS).
func (s *Screen) SetTab() {
	s.tabStops[s.Cursor.X] = true
}

// ClearTab removes the tab stop at the cursor column (TBC 0).
func (s *Screen) ClearTab() {
	s.tabStops[s.Cursor.X] = false
}

// ClearAllTabs removes every tab stop (TBC 3).
func (s *Screen) ClearAllTabs() {
	for i := range s.tabStops {
		s.tabStops[i] = false
	}
}

// TabStop reports whether column x carries a tab stop.
func (s *Screen) TabStop(x int) bool {
	return x >= 0 && x < s.width && s.tabStops[x]
}

// SetScrollRegion sets the inclusive scroll rows. Pairs with top >= bottom
// are ignored. On success the cursor warps home (region home under DECOM).
func (s *Screen) SetScrollRegion(top, bottom int) {
	if top < 0 {
		top = 0
	}
	if bottom > s.height-1 {
		bottom = s.height - 1
	}
	if top >= bottom {
		return
	}
	s.scrollTop = top
	s.scrollBottom = bottom
	if s.Mode(DECOM) {
		s.WarpTo(0, s.scrollTop)
	} else {
		s.WarpTo(0, 0)
	}
}

// DeleteCharacter drops n cells at the cursor, shifting the rest of the
// row left and zero-filling the tail.
func (s *Screen) DeleteCharacter(n int) {
	line := &s.lines[s.Cursor.Y]
	if n < 1 {
		n = 1
	}
	if max := s.width - s.Cursor.X; n > max {
		n = max
	}
	copy(line.Cells[s.Cursor.X:], line.Cells[s.Cursor.X+n:])
	for i := s.width - n; i < s.width; i++ {
		line.Cells[i] = Cell{}
	}
	s.Cursor.LastColumn = false
}

// SetLineDimensions applies DECSWL/DECDWL/DECDHL to the cursor's row.
func (s *Screen) SetLineDimensions(d LineDimensions) {
	s.lines[s.Cursor.Y].Dimensions = d
}

// ScreenAlign fills the grid with "E" for the DECALN adjustment pattern.
func (s *Screen) ScreenAlign() {
	for y := range s.lines {
		for x := range s.lines[y].Cells {
			s.lines[y].Cells[x].CodePoint = 'E'
		}
	}
}

// SaveCursor records the full cursor block (DECSC).
func (s *Screen) SaveCursor() {
	s.Saved = s.Cursor
}

// RestoreCursor reinstates the saved cursor block (DECRC), clamping the
// position in case the screen shrank since the save.
func (s *Screen) RestoreCursor() {
	s.Cursor = s.Saved
	if s.Cursor.X >= s.width {
		s.Cursor.X = s.width - 1
	}
	if s.Cursor.Y >= s.height {
		s.Cursor.Y = s.height - 1
	}
	if s.Cursor.LastColumn && (!s.Mode(DECAWM) || s.Cursor.X != s.width-1) {
		s.Cursor.LastColumn = false
	}
}
