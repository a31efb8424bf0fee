// Copyright © 2026 Phosphor contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: esctest/driver.go
// Summary: Headless terminal driver: feeds byte streams to an interpreter
//          and queries screen state for the compliance tests.

// Package esctest checks emulation behavior against the classic VT100 and
// ANSI X3.64 sequences, in the spirit of the esctest2 suite by George
// Nachman and Thomas E. Dickey (https://github.com/ThomasDickey/esctest2).
// The tests run headless and deterministic, no pty or renderer involved.
package esctest

import (
	"bytes"

	"github.com/phosphorterm/phosphor/screen"
	"github.com/phosphorterm/phosphor/vtinterp"
)

// Driver is a headless terminal instance. Writes go through the real
// interpreter; responses the terminal would transmit accumulate in an
// in-memory sink.
type Driver struct {
	scr    *screen.Screen
	interp *vtinterp.Interpreter
	sink   bytes.Buffer
	width  int
	height int
}

// NewDriver creates a headless terminal of the given size.
func NewDriver(width, height int) *Driver {
	d := &Driver{width: width, height: height}
	d.scr = screen.New(width, height)
	d.interp = vtinterp.New(d.scr, &d.sink)
	return d
}

// Write sends text to the terminal. Escape sequences in the text are
// interpreted; there is no separate plain-text path.
func (d *Driver) Write(text string) {
	d.interp.Feed([]byte(text))
}

// WriteRaw is Write under the name the sequence senders use.
func (d *Driver) WriteRaw(data string) {
	d.interp.Feed([]byte(data))
}

// Output drains and returns everything the terminal transmitted since
// the last call (DA, DSR and ENQ responses).
func (d *Driver) Output() string {
	out := d.sink.String()
	d.sink.Reset()
	return out
}

// Screen exposes the model for assertions that have no sequence-level
// surface (modes, palette, line dimensions).
func (d *Driver) Screen() *screen.Screen {
	return d.scr
}

// GetCursorPosition returns the cursor, 1-indexed. Under origin mode the
// position is relative to the scroll region, matching what DSR 6 reports.
func (d *Driver) GetCursorPosition() Point {
	x, y := d.scr.Cursor.X, d.scr.Cursor.Y
	if d.scr.Mode(screen.DECOM) {
		y -= d.scr.ScrollTop()
	}
	return NewPoint(x+1, y+1)
}

// GetScreenSize returns the terminal dimensions in cells.
func (d *Driver) GetScreenSize() Size {
	return NewSize(d.scr.Width(), d.scr.Height())
}

// GetScreenCharsInRect returns the characters inside rect, one string
// per row. Unwritten cells read as spaces.
func (d *Driver) GetScreenCharsInRect(rect Rect) []string {
	lines := make([]string, 0, rect.Height())
	for y := rect.Top; y <= rect.Bottom; y++ {
		if y < 1 || y > d.scr.Height() {
			lines = append(lines, "")
			continue
		}
		line := ""
		for x := rect.Left; x <= rect.Right; x++ {
			if x < 1 || x > d.scr.Width() {
				line += " "
				continue
			}
			line += string(d.GetScreenChar(NewPoint(x, y)))
		}
		lines = append(lines, line)
	}
	return lines
}

// GetScreenChar returns the character at p, 1-indexed.
func (d *Driver) GetScreenChar(p Point) rune {
	if p.X < 1 || p.X > d.scr.Width() || p.Y < 1 || p.Y > d.scr.Height() {
		return ' '
	}
	return d.scr.Cell(p.X-1, p.Y-1).Rune()
}

// GetCellAt returns a copy of the cell at p, for attribute assertions.
func (d *Driver) GetCellAt(p Point) screen.Cell {
	return d.scr.Cell(p.X-1, p.Y-1)
}
