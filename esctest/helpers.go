// Copyright © 2026 Phosphor contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: esctest/helpers.go
// Summary: Assertion helpers and named sequence senders for the
//          compliance tests.

package esctest

import (
	"fmt"
	"strings"
	"testing"
)

// ESC is the escape character.
const ESC = "\x1b"

// --- Assertion Functions ---

// AssertEQ asserts that two values are equal.
func AssertEQ(t *testing.T, actual, expected interface{}) {
	t.Helper()
	if actual != expected {
		t.Errorf("Expected %v, got %v", expected, actual)
	}
}

// AssertTrue asserts that a value is true.
func AssertTrue(t *testing.T, value bool, message string) {
	t.Helper()
	if !value {
		if message != "" {
			t.Errorf("Assertion failed: %s", message)
		} else {
			t.Error("Assertion failed")
		}
	}
}

// AssertScreenCharsInRectEqual asserts that the characters in a
// rectangle match the expected strings, one per row.
func AssertScreenCharsInRectEqual(t *testing.T, d *Driver, rect Rect, expected []string) {
	t.Helper()
	actual := d.GetScreenCharsInRect(rect)

	if len(actual) != len(expected) {
		t.Errorf("Line count mismatch: expected %d lines, got %d lines", len(expected), len(actual))
		return
	}
	for i, expectedLine := range expected {
		if actual[i] != expectedLine {
			t.Errorf("Line %d: expected %q, got %q", i+1, expectedLine, actual[i])
		}
	}
}

// --- Escape Sequence Commands ---

// CUP (Cursor Position) moves the cursor to p.
func CUP(d *Driver, p Point) {
	d.WriteRaw(fmt.Sprintf("%s[%d;%dH", ESC, p.Y, p.X))
}

// CUU (Cursor Up) moves the cursor up n lines.
func CUU(d *Driver, n ...int) {
	count := 1
	if len(n) > 0 {
		count = n[0]
	}
	d.WriteRaw(fmt.Sprintf("%s[%dA", ESC, count))
}

// CUD (Cursor Down) moves the cursor down n lines.
func CUD(d *Driver, n ...int) {
	count := 1
	if len(n) > 0 {
		count = n[0]
	}
	d.WriteRaw(fmt.Sprintf("%s[%dB", ESC, count))
}

// CUF (Cursor Forward) moves the cursor right n columns.
func CUF(d *Driver, n ...int) {
	count := 1
	if len(n) > 0 {
		count = n[0]
	}
	d.WriteRaw(fmt.Sprintf("%s[%dC", ESC, count))
}

// CUB (Cursor Back) moves the cursor left n columns.
func CUB(d *Driver, n ...int) {
	count := 1
	if len(n) > 0 {
		count = n[0]
	}
	d.WriteRaw(fmt.Sprintf("%s[%dD", ESC, count))
}

// HVP (Horizontal and Vertical Position) is CUP with final 'f'.
func HVP(d *Driver, p Point) {
	d.WriteRaw(fmt.Sprintf("%s[%d;%df", ESC, p.Y, p.X))
}

// DCH (Delete Character) deletes n characters at the cursor.
func DCH(d *Driver, n ...int) {
	if len(n) == 0 {
		d.WriteRaw(fmt.Sprintf("%s[P", ESC))
	} else {
		d.WriteRaw(fmt.Sprintf("%s[%dP", ESC, n[0]))
	}
}

// DL (Delete Line) deletes n lines at the cursor.
func DL(d *Driver, n ...int) {
	if len(n) == 0 {
		d.WriteRaw(fmt.Sprintf("%s[M", ESC))
	} else {
		d.WriteRaw(fmt.Sprintf("%s[%dM", ESC, n[0]))
	}
}

// IL (Insert Line) inserts n blank lines at the cursor.
func IL(d *Driver, n ...int) {
	if len(n) == 0 {
		d.WriteRaw(fmt.Sprintf("%s[L", ESC))
	} else {
		d.WriteRaw(fmt.Sprintf("%s[%dL", ESC, n[0]))
	}
}

// ED (Erase in Display) erases part of the display.
func ED(d *Driver, n ...int) {
	if len(n) == 0 {
		d.WriteRaw(fmt.Sprintf("%s[J", ESC))
	} else {
		d.WriteRaw(fmt.Sprintf("%s[%dJ", ESC, n[0]))
	}
}

// EL (Erase in Line) erases part of the cursor's line.
func EL(d *Driver, n ...int) {
	if len(n) == 0 {
		d.WriteRaw(fmt.Sprintf("%s[K", ESC))
	} else {
		d.WriteRaw(fmt.Sprintf("%s[%dK", ESC, n[0]))
	}
}

// SGR (Select Graphic Rendition) applies the given attribute parameters.
func SGR(d *Driver, params ...int) {
	strs := make([]string, len(params))
	for i, p := range params {
		strs[i] = fmt.Sprintf("%d", p)
	}
	d.WriteRaw(fmt.Sprintf("%s[%sm", ESC, strings.Join(strs, ";")))
}

// IND (Index) moves the cursor down one line, scrolling at the bottom.
func IND(d *Driver) {
	d.WriteRaw(fmt.Sprintf("%sD", ESC))
}

// RI (Reverse Index) moves the cursor up one line, scrolling at the top.
func RI(d *Driver) {
	d.WriteRaw(fmt.Sprintf("%sM", ESC))
}

// NEL (Next Line) moves to column 1 of the next line.
func NEL(d *Driver) {
	d.WriteRaw(fmt.Sprintf("%sE", ESC))
}

// HTS (Horizontal Tab Set) sets a tab stop at the cursor column.
func HTS(d *Driver) {
	d.WriteRaw(fmt.Sprintf("%sH", ESC))
}

// TBC (Tab Clear) clears the tab at the cursor (0) or all tabs (3).
func TBC(d *Driver, n ...int) {
	if len(n) == 0 {
		d.WriteRaw(fmt.Sprintf("%s[g", ESC))
	} else {
		d.WriteRaw(fmt.Sprintf("%s[%dg", ESC, n[0]))
	}
}

// CR (Carriage Return) moves the cursor to column 1.
func CR(d *Driver) {
	d.WriteRaw("\r")
}

// LF (Line Feed) moves the cursor down one line.
func LF(d *Driver) {
	d.WriteRaw("\n")
}

// DECALN fills the screen with the adjustment pattern.
func DECALN(d *Driver) {
	d.WriteRaw(fmt.Sprintf("%s#8", ESC))
}

// DECSTBM sets the scrolling region; 0,0 resets the margins.
func DECSTBM(d *Driver, top, bottom int) {
	if top == 0 && bottom == 0 {
		d.WriteRaw(fmt.Sprintf("%s[r", ESC))
	} else {
		d.WriteRaw(fmt.Sprintf("%s[%d;%dr", ESC, top, bottom))
	}
}

// DECSC (Save Cursor) saves the cursor position and attributes.
func DECSC(d *Driver) {
	d.WriteRaw(fmt.Sprintf("%s7", ESC))
}

// DECRC (Restore Cursor) restores the saved cursor.
func DECRC(d *Driver) {
	d.WriteRaw(fmt.Sprintf("%s8", ESC))
}

// DECSET sets a DEC private mode.
func DECSET(d *Driver, mode int) {
	d.WriteRaw(fmt.Sprintf("%s[?%dh", ESC, mode))
}

// DECRESET resets a DEC private mode.
func DECRESET(d *Driver, mode int) {
	d.WriteRaw(fmt.Sprintf("%s[?%dl", ESC, mode))
}

// DSR (Device Status Report) requests report n.
func DSR(d *Driver, n int) {
	d.WriteRaw(fmt.Sprintf("%s[%dn", ESC, n))
}

// DA (Device Attributes) requests the primary attributes.
func DA(d *Driver) {
	d.WriteRaw(fmt.Sprintf("%s[c", ESC))
}

// RIS (Reset to Initial State) performs a hard reset.
func RIS(d *Driver) {
	d.WriteRaw(fmt.Sprintf("%sc", ESC))
}

// DEC private mode numbers the tests exercise.
const (
	DECCKM  = 1
	DECANM  = 2
	DECCOLM = 3
	DECSCNM = 5
	DECOM   = 6
	DECAWM  = 7
	DECARM  = 8
	DECTCEM = 25
)

// Blank returns a space, the reading of an unwritten cell.
func Blank() string {
	return " "
}

// Repeat returns s repeated n times.
func Repeat(s string, n int) string {
	return strings.Repeat(s, n)
}
