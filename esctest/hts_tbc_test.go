// Copyright © 2026 Phosphor contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: esctest/hts_tbc_test.go
// Summary: Tab stop compliance: HT, HTS, TBC.

package esctest

import "testing"

// Test_HT_DefaultStopsEveryEight tests the power-on tab ruler.
func Test_HT_DefaultStopsEveryEight(t *testing.T) {
	d := NewDriver(80, 24)
	d.WriteRaw("\t")
	AssertEQ(t, d.GetCursorPosition().X, 9)
	d.WriteRaw("\t")
	AssertEQ(t, d.GetCursorPosition().X, 17)
}

// Test_HT_StopsAtLastColumn tests that tabbing past the final stop parks
// at the last column instead of wrapping.
func Test_HT_StopsAtLastColumn(t *testing.T) {
	d := NewDriver(80, 24)
	for i := 0; i < 12; i++ {
		d.WriteRaw("\t")
	}
	position := d.GetCursorPosition()
	AssertEQ(t, position.X, 80)
	AssertEQ(t, position.Y, 1)
}

// Test_HTS_SetsStopAtCursor tests adding a custom stop.
func Test_HTS_SetsStopAtCursor(t *testing.T) {
	d := NewDriver(80, 24)
	CUP(d, NewPoint(5, 1))
	HTS(d)
	CUP(d, NewPoint(1, 1))
	d.WriteRaw("\t")
	AssertEQ(t, d.GetCursorPosition().X, 5)
}

// Test_TBC_0_ClearsStopAtCursor tests clearing a single stop.
func Test_TBC_0_ClearsStopAtCursor(t *testing.T) {
	d := NewDriver(80, 24)
	CUP(d, NewPoint(9, 1))
	TBC(d, 0)
	CUP(d, NewPoint(1, 1))
	d.WriteRaw("\t")
	AssertEQ(t, d.GetCursorPosition().X, 17)
}

// Test_TBC_3_ClearsAllStops tests clearing the whole ruler.
func Test_TBC_3_ClearsAllStops(t *testing.T) {
	d := NewDriver(80, 24)
	TBC(d, 3)
	d.WriteRaw("\t")
	AssertEQ(t, d.GetCursorPosition().X, 80)
}

// Test_HT_DoesNotErase tests that tabbing over text leaves it in place.
func Test_HT_DoesNotErase(t *testing.T) {
	d := NewDriver(80, 24)
	d.Write("abcdefghij")
	CUP(d, NewPoint(1, 1))
	d.WriteRaw("\t")
	AssertScreenCharsInRectEqual(t, d, NewRect(1, 1, 10, 1),
		[]string{"abcdefghij"})
}
