// Copyright © 2026 Phosphor contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/modes.go
// Summary: Typed bit-set of ANSI and DEC-private terminal modes.

package screen

// Mode identifies a single terminal mode flag. Modes combine into a
// bit-set; the identifier is a distinct type so an unchecked integer can
// never index the set.
type Mode uint32

const (
	// LNM makes LF also perform CR.
	LNM Mode = 1 << iota
	// DECKPAM selects keypad application mode.
	DECKPAM
	// DECCKM makes cursor keys send SS3-prefixed sequences.
	DECCKM
	// DECANM selects the ANSI grammar; when clear, VT52 grammar is used.
	DECANM
	// DECCOLM selects 132-column mode (drives a resize).
	DECCOLM
	// DECSCLM is the smooth-scroll hint.
	DECSCLM
	// DECSCNM reverses the whole screen (XORs with cell negative).
	DECSCNM
	// DECOM bounds cursor addressing by the scroll region.
	DECOM
	// DECAWM enables autowrap.
	DECAWM
	// DECARM is the auto key-repeat hint.
	DECARM
	// DECINLM is the interlace hint.
	DECINLM
	// DECTCEM shows the cursor.
	DECTCEM
	// ShiftOut routes GL through G1 instead of G0.
	ShiftOut
	// TransmitDisabled is set by XOFF and blocks host input.
	TransmitDisabled
)

// modeDefaults are the flags set after reset.
const modeDefaults = DECANM | DECSCLM | DECARM | DECINLM | DECTCEM

// Mode reports whether every flag in m is set.
func (s *Screen) Mode(m Mode) bool {
	return s.modes&m == m
}

// SetMode sets or clears the flags in m.
func (s *Screen) SetMode(m Mode, on bool) {
	if on {
		s.modes |= m
	} else {
		s.modes &^= m
	}
}
