// Copyright © 2026 Phosphor contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/cursor.go
// Summary: Cursor state: position, attributes, charset slots, wrap latch.

package screen

// Logical charset slots a designator can load (G0-G3) and the two in-use
// halves of the code table they shift into.
const (
	G0 = iota
	G1
	G2
	G3
)

const (
	GL = iota
	GR
)

// Cursor carries the write position, the rendering attributes copied into
// cells, the SGR 8 conceal flag, the deferred-wrap latch, and the charset
// designations. DECSC/DECRC copy the whole struct, designations included.
type Cursor struct {
	X, Y    int
	Attrs   Cell
	Conceal bool

	// LastColumn is the DEC deferred-wrap latch: true only when DECAWM
	// is on and the last write landed in the final column without a
	// subsequent cursor motion.
	LastColumn bool

	// Charsets holds what each of G0-G3 was designated to; nil means no
	// translation. Active names which slot GL and GR currently map to.
	Charsets [4]*Charset
	Active   [2]int
}

func homeCursor() Cursor {
	return Cursor{
		Attrs:  DefaultAttrs(),
		Active: [2]int{G0, G1},
	}
}

// Translate maps a code point through the in-use charset: GL covers the
// 7-bit graphic range, GR the 8-bit range above it.
func (c *Cursor) Translate(cp rune) rune {
	switch {
	case cp >= 0x20 && cp <= 0x7F:
		return c.Charsets[c.Active[GL]].Map(cp)
	case cp >= 0xA0 && cp <= 0xFF:
		return c.Charsets[c.Active[GR]].Map(cp)
	}
	return cp
}

// LockingShift maps a logical slot into GL or GR.
func (c *Cursor) LockingShift(half, slot int) {
	c.Active[half] = slot
}
