// Copyright © 2026 Phosphor contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/charset.go
// Summary: Designatable character sets (SCS) and their substitution tables.

package screen

// Charset maps a contiguous code-point range onto replacement runes.
// A nil *Charset means no translation (ASCII). A zero entry in Table
// leaves the code point untranslated.
type Charset struct {
	Min, Max rune
	Table    []rune
}

// Map translates cp through the set. Out-of-range code points pass
// through unchanged.
func (cs *Charset) Map(cp rune) rune {
	if cs == nil || cp < cs.Min || cp > cs.Max {
		return cp
	}
	if r := cs.Table[cp-cs.Min]; r != 0 {
		return r
	}
	return cp
}

// DECGraphics is the DEC Special Graphics set (ESC ( 0): the 0x5F-0x7E
// range becomes line-drawing and technical glyphs.
var DECGraphics = &Charset{
	Min: 0x5F,
	Max: 0x7E,
	Table: []rune{
		' ', // _  blank
		'◆', // `  diamond
		'▒', // a  checker board
		'␉', // b  horizontal tab
		'␌', // c  form feed
		'␍', // d  carriage return
		'␊', // e  line feed
		'°', // f  degree symbol
		'±', // g  plus/minus
		'␤', // h  newline
		'␋', // i  vertical tab
		'┘', // j  lower-right corner
		'┐', // k  upper-right corner
		'┌', // l  upper-left corner
		'└', // m  lower-left corner
		'┼', // n  crossing lines
		'⎺', // o  scan line 1
		'⎻', // p  scan line 3
		'─', // q  scan line 5
		'⎼', // r  scan line 7
		'⎽', // s  scan line 9
		'├', // t  left tee
		'┤', // u  right tee
		'┴', // v  bottom tee
		'┬', // w  top tee
		'│', // x  vertical bar
		'≤', // y  less than or equal
		'≥', // z  greater than or equal
		'π', // {  pi
		'≠', // |  not equal
		'£', // }  pound sterling
		'·', // ~  centered dot
	},
}

// UnitedKingdom is the UK national set (ESC ( A): '#' becomes '£'.
var UnitedKingdom = &Charset{
	Min:   '#',
	Max:   '#',
	Table: []rune{'£'},
}

// VT52Graphics approximates the VT52 graphics ROM (ESC F).
var VT52Graphics = &Charset{
	Min: 0x5E,
	Max: 0x7E,
	Table: []rune{
		' ', // ^  blank
		' ', // _  blank
		0,   // `  reserved
		'▮', // a  solid rectangle
		'¹', // b  1/
		'³', // c  3/
		'⁵', // d  5/
		'⁷', // e  7/
		'°', // f  degrees
		'±', // g  plus or minus
		'→', // h  right arrow
		'…', // i  ellipsis
		'÷', // j  divide by
		'↓', // k  down arrow
		'⎺', // l  bar at scan 0
		'⎺', // m  bar at scan 1
		'⎻', // n  bar at scan 2
		'⎻', // o  bar at scan 3
		'─', // p  bar at scan 4
		'─', // q  bar at scan 5
		'⎼', // r  bar at scan 6
		'⎽', // s  bar at scan 7
		'₀', // t  subscript 0
		'₁', // u  subscript 1
		'₂', // v  subscript 2
		'₃', // w  subscript 3
		'₄', // x  subscript 4
		'₅', // y  subscript 5
		'₆', // z  subscript 6
		'₇', // {  subscript 7
		'₈', // |  subscript 8
		'₉', // }  subscript 9
		'¶', // ~  paragraph
	},
}
