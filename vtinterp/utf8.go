// Copyright © 2026 Phosphor contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vtinterp/utf8.go
// Summary: Incremental UTF-8 assembly for the print action.

package vtinterp

// Print routes a graphic byte through the UTF-8 assembler, calling
// Putch once a complete scalar is decoded. Continuation bytes are
// validated strictly: a byte outside 0x80-0xBF while a sequence is
// pending prints U+FFFD, resets the decoder, and is then reprocessed
// as the start of a fresh sequence.
func (in *Interpreter) Print(b byte) {
	if in.seqSize == 0 {
		in.startSequence(b)
		return
	}

	if b&0xC0 != 0x80 {
		in.resetUTF8()
		in.scr.Putch(0xFFFD)
		in.startSequence(b)
		return
	}

	switch in.seqSize {
	case 2:
		in.scr.Putch(in.codePoint | rune(b&^0xC0))
		in.resetUTF8()
	case 3:
		if in.seqIndex == 0 {
			in.codePoint |= rune(b&^0xC0) << 6
			in.seqIndex++
		} else {
			in.scr.Putch(in.codePoint | rune(b&^0xC0))
			in.resetUTF8()
		}
	case 4:
		switch in.seqIndex {
		case 0:
			in.codePoint |= rune(b&^0xC0) << 12
			in.seqIndex++
		case 1:
			in.codePoint |= rune(b&^0xC0) << 6
			in.seqIndex++
		default:
			in.scr.Putch(in.codePoint | rune(b&^0xC0))
			in.resetUTF8()
		}
	}
}

func (in *Interpreter) startSequence(b byte) {
	switch {
	case b&0x80 == 0:
		in.scr.Putch(rune(b))
	case b&0xE0 == 0xC0:
		in.seqSize = 2
		in.codePoint = rune(b&^0xE0) << 6
	case b&0xF0 == 0xE0:
		in.seqSize = 3
		in.codePoint = rune(b&^0xF0) << 12
	case b&0xF8 == 0xF0:
		in.seqSize = 4
		in.codePoint = rune(b&^0xF8) << 18
	default:
		// Continuation or invalid leading byte with no sequence open.
		in.scr.Putch(0xFFFD)
	}
}

func (in *Interpreter) resetUTF8() {
	in.seqSize = 0
	in.seqIndex = 0
	in.codePoint = 0
}
