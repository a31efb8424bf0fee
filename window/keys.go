// Copyright © 2026 Phosphor contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: window/keys.go
// Summary: Key event to byte-sequence encoding (DECCKM/DECKPAM aware).

package window

import "github.com/gdamore/tcell/v2"

// encodeKey translates a key event into the bytes the shell receives.
// Cursor keys honor DECCKM (SS3 prefix in application mode); the Enter
// key on the keypad would honor DECKPAM if tcell distinguished it.
func encodeKey(ev *tcell.EventKey, cursorApp, keypadApp bool) []byte {
	arrow := func(final byte) []byte {
		if cursorApp {
			return []byte{0x1B, 'O', final}
		}
		return []byte{0x1B, '[', final}
	}

	switch ev.Key() {
	case tcell.KeyUp:
		return arrow('A')
	case tcell.KeyDown:
		return arrow('B')
	case tcell.KeyRight:
		return arrow('C')
	case tcell.KeyLeft:
		return arrow('D')
	case tcell.KeyHome:
		return []byte("\x1b[H")
	case tcell.KeyEnd:
		return []byte("\x1b[F")
	case tcell.KeyInsert:
		return []byte("\x1b[2~")
	case tcell.KeyDelete:
		return []byte("\x1b[3~")
	case tcell.KeyPgUp:
		return []byte("\x1b[5~")
	case tcell.KeyPgDn:
		return []byte("\x1b[6~")
	case tcell.KeyF1:
		return []byte("\x1bOP")
	case tcell.KeyF2:
		return []byte("\x1bOQ")
	case tcell.KeyF3:
		return []byte("\x1bOR")
	case tcell.KeyF4:
		return []byte("\x1bOS")
	case tcell.KeyF5:
		return []byte("\x1b[15~")
	case tcell.KeyF6:
		return []byte("\x1b[17~")
	case tcell.KeyF7:
		return []byte("\x1b[18~")
	case tcell.KeyF8:
		return []byte("\x1b[19~")
	case tcell.KeyF9:
		return []byte("\x1b[20~")
	case tcell.KeyF10:
		return []byte("\x1b[21~")
	case tcell.KeyF11:
		return []byte("\x1b[23~")
	case tcell.KeyF12:
		return []byte("\x1b[24~")
	case tcell.KeyEnter:
		if keypadApp && ev.Modifiers()&tcell.ModMeta != 0 {
			return []byte("\x1bOM")
		}
		return []byte{'\r'}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return []byte{'\b'}
	case tcell.KeyTab:
		return []byte{'\t'}
	case tcell.KeyEsc:
		return []byte{0x1B}
	}

	if r := ev.Rune(); r != 0 {
		return []byte(string(r))
	}

	// Remaining named keys are Ctrl combinations; tcell numbers them
	// by their control byte.
	if k := ev.Key(); k < 0x20 {
		return []byte{byte(k)}
	}
	return nil
}
