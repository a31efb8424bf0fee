// Copyright © 2026 Phosphor contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vtinterp/vt52.go
// Summary: The VT52 sub-grammar used while DECANM is reset.

package vtinterp

import "github.com/phosphorterm/phosphor/screen"

type vt52State int

const (
	vt52Ground vt52State = iota
	vt52Escape
	vt52DCA1
	vt52DCA2
)

// vt52Byte interprets one byte under the VT52 grammar. Controls execute
// as in ANSI mode; ESC Y collects the two direct-cursor-address bytes.
func (in *Interpreter) vt52Byte(b byte) {
	switch {
	case b == 0x1B:
		in.vt52State = vt52Escape
	case b <= 0x1F || b == 0x7F:
		in.Execute(b)
	case in.vt52State == vt52DCA1:
		in.vt52Row = b
		in.vt52State = vt52DCA2
	case in.vt52State == vt52DCA2:
		in.scr.WarpTo(int(b)-0x20, int(in.vt52Row)-0x20)
		in.vt52State = vt52Ground
	case in.vt52State == vt52Escape:
		in.vt52Escape(b)
	default:
		in.Print(b)
	}
}

func (in *Interpreter) vt52Escape(b byte) {
	in.vt52State = vt52Ground

	switch b {
	case '<': // Enter ANSI Mode
		in.scr.SetMode(screen.DECANM, true)
	case '=': // Enter Alternative Keypad Mode
		in.scr.SetMode(screen.DECKPAM, true)
	case '>': // Exit Alternative Keypad Mode
		in.scr.SetMode(screen.DECKPAM, false)
	case 'A': // Cursor Up
		in.scr.MoveCursor(screen.Up, 1)
	case 'B': // Cursor Down
		in.scr.MoveCursor(screen.Down, 1)
	case 'C': // Cursor Right
		in.scr.MoveCursor(screen.Right, 1)
	case 'D': // Cursor Left
		in.scr.MoveCursor(screen.Left, 1)
	case 'F': // Enter Graphics Mode
		in.designate(in.glSlot(), screen.VT52Graphics)
	case 'G': // Exit Graphics Mode
		in.designate(in.glSlot(), nil)
	case 'H': // Cursor to Home
		in.scr.Cursor.X = 0
		in.scr.Cursor.Y = 0
		in.scr.Cursor.LastColumn = false
	case 'I': // Reverse Line Feed
		in.scr.RevLine()
	case 'J': // Erase to End of Screen
		in.scr.EraseDisplay(screen.EraseToEnd)
	case 'K': // Erase to End of Line
		in.scr.EraseLine(screen.EraseToEnd)
	case 'Y': // Direct Cursor Address
		in.vt52State = vt52DCA1
	case 'Z': // Identify
		in.reply("\x1B/Z")
	default:
		in.unrecognizedEscape(nil, b)
	}
}

// glSlot is the logical charset slot currently shifted into GL; VT52
// graphics mode designates into whichever one is live.
func (in *Interpreter) glSlot() int {
	if in.scr.Mode(screen.ShiftOut) {
		return screen.G1
	}
	return screen.G0
}
