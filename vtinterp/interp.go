// Copyright © 2026 Phosphor contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vtinterp/interp.go
// Summary: Translates parser actions into screen operations and host
//          responses; owns the UTF-8 assembler and the VT52 sub-grammar.

package vtinterp

import (
	"fmt"
	"io"
	"log"

	"github.com/phosphorterm/phosphor/screen"
)

// Device-attribute reply: VT100 with Advanced Video and Graphics options.
const deviceAttrs = "\x1B\x5B\x3F\x31\x3B\x37\x63" // ESC [ ? 1 ; 7 c

// Host receives the window-layer side effects the byte stream asks for.
type Host interface {
	Bell()
	SetTitle(title string)
	SetIconName(name string)
	// ResizeRequest fires after a DECCOLM-driven grid resize so the
	// pseudoterminal and window can follow.
	ResizeRequest(cols, rows int)
}

// NopHost ignores every host call; useful for tests.
type NopHost struct{}

func (NopHost) Bell()                  {}
func (NopHost) SetTitle(string)        {}
func (NopHost) SetIconName(string)     {}
func (NopHost) ResizeRequest(int, int) {}

// Interpreter drives the ANSI parser (or the VT52 sub-parser when DECANM
// is reset) and applies every action to the screen. Responses are written
// to the output sink; diagnostics go to the standard logger.
type Interpreter struct {
	scr  *screen.Screen
	out  io.Writer
	host Host

	answerback string

	parser *Parser

	// UTF-8 assembler state.
	seqSize   int
	seqIndex  int
	codePoint rune

	// VT52 sub-parser state.
	vt52State vt52State
	vt52Row   byte
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithAnswerback sets the string transmitted in response to ENQ.
func WithAnswerback(s string) Option {
	return func(in *Interpreter) { in.answerback = s }
}

// WithHost wires the window-layer callbacks.
func WithHost(h Host) Option {
	return func(in *Interpreter) { in.host = h }
}

// New creates an interpreter over scr writing responses to out.
func New(scr *screen.Screen, out io.Writer, opts ...Option) *Interpreter {
	in := &Interpreter{
		scr:  scr,
		out:  out,
		host: NopHost{},
	}
	in.parser = NewParser(in)
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Screen returns the screen the interpreter mutates.
func (in *Interpreter) Screen() *screen.Screen { return in.scr }

// Feed interprets a buffer of bytes from the pseudoterminal. Side effects
// follow input order exactly; Feed never blocks.
func (in *Interpreter) Feed(buf []byte) {
	for _, b := range buf {
		if in.scr.Mode(screen.DECANM) {
			in.parser.Advance(b)
		} else {
			in.vt52Byte(b)
		}
	}
}

// reply writes a response sequence back toward the host program.
func (in *Interpreter) reply(s string) {
	if in.out == nil || s == "" {
		return
	}
	if _, err := io.WriteString(in.out, s); err != nil {
		log.Printf("vtinterp: response write failed: %v", err)
	}
}

// Execute handles a C0 control.
func (in *Interpreter) Execute(b byte) {
	switch b {
	case 0x05: // ENQ
		in.reply(in.answerback)
	case 0x07: // BEL
		in.host.Bell()
	case 0x08: // BS
		in.scr.MoveCursor(screen.Left, 1)
	case 0x09: // HT
		in.scr.Tab()
	case 0x0A, 0x0B, 0x0C: // LF, VT, FF
		in.scr.Newline()
		if in.scr.Mode(screen.LNM) {
			in.scr.CarriageReturn()
		}
	case 0x0D: // CR
		in.scr.CarriageReturn()
	case 0x0E: // SO
		in.scr.SetMode(screen.ShiftOut, true)
		in.scr.Cursor.LockingShift(screen.GL, screen.G1)
	case 0x0F: // SI
		in.scr.SetMode(screen.ShiftOut, false)
		in.scr.Cursor.LockingShift(screen.GL, screen.G0)
	case 0x11: // DC1 - XON
		in.scr.SetMode(screen.TransmitDisabled, false)
	case 0x13: // DC3 - XOFF
		in.scr.SetMode(screen.TransmitDisabled, true)
	}
}

// Substitute prints the replacement character for an aborted sequence.
func (in *Interpreter) Substitute() {
	in.resetUTF8()
	in.scr.Putch(0xFFFD)
}

// EscDispatch terminates an escape sequence.
func (in *Interpreter) EscDispatch(intermediates []byte, final byte) {
	if len(intermediates) == 0 {
		in.escPlain(final)
		return
	}

	switch intermediates[0] {
	case '#':
		in.escHash(final)
	case '(', ')', '*', '+':
		// 94-character set designators into G0..G3.
		in.designate(int(intermediates[0]-'('), charset94(final))
	case '-', '.', '/':
		// 96-character set designators into G1..G3.
		in.designate(int(intermediates[0]-'-')+1, charset96(final))
	default:
		in.unrecognizedEscape(intermediates, final)
	}
}

func (in *Interpreter) escPlain(final byte) {
	switch final {
	case '7': // DECSC - Save Cursor
		in.scr.SaveCursor()
	case '8': // DECRC - Restore Cursor
		in.scr.RestoreCursor()
	case '=': // DECKPAM - Keypad Application Mode
		in.scr.SetMode(screen.DECKPAM, true)
	case '>': // DECKPNM - Keypad Numeric Mode
		in.scr.SetMode(screen.DECKPAM, false)
	case 'D': // IND - Index
		in.scr.Newline()
	case 'E': // NEL - Next Line
		in.scr.NextLine()
	case 'F': // XTerm hpLowerleftBugCompat
		in.scr.Cursor.X = 0
		in.scr.Cursor.Y = in.scr.ScrollBottom()
		in.scr.Cursor.LastColumn = false
	case 'H': // HTS - Horizontal Tabulation Set
		in.scr.SetTab()
	case 'M': // RI - Reverse Index
		in.scr.RevLine()
	case 'Z': // DECID - Identify Terminal
		in.reply(deviceAttrs)
	case '\\': // ST - String Terminator
		// nothing to do
	case 'c': // RIS - Reset To Initial State
		in.scr.Reset()
	default:
		in.unrecognizedEscape(nil, final)
	}
}

func (in *Interpreter) escHash(final byte) {
	switch final {
	case '3': // DECDHL - Double-Height Line (Top)
		in.scr.SetLineDimensions(screen.DoubleHeightTop)
	case '4': // DECDHL - Double-Height Line (Bottom)
		in.scr.SetLineDimensions(screen.DoubleHeightBottom)
	case '5': // DECSWL - Single-Width Line
		in.scr.SetLineDimensions(screen.SingleWidth)
	case '6': // DECDWL - Double-Width Line
		in.scr.SetLineDimensions(screen.DoubleWidth)
	case '8': // DECALN - Screen Alignment Display
		in.scr.ScreenAlign()
	default:
		in.unrecognizedEscape([]byte{'#'}, final)
	}
}

func (in *Interpreter) designate(slot int, cs *screen.Charset) {
	if slot >= 0 && slot < 4 {
		in.scr.Cursor.Charsets[slot] = cs
	}
}

// charset94 maps a 94-character-set final byte to its table. ASCII and
// the unimplemented alternate ROM sets translate nothing.
func charset94(final byte) *screen.Charset {
	switch final {
	case '0':
		return screen.DECGraphics
	case 'A':
		return screen.UnitedKingdom
	default:
		return nil
	}
}

// charset96 maps a 96-character-set final byte; all are stubs for now.
func charset96(byte) *screen.Charset {
	return nil
}

// CsiDispatch terminates a control sequence.
func (in *Interpreter) CsiDispatch(intermediates []byte, final byte, params []int) {
	if len(intermediates) > 0 {
		if intermediates[0] == '?' {
			in.csiPrivate(final, params)
			return
		}
		// Sequences with other markers or collected intermediates
		// (including the overflow sentinel) are dropped whole.
		in.unrecognizedCSI(intermediates, final)
		return
	}

	switch final {
	case 'A': // CUU - Cursor Up
		in.scr.MoveCursor(screen.Up, paramOr1(params, 0))
	case 'B': // CUD - Cursor Down
		in.scr.MoveCursor(screen.Down, paramOr1(params, 0))
	case 'C': // CUF - Cursor Forward
		in.scr.MoveCursor(screen.Right, paramOr1(params, 0))
	case 'D': // CUB - Cursor Backward
		in.scr.MoveCursor(screen.Left, paramOr1(params, 0))
	case 'H', 'f': // CUP / HVP
		row := param(params, 0) - 1
		if in.scr.Mode(screen.DECOM) {
			row += in.scr.ScrollTop()
		}
		in.scr.WarpTo(param(params, 1)-1, row)
	case 'J': // ED - Erase In Display
		if m := param(params, 0); m <= 2 {
			in.scr.EraseDisplay(screen.EraseMode(m))
		} else {
			in.unrecognizedCSI(nil, final)
		}
	case 'K': // EL - Erase In Line
		if m := param(params, 0); m <= 2 {
			in.scr.EraseLine(screen.EraseMode(m))
		} else {
			in.unrecognizedCSI(nil, final)
		}
	case 'L': // IL - Insert Line
		in.scr.InsertLine(paramOr1(params, 0))
	case 'M': // DL - Delete Line
		in.scr.DeleteLine(paramOr1(params, 0))
	case 'P': // DCH - Delete Character
		in.scr.DeleteCharacter(paramOr1(params, 0))
	case 'c': // DA - Device Attributes
		if param(params, 0) == 0 {
			in.reply(deviceAttrs)
		}
	case 'g': // TBC - Tabulation Clear
		switch param(params, 0) {
		case 0:
			in.scr.ClearTab()
		case 3:
			in.scr.ClearAllTabs()
		}
	case 'h': // SM - Set Mode
		in.setModes(params, true)
	case 'l': // RM - Reset Mode
		in.setModes(params, false)
	case 'm': // SGR - Select Graphic Rendition
		in.selectGraphicRendition(params)
	case 'n': // DSR - Device Status Report
		in.deviceStatusReport(params)
	case 'q': // DECLL - Load LEDs
		// Recognized; this terminal has no lamps.
	case 'r': // DECSTBM - Set Top and Bottom Margins
		top := param(params, 0)
		if top == 0 {
			top = 1
		}
		bottom := param(params, 1)
		if bottom == 0 || bottom > in.scr.Height() {
			bottom = in.scr.Height()
		}
		if top < bottom {
			in.scr.SetScrollRegion(top-1, bottom-1)
		}
	default:
		in.unrecognizedCSI(nil, final)
	}
}

// setModes applies SM/RM without a private marker.
func (in *Interpreter) setModes(params []int, value bool) {
	for _, p := range params {
		switch p {
		case 20:
			in.scr.SetMode(screen.LNM, value)
		default:
			log.Printf("vtinterp: set mode %d=%v not recognized", p, value)
		}
	}
}

// csiPrivate applies CSI ? sequences (DEC private modes).
func (in *Interpreter) csiPrivate(final byte, params []int) {
	switch final {
	case 'h', 'l':
		value := final == 'h'
		for _, p := range params {
			in.setPrivateMode(p, value)
		}
	default:
		in.unrecognizedCSI([]byte{'?'}, final)
	}
}

func (in *Interpreter) setPrivateMode(p int, value bool) {
	switch p {
	case 1:
		in.scr.SetMode(screen.DECCKM, value)
	case 2:
		// Clearing DECANM switches the input grammar to VT52.
		in.scr.SetMode(screen.DECANM, value)
		if !value {
			in.vt52State = vt52Ground
		}
	case 3:
		// DECCOLM switches between 132 and 80 columns. The grid is
		// recreated (which clears it, as the hardware did) and the
		// window layer follows.
		in.scr.SetMode(screen.DECCOLM, value)
		cols := 80
		if value {
			cols = 132
		}
		in.scr.Resize(cols, in.scr.Height())
		in.host.ResizeRequest(cols, in.scr.Height())
	case 5:
		in.scr.SetMode(screen.DECSCNM, value)
	case 6:
		in.scr.SetMode(screen.DECOM, value)
		if value {
			in.scr.WarpTo(0, in.scr.ScrollTop())
		} else {
			in.scr.WarpTo(0, 0)
		}
	case 7:
		in.scr.SetMode(screen.DECAWM, value)
		if !value {
			in.scr.Cursor.LastColumn = false
		}
	case 8:
		in.scr.SetMode(screen.DECARM, value)
	case 25:
		in.scr.SetMode(screen.DECTCEM, value)
	default:
		log.Printf("vtinterp: set mode ?%d=%v not recognized", p, value)
	}
}

// deviceStatusReport answers DSR 5 (status) and DSR 6 (cursor position).
func (in *Interpreter) deviceStatusReport(params []int) {
	switch param(params, 0) {
	case 5:
		// Ready, no malfunctions detected.
		in.reply("\x1B\x5B\x30\x6E") // ESC [ 0 n
	case 6:
		row := in.scr.Cursor.Y
		if in.scr.Mode(screen.DECOM) {
			row -= in.scr.ScrollTop()
		}
		in.reply(fmt.Sprintf("\x1B[%d;%dR", row+1, in.scr.Cursor.X+1))
	}
}

// param reads parameter i, with missing parameters reading as 0.
func param(params []int, i int) int {
	if i < len(params) {
		return params[i]
	}
	return 0
}

// paramOr1 reads parameter i with the documented default of 1.
func paramOr1(params []int, i int) int {
	if v := param(params, i); v != 0 {
		return v
	}
	return 1
}

func (in *Interpreter) unrecognizedEscape(intermediates []byte, final byte) {
	grammar := "ANSI"
	if !in.scr.Mode(screen.DECANM) {
		grammar = "VT52"
	}
	log.Printf("vtinterp: unrecognized escape: grammar=%s intermediates=%q final=%s",
		grammar, intermediates, describeByte(final))
}

func (in *Interpreter) unrecognizedCSI(intermediates []byte, final byte) {
	log.Printf("vtinterp: unrecognized CSI: intermediates=%q final=%s",
		intermediates, describeByte(final))
}

func describeByte(b byte) string {
	if b >= 0x20 && b < 0x7F {
		return fmt.Sprintf("%q", b)
	}
	return fmt.Sprintf("0x%X", b)
}
