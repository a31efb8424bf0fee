// Copyright © 2026 Phosphor contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vtinterp/parser.go
// Summary: The DEC ANSI parser state machine (Paul Flo Williams' DFA).
// Usage: Driven byte-by-byte by the interpreter; owns no terminal state.
// Notes: Keeps parsing concerns isolated from screen mutation.

package vtinterp

// State is a node of the parser DFA.
type State int

const (
	StateGround State = iota
	StateEscape
	StateEscapeIntermediate
	StateCSIEntry
	StateCSIParam
	StateCSIIntermediate
	StateCSIIgnore
	StateDCSEntry
	StateDCSParam
	StateDCSIntermediate
	StateDCSPassthrough
	StateDCSIgnore
	StateOSCString
	StateSOSString
	StatePMString
	StateAPCString
)

const (
	maxParameters = 16
	parameterMax  = 16383
	oscCapacity   = 510

	// tooManyIntermediates marks a sequence that collected more
	// intermediate bytes than any recognized escape uses; dispatchers
	// reject it.
	tooManyIntermediates = 0xFF
)

var tooMany = [...]byte{tooManyIntermediates}

// Actions is the sink the parser dispatches into. The interpreter
// implements it; tests may substitute a recorder.
type Actions interface {
	// Execute handles a C0 control that takes effect immediately.
	Execute(b byte)
	// Print handles a graphic byte (routed through UTF-8 assembly).
	Print(b byte)
	// Substitute handles CAN/SUB: a U+FFFD is printed in place of the
	// aborted sequence.
	Substitute()
	// EscDispatch terminates an escape sequence.
	EscDispatch(intermediates []byte, final byte)
	// CsiDispatch terminates a control sequence.
	CsiDispatch(intermediates []byte, final byte, params []int)
	// OscDispatch terminates an operating system command.
	OscDispatch(payload []byte)
}

// Parser is the byte-level DFA. It owns the collected intermediates, the
// parameter vector, and the OSC buffer, and nothing else.
type Parser struct {
	state   State
	actions Actions

	intermediates  [2]byte
	nintermediates int
	overflow       bool

	params     [maxParameters]int
	paramIndex int

	osc    [oscCapacity]byte
	oscLen int
}

// NewParser returns a parser in the ground state dispatching into a.
func NewParser(a Actions) *Parser {
	return &Parser{actions: a}
}

// State returns the current DFA state, for tests and diagnostics.
func (p *Parser) State() State { return p.state }

// Advance feeds one byte through the DFA.
func (p *Parser) Advance(b byte) {
	// CAN and SUB abort any sequence from any state.
	if b == 0x18 || b == 0x1A {
		p.state = StateGround
		p.actions.Substitute()
		return
	}

	// ESC restarts sequence recognition from any state. A pending OSC
	// is dispatched first (its ST arrives as ESC \).
	if b == 0x1B {
		if p.state == StateOSCString {
			p.dispatchOSC()
		}
		p.enterEscape()
		return
	}

	switch p.state {
	case StateGround:
		if b <= 0x1F || b == 0x7F {
			p.actions.Execute(b)
			return
		}
		p.actions.Print(b)

	case StateEscape:
		switch {
		case b <= 0x1F:
			p.actions.Execute(b)
		case b <= 0x2F:
			p.collect(b)
			p.state = StateEscapeIntermediate
		case b == 0x50:
			p.state = StateDCSEntry
		case b == 0x58:
			p.state = StateSOSString
		case b == 0x5B:
			p.state = StateCSIEntry
		case b == 0x5D:
			p.oscLen = 0
			p.state = StateOSCString
		case b == 0x5E:
			p.state = StatePMString
		case b == 0x5F:
			p.state = StateAPCString
		case b <= 0x7E:
			p.state = StateGround
			p.actions.EscDispatch(p.currentIntermediates(), b)
		}

	case StateEscapeIntermediate:
		switch {
		case b <= 0x1F:
			p.actions.Execute(b)
		case b <= 0x2F:
			p.collect(b)
		case b <= 0x7E:
			p.state = StateGround
			p.actions.EscDispatch(p.currentIntermediates(), b)
		}

	case StateCSIEntry:
		switch {
		case b <= 0x1F:
			p.actions.Execute(b)
		case b <= 0x2F:
			p.collect(b)
			p.state = StateCSIIntermediate
		case b == 0x3A:
			p.state = StateCSIIgnore
		case b <= 0x3B:
			p.param(b)
			p.state = StateCSIParam
		case b <= 0x3F:
			p.collect(b)
			p.state = StateCSIParam
		case b <= 0x7E:
			p.dispatchCSI(b)
		}

	case StateCSIParam:
		switch {
		case b <= 0x1F:
			p.actions.Execute(b)
		case b <= 0x2F:
			p.collect(b)
			p.state = StateCSIIntermediate
		case b == 0x3A:
			p.state = StateCSIIgnore
		case b <= 0x3B:
			p.param(b)
		case b <= 0x3F:
			p.state = StateCSIIgnore
		case b <= 0x7E:
			p.dispatchCSI(b)
		}

	case StateCSIIntermediate:
		switch {
		case b <= 0x1F:
			p.actions.Execute(b)
		case b <= 0x2F:
			p.collect(b)
		case b <= 0x3F:
			p.state = StateCSIIgnore
		case b <= 0x7E:
			p.dispatchCSI(b)
		}

	case StateCSIIgnore:
		switch {
		case b <= 0x1F:
			p.actions.Execute(b)
		case b >= 0x40 && b <= 0x7E:
			p.state = StateGround
		}

	case StateDCSEntry, StateDCSParam, StateDCSIntermediate,
		StateDCSPassthrough, StateDCSIgnore:
		// Device control strings are consumed, never executed; the
		// terminating ST arrives as ESC and is handled above.

	case StateOSCString:
		switch {
		case b == 0x07:
			p.dispatchOSC()
			p.state = StateGround
		case b >= 0x20:
			p.oscPut(b)
		}

	case StateSOSString, StatePMString, StateAPCString:
		// Consumed silently until ST.
	}
}

// enterEscape zeroes all collected sequence state and moves to ESCAPE.
func (p *Parser) enterEscape() {
	p.state = StateEscape
	p.nintermediates = 0
	p.overflow = false
	p.params = [maxParameters]int{}
	p.paramIndex = 0
}

func (p *Parser) collect(b byte) {
	if p.nintermediates >= len(p.intermediates) {
		p.overflow = true
		return
	}
	p.intermediates[p.nintermediates] = b
	p.nintermediates++
}

func (p *Parser) currentIntermediates() []byte {
	if p.overflow {
		return tooMany[:]
	}
	return p.intermediates[:p.nintermediates]
}

// param accumulates a parameter digit or advances to the next slot on a
// semicolon. Past the 16th slot everything accumulates into the last.
func (p *Parser) param(b byte) {
	if b == ';' {
		if p.paramIndex < maxParameters-1 {
			p.paramIndex++
		}
		return
	}
	v := p.params[p.paramIndex]*10 + int(b-'0')
	if v > parameterMax {
		v = parameterMax
	}
	p.params[p.paramIndex] = v
}

func (p *Parser) dispatchCSI(final byte) {
	p.state = StateGround
	p.actions.CsiDispatch(p.currentIntermediates(), final,
		p.params[:p.paramIndex+1])
}

func (p *Parser) oscPut(b byte) {
	if p.oscLen < oscCapacity {
		p.osc[p.oscLen] = b
		p.oscLen++
	}
}

func (p *Parser) dispatchOSC() {
	p.actions.OscDispatch(p.osc[:p.oscLen])
	p.oscLen = 0
}
