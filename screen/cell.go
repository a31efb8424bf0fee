// Copyright © 2026 Phosphor contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/cell.go
// Summary: Cell and rendering-attribute types for the character grid.
// Usage: Consumed by the interpreter when writing and by the renderer.

package screen

import "strings"

// Intensity is the SGR 1/2/22 weight of a cell.
type Intensity uint8

const (
	IntensityNormal Intensity = iota
	IntensityBold
	IntensityFaint
)

// Blink is the SGR 5/6/25 blink speed of a cell.
type Blink uint8

const (
	BlinkNone Blink = iota
	BlinkSlow
	BlinkFast
)

// Underline is the SGR 4/21/24 underline style of a cell.
type Underline uint8

const (
	UnderlineNone Underline = iota
	UnderlineSingle
	UnderlineDouble
)

// Frame is the SGR 51/52/54 framing of a cell.
type Frame uint8

const (
	FrameNone Frame = iota
	FrameFramed
	FrameEncircled
)

// Color is an 8-bit-per-channel RGB triple.
type Color struct {
	R, G, B uint8
}

// ColorRef refers to a color either by palette index or directly by RGB.
// Truecolor selects which form is stored.
type ColorRef struct {
	Truecolor bool
	Index     uint8 // palette index when !Truecolor
	RGB       Color // direct color when Truecolor
}

// PaletteColor returns a reference to palette entry n.
func PaletteColor(n uint8) ColorRef {
	return ColorRef{Index: n}
}

// RGBColor returns a direct-color reference.
func RGBColor(r, g, b uint8) ColorRef {
	return ColorRef{Truecolor: true, RGB: Color{R: r, G: g, B: b}}
}

// Resolve maps the reference to a concrete color through the palette.
func (c ColorRef) Resolve(palette *[PaletteSize]Color) Color {
	if c.Truecolor {
		return c.RGB
	}
	return palette[c.Index]
}

// Cell is the elementary screen unit. A zero CodePoint denotes an empty
// cell; the renderer substitutes U+0020.
type Cell struct {
	CodePoint  rune
	Background ColorRef
	Foreground ColorRef
	Font       uint8 // 0-9, selected by SGR 10-19
	Intensity  Intensity
	Blink      Blink
	Underline  Underline
	Frame      Frame
	Italic     bool
	Negative   bool
	CrossedOut bool
	Fraktur    bool
	Overline   bool
}

// DefaultAttrs returns the factory rendering attributes: background palette
// entry 0, foreground palette entry 7, everything else cleared.
func DefaultAttrs() Cell {
	return Cell{
		Background: PaletteColor(0),
		Foreground: PaletteColor(7),
	}
}

// String returns a compact description of the set attributes, for
// diagnostics and test failure messages.
func (c Cell) String() string {
	var parts []string
	switch c.Intensity {
	case IntensityBold:
		parts = append(parts, "bold")
	case IntensityFaint:
		parts = append(parts, "faint")
	}
	if c.Blink != BlinkNone {
		parts = append(parts, "blink")
	}
	if c.Underline != UnderlineNone {
		parts = append(parts, "underline")
	}
	if c.Italic {
		parts = append(parts, "italic")
	}
	if c.Negative {
		parts = append(parts, "negative")
	}
	if c.CrossedOut {
		parts = append(parts, "crossed-out")
	}
	if c.Fraktur {
		parts = append(parts, "fraktur")
	}
	if c.Overline {
		parts = append(parts, "overline")
	}
	if len(parts) == 0 {
		parts = append(parts, "plain")
	}
	return string(c.rune()) + ":" + strings.Join(parts, "|")
}

func (c Cell) rune() rune {
	if c.CodePoint == 0 {
		return ' '
	}
	return c.CodePoint
}

// Rune returns the cell's code point with empty cells mapped to a space.
func (c Cell) Rune() rune {
	return c.rune()
}
