// Copyright © 2026 Phosphor contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vtinterp/sgr.go
// Summary: Select Graphic Rendition (CSI ... m) over the cursor attributes.

package vtinterp

import "github.com/phosphorterm/phosphor/screen"

// selectGraphicRendition walks the parameter list mutating a working copy
// of the cursor's attribute block. SGR 8/28 (conceal) lives on the cursor
// itself, not in the cell attributes.
func (in *Interpreter) selectGraphicRendition(params []int) {
	attrs := in.scr.Cursor.Attrs

	for i := 0; i < len(params); i++ {
		p := params[i]

		switch {
		case p >= 10 && p <= 19:
			attrs.Font = uint8(p - 10)
		case p >= 30 && p <= 37:
			attrs.Foreground = screen.PaletteColor(uint8(p - 30))
		case p >= 40 && p <= 47:
			attrs.Background = screen.PaletteColor(uint8(p - 40))
		case p >= 90 && p <= 97:
			attrs.Foreground = screen.PaletteColor(uint8(p - 90 + 8))
		case p >= 100 && p <= 107:
			attrs.Background = screen.PaletteColor(uint8(p - 100 + 8))
		default:
			switch p {
			case 0:
				attrs = screen.DefaultAttrs()
				in.scr.Cursor.Conceal = false
			case 1:
				attrs.Intensity = screen.IntensityBold
			case 2:
				attrs.Intensity = screen.IntensityFaint
			case 3:
				attrs.Italic = true
			case 4:
				attrs.Underline = screen.UnderlineSingle
			case 5:
				attrs.Blink = screen.BlinkSlow
			case 6:
				attrs.Blink = screen.BlinkFast
			case 7:
				attrs.Negative = true
			case 8:
				in.scr.Cursor.Conceal = true
			case 9:
				attrs.CrossedOut = true
			case 20:
				attrs.Fraktur = true
			case 21:
				attrs.Underline = screen.UnderlineDouble
			case 22:
				attrs.Intensity = screen.IntensityNormal
			case 23:
				attrs.Italic = false
				attrs.Fraktur = false
			case 24:
				attrs.Underline = screen.UnderlineNone
			case 25:
				attrs.Blink = screen.BlinkNone
			case 27:
				attrs.Negative = false
			case 28:
				in.scr.Cursor.Conceal = false
			case 29:
				attrs.CrossedOut = false
			case 38, 48:
				// Extended color: 38/48 ; 2 ; R ; G ; B or
				// 38/48 ; 5 ; N. Too few parameters aborts the
				// whole iteration, attributes so far kept.
				ref, next, ok := extendedColor(params, i)
				if !ok {
					in.scr.Cursor.Attrs = attrs
					return
				}
				if p == 38 {
					attrs.Foreground = ref
				} else {
					attrs.Background = ref
				}
				i = next
			case 39:
				attrs.Foreground = screen.DefaultAttrs().Foreground
			case 49:
				attrs.Background = screen.DefaultAttrs().Background
			case 51:
				attrs.Frame = screen.FrameFramed
			case 52:
				attrs.Frame = screen.FrameEncircled
			case 53:
				attrs.Overline = true
			case 54:
				attrs.Frame = screen.FrameNone
			case 55:
				attrs.Overline = false
			}
		}
	}

	in.scr.Cursor.Attrs = attrs
}

// extendedColor decodes the parameters following an SGR 38/48 at index i.
// It returns the color, the index of the last parameter consumed, and
// whether enough parameters were present.
func extendedColor(params []int, i int) (screen.ColorRef, int, bool) {
	if i+1 >= len(params) {
		return screen.ColorRef{}, i, false
	}
	switch params[i+1] {
	case 2:
		if i+4 >= len(params) {
			return screen.ColorRef{}, i, false
		}
		return screen.RGBColor(
			clamp8(params[i+2]),
			clamp8(params[i+3]),
			clamp8(params[i+4]),
		), i + 4, true
	case 5:
		if i+2 >= len(params) {
			return screen.ColorRef{}, i, false
		}
		return screen.PaletteColor(clamp8(params[i+2])), i + 2, true
	}
	return screen.ColorRef{}, i, false
}

func clamp8(v int) uint8 {
	if v > 0xFF {
		return 0xFF
	}
	return uint8(v)
}
