// Copyright © 2026 Phosphor contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/palette.go
// Summary: Factory 256-entry color palette (xterm layout).

package screen

// PaletteSize is the number of mutable palette entries (OSC 4 addressable).
const PaletteSize = 256

// DefaultPalette returns the factory palette: the 16 standard/bright ANSI
// colors, a 6x6x6 color cube, and a 24-step grayscale ramp.
func DefaultPalette() [PaletteSize]Color {
	var p [PaletteSize]Color

	// First 16 ANSI colors.
	p[0] = Color{0, 0, 0}        // Black
	p[1] = Color{128, 0, 0}      // Maroon
	p[2] = Color{0, 128, 0}      // Green
	p[3] = Color{128, 128, 0}    // Olive
	p[4] = Color{0, 0, 128}      // Navy
	p[5] = Color{128, 0, 128}    // Purple
	p[6] = Color{0, 128, 128}    // Teal
	p[7] = Color{192, 192, 192}  // Silver
	p[8] = Color{128, 128, 128}  // Grey
	p[9] = Color{255, 0, 0}      // Red
	p[10] = Color{0, 255, 0}     // Lime
	p[11] = Color{255, 255, 0}   // Yellow
	p[12] = Color{0, 0, 255}     // Blue
	p[13] = Color{255, 0, 255}   // Fuchsia
	p[14] = Color{0, 255, 255}   // Aqua
	p[15] = Color{255, 255, 255} // White

	// 6x6x6 color cube.
	levels := []uint8{0, 0x5F, 0x87, 0xAF, 0xD7, 0xFF}
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[i] = Color{levels[r], levels[g], levels[b]}
				i++
			}
		}
	}

	// Grayscale ramp.
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		p[i] = Color{gray, gray, gray}
		i++
	}

	return p
}
