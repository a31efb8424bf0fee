// Copyright © 2026 Phosphor contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: window/draw.go
// Summary: Rasterizes the screen model onto the tcell surface.

package window

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/phosphorterm/phosphor/screen"
)

// draw paints the whole grid. The renderer only reads the model; all
// mutation happens on the interpreter side of the mutex.
func (w *Window) draw() {
	w.mu.Lock()
	defer w.mu.Unlock()

	reverseAll := w.scr.Mode(screen.DECSCNM)
	palette := w.scr.Palette()

	for y := 0; y < w.scr.Height(); y++ {
		line := w.scr.Line(y)
		doubled := line.Dimensions != screen.SingleWidth

		sx := 0
		for x := 0; x < w.scr.Width() && sx < w.scr.Width(); x++ {
			cell := line.Cells[x]
			style := w.cellStyle(cell, palette, reverseAll)

			r := cell.Rune()
			if w.blinkHidden(cell.Blink) {
				r = ' '
			}

			w.tscreen.SetContent(sx, y, r, nil, style)
			adv := runewidth.RuneWidth(r)
			if adv < 1 {
				adv = 1
			}
			if doubled {
				// A double-width cell occupies two columns; pad
				// the spill column so stale content never shows.
				w.tscreen.SetContent(sx+adv, y, ' ', nil, style)
				adv *= 2
			}
			sx += adv

			if doubled && x >= w.scr.Width()/2 {
				break
			}
		}
	}

	w.drawCursor()
	w.tscreen.Show()
}

// cellStyle maps cell attributes onto tcell. Double underline renders
// as single and frame/overline have no tcell surface; everything else
// maps one to one.
func (w *Window) cellStyle(cell screen.Cell, palette *[screen.PaletteSize]screen.Color, reverseAll bool) tcell.Style {
	fg := cell.Foreground.Resolve(palette)
	bg := cell.Background.Resolve(palette)

	style := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))).
		Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))

	style = style.Bold(cell.Intensity == screen.IntensityBold)
	style = style.Dim(cell.Intensity == screen.IntensityFaint)
	style = style.Underline(cell.Underline != screen.UnderlineNone)
	style = style.Italic(cell.Italic)
	style = style.StrikeThrough(cell.CrossedOut)
	style = style.Reverse(cell.Negative != reverseAll)
	return style
}

// blinkHidden reports whether a blinking cell is in its off phase. Slow
// blink runs at half the tick rate.
func (w *Window) blinkHidden(b screen.Blink) bool {
	switch b {
	case screen.BlinkSlow:
		return (w.tick/2)%2 == 1
	case screen.BlinkFast:
		return w.tick%2 == 1
	}
	return false
}

func (w *Window) drawCursor() {
	if !w.scr.Mode(screen.DECTCEM) || w.tick%2 == 1 {
		w.tscreen.HideCursor()
		return
	}
	w.tscreen.ShowCursor(w.scr.Cursor.X, w.scr.Cursor.Y)
}
