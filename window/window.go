// Copyright © 2026 Phosphor contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: window/window.go
// Summary: tcell front end: event loop, pty pump, blink tick, host calls.

package window

import (
	"io"
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phosphorterm/phosphor/ptmx"
	"github.com/phosphorterm/phosphor/screen"
	"github.com/phosphorterm/phosphor/vtinterp"
)

const ptyReadSize = 4096

// Window owns the visible surface. It pumps shell output into the
// interpreter, renders the screen model each refresh, and encodes key
// events back to the shell. The interpreter and screen are guarded by
// one mutex; the byte stream is still applied strictly in arrival order.
type Window struct {
	tscreen tcell.Screen
	session *ptmx.Session

	mu     sync.Mutex
	scr    *screen.Screen
	interp *vtinterp.Interpreter

	refresh chan struct{}
	quit    chan struct{}
	done    sync.Once

	// tick advances once per blink interval; the interpreter never
	// sees it.
	tick  uint64
	blink time.Duration

	title string
}

// New creates the window over an initialized tcell screen.
func New(ts tcell.Screen, scr *screen.Screen, session *ptmx.Session, blink time.Duration) *Window {
	w := &Window{
		tscreen: ts,
		session: session,
		scr:     scr,
		refresh: make(chan struct{}, 1),
		quit:    make(chan struct{}),
		blink:   blink,
	}
	return w
}

// SetInterpreter wires the interpreter after construction (the
// interpreter needs the window as its host, so the two are created in
// two steps).
func (w *Window) SetInterpreter(in *vtinterp.Interpreter) {
	w.interp = in
}

// Bell implements vtinterp.Host.
func (w *Window) Bell() {
	w.tscreen.Beep()
}

// SetTitle implements vtinterp.Host.
func (w *Window) SetTitle(title string) {
	w.title = title
	w.tscreen.SetTitle(title)
}

// SetIconName implements vtinterp.Host. tcell has no separate icon-name
// surface, so the window title stands in for both.
func (w *Window) SetIconName(name string) {
	if w.title == "" {
		w.tscreen.SetTitle(name)
	}
}

// ResizeRequest implements vtinterp.Host: a DECCOLM switch resized the
// grid, so the pseudoterminal follows.
func (w *Window) ResizeRequest(cols, rows int) {
	if err := w.session.Resize(cols, rows); err != nil {
		log.Printf("window: pty resize failed: %v", err)
	}
}

// Run blocks until the shell hangs up or the user closes the window.
func (w *Window) Run() error {
	go w.pump()

	events := make(chan tcell.Event, 16)
	go w.tscreen.ChannelEvents(events, w.quit)

	ticker := time.NewTicker(w.blink)
	defer ticker.Stop()

	w.draw()
	for {
		select {
		case <-w.quit:
			return nil
		case <-w.refresh:
			w.draw()
		case <-ticker.C:
			w.tick++
			w.draw()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if quit := w.handleEvent(ev); quit {
				return nil
			}
		}
	}
}

// Stop ends the event loop and tears the session down.
func (w *Window) Stop() {
	w.done.Do(func() { close(w.quit) })
}

// pump copies shell output into the interpreter until EOF.
func (w *Window) pump() {
	buf := make([]byte, ptyReadSize)
	for {
		n, err := w.session.Read(buf)
		if n > 0 {
			w.mu.Lock()
			w.interp.Feed(buf[:n])
			w.mu.Unlock()
			w.requestRefresh()
		}
		if err != nil {
			if err != io.EOF {
				log.Printf("window: pty read: %v", err)
			}
			w.Stop()
			return
		}
	}
}

func (w *Window) requestRefresh() {
	select {
	case w.refresh <- struct{}{}:
	default:
	}
}

func (w *Window) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlQ && ev.Modifiers()&tcell.ModAlt != 0 {
			return true
		}
		w.sendKey(ev)
	case *tcell.EventResize:
		// The grid is fixed at the emulated terminal's size; a host
		// window resize only needs a repaint.
		w.tscreen.Sync()
	}
	return false
}

// sendKey encodes a key event and writes it to the shell, unless an
// XOFF from the host program has input blocked.
func (w *Window) sendKey(ev *tcell.EventKey) {
	w.mu.Lock()
	blocked := w.scr.Mode(screen.TransmitDisabled)
	cursorApp := w.scr.Mode(screen.DECCKM)
	keypadApp := w.scr.Mode(screen.DECKPAM)
	w.mu.Unlock()

	if blocked {
		return
	}

	keyBytes := encodeKey(ev, cursorApp, keypadApp)
	if keyBytes == nil {
		return
	}
	if _, err := w.session.Write(keyBytes); err != nil {
		log.Printf("window: pty write: %v", err)
	}
}
