// Copyright © 2026 Phosphor contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vtinterp/osc.go
// Summary: Operating System Command dispatch: titles, icon names, and
//          OSC 4 palette redefinition with X11 color spec parsing.

package vtinterp

import (
	"log"
	"strconv"
	"strings"

	"github.com/phosphorterm/phosphor/screen"
)

// OscDispatch terminates an OSC. The payload is a semicolon-separated
// command prefix followed by data.
func (in *Interpreter) OscDispatch(payload []byte) {
	command, data, _ := strings.Cut(string(payload), ";")

	switch command {
	case "0":
		in.host.SetTitle(data)
		in.host.SetIconName(data)
	case "1", "2L":
		in.host.SetIconName(data)
	case "2", "21":
		in.host.SetTitle(data)
	case "4":
		in.changeColors(data)
	default:
		log.Printf("vtinterp: unrecognized OSC: %q", command)
	}
}

// changeColors applies OSC 4 data: index;colorspec pairs.
func (in *Interpreter) changeColors(data string) {
	fields := strings.Split(data, ";")
	for i := 0; i+1 < len(fields); i += 2 {
		index, err := strconv.Atoi(fields[i])
		if err != nil {
			log.Printf("vtinterp: OSC 4: bad color index %q", fields[i])
			continue
		}
		if index < 0 || index > 255 {
			log.Printf("vtinterp: OSC 4: color index %d out of range (0..255)", index)
			continue
		}
		color, ok := parseColorSpec(fields[i+1])
		if !ok {
			log.Printf("vtinterp: OSC 4: unrecognized color spec %q", fields[i+1])
			continue
		}
		in.scr.SetPaletteColor(index, color)
	}
}

// parseColorSpec recognizes the X11 "#RGB", "#RRGGBB", "#RRRGGGBBB" and
// "#RRRRGGGGBBBB" hex forms plus "rgb:R/G/B" and "rgbi:fR/fG/fB".
func parseColorSpec(spec string) (screen.Color, bool) {
	switch {
	case strings.HasPrefix(spec, "#"):
		return parseSharpColor(spec[1:])
	case strings.HasPrefix(spec, "rgb:"):
		return parseSlashColor(spec[4:])
	case strings.HasPrefix(spec, "rgbi:"):
		return parseIntensityColor(spec[5:])
	}
	return screen.Color{}, false
}

func parseSharpColor(hex string) (screen.Color, bool) {
	if len(hex)%3 != 0 {
		return screen.Color{}, false
	}
	digits := len(hex) / 3
	if digits < 1 || digits > 4 {
		return screen.Color{}, false
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(hex[i*digits:(i+1)*digits], 16, 16)
		if err != nil {
			return screen.Color{}, false
		}
		// The "#" forms specify the most significant bits of each
		// channel; shorter forms shift up, longer forms truncate.
		switch digits {
		case 1:
			channels[i] = uint8(v * 0x11)
		case 2:
			channels[i] = uint8(v)
		case 3:
			channels[i] = uint8(v >> 4)
		case 4:
			channels[i] = uint8(v >> 8)
		}
	}
	return screen.Color{R: channels[0], G: channels[1], B: channels[2]}, true
}

func parseSlashColor(body string) (screen.Color, bool) {
	parts := strings.Split(body, "/")
	if len(parts) != 3 {
		return screen.Color{}, false
	}

	var channels [3]uint8
	for i, part := range parts {
		if len(part) < 1 || len(part) > 4 {
			return screen.Color{}, false
		}
		v, err := strconv.ParseUint(part, 16, 16)
		if err != nil {
			return screen.Color{}, false
		}
		// rgb: channels scale by their own width: "8" means 8/F,
		// "80" means 0x80/0xFF, and so on.
		max := uint64(1)<<(4*len(part)) - 1
		channels[i] = uint8(v * 0xFF / max)
	}
	return screen.Color{R: channels[0], G: channels[1], B: channels[2]}, true
}

func parseIntensityColor(body string) (screen.Color, bool) {
	parts := strings.Split(body, "/")
	if len(parts) != 3 {
		return screen.Color{}, false
	}

	var channels [3]uint8
	for i, part := range parts {
		f, err := strconv.ParseFloat(part, 64)
		if err != nil || f < 0 || f > 1 {
			return screen.Color{}, false
		}
		channels[i] = uint8(f*255 + 0.5)
	}
	return screen.Color{R: channels[0], G: channels[1], B: channels[2]}, true
}
