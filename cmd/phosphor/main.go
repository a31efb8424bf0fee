// Copyright © 2026 Phosphor contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/phosphor/main.go
// Summary: Entry point: wires config, pty session, interpreter and window.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/phosphorterm/phosphor/config"
	"github.com/phosphorterm/phosphor/ptmx"
	"github.com/phosphorterm/phosphor/screen"
	"github.com/phosphorterm/phosphor/vtinterp"
	"github.com/phosphorterm/phosphor/window"
)

func main() {
	shellFlag := flag.String("shell", "", "command to run instead of the configured shell")
	logPath := flag.String("log", "", "append diagnostics to this file")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "phosphor: stdin is not a terminal")
		os.Exit(1)
	}

	if *logPath != "" {
		logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("phosphor: open log: %v", err)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	} else if devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0); err == nil {
		// Diagnostics would corrupt the tcell surface on stderr.
		log.SetOutput(devNull)
		defer devNull.Close()
	}

	cfg, err := config.Load()
	if err != nil {
		log.Printf("phosphor: config: %v (using defaults)", err)
	}
	if *shellFlag != "" {
		cfg.Shell = *shellFlag
	}

	if err := run(cfg); err != nil {
		log.Printf("phosphor: %v", err)
		fmt.Fprintf(os.Stderr, "phosphor: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	session, err := ptmx.Start(cfg.Shell, cfg.Columns, cfg.Rows)
	if err != nil {
		return fmt.Errorf("start shell: %w", err)
	}
	defer session.Close()

	ts, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open display: %w", err)
	}
	if err := ts.Init(); err != nil {
		return fmt.Errorf("init display: %w", err)
	}
	defer ts.Fini()

	scr := screen.New(cfg.Columns, cfg.Rows)
	blink := time.Duration(cfg.BlinkMillis) * time.Millisecond

	w := window.New(ts, scr, session, blink)
	interp := vtinterp.New(scr, session,
		vtinterp.WithHost(w),
		vtinterp.WithAnswerback(cfg.Answerback),
	)
	w.SetInterpreter(interp)

	return w.Run()
}
