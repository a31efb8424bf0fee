// Copyright © 2026 Phosphor contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ptmx/ptmx.go
// Summary: Child shell lifecycle on a pseudoterminal.

package ptmx

import (
	"os"
	"os/exec"
	"syscall"

	"github.com/creack/pty"
)

// Session is a child shell attached to a pseudoterminal. Reads return
// the shell's output byte stream; writes feed its input.
type Session struct {
	cmd *exec.Cmd
	pty *os.File
}

// Start spawns command on a new pseudoterminal sized cols x rows.
func Start(command string, cols, rows int) (*Session, error) {
	cmd := exec.Command(command)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
	if err != nil {
		return nil, err
	}

	return &Session{cmd: cmd, pty: ptmx}, nil
}

// Read fills p with output from the shell. Returns io.EOF (wrapped in a
// PathError on some platforms) once the child hangs up.
func (s *Session) Read(p []byte) (int, error) {
	return s.pty.Read(p)
}

// Write sends input bytes to the shell.
func (s *Session) Write(p []byte) (int, error) {
	return s.pty.Write(p)
}

// Resize propagates a new terminal size to the pseudoterminal.
func (s *Session) Resize(cols, rows int) error {
	return pty.Setsize(s.pty, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
}

// Wait blocks until the child exits.
func (s *Session) Wait() error {
	return s.cmd.Wait()
}

// Close tears the session down: the child is signalled and the
// pseudoterminal handle released. Safe on every exit path.
func (s *Session) Close() error {
	if s.cmd.Process != nil {
		s.cmd.Process.Signal(syscall.SIGTERM)
	}
	return s.pty.Close()
}
