// Copyright © 2026 Phosphor contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: JSON configuration store for phosphor.

package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

const configName = "phosphor.json"

// Config is the user-tunable startup state. Anything absent from the
// file keeps its default.
type Config struct {
	// Shell is the command spawned on the pseudoterminal.
	Shell string `json:"shell"`
	// Answerback is transmitted verbatim in response to ENQ.
	Answerback string `json:"answerback"`
	// Columns and Rows size the initial grid.
	Columns int `json:"columns"`
	Rows    int `json:"rows"`
	// BlinkMillis is the cursor/SGR blink half-period.
	BlinkMillis int `json:"blink_millis"`
}

// Default returns the factory configuration.
func Default() Config {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	return Config{
		Shell:       shell,
		Answerback:  "",
		Columns:     80,
		Rows:        24,
		BlinkMillis: 400,
	}
}

// Load reads the user config file, merging it over the defaults. A
// missing file is not an error.
func Load() (Config, error) {
	cfg := Default()

	dir, err := os.UserConfigDir()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(filepath.Join(dir, "phosphor", configName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	if cfg.Columns <= 0 || cfg.Rows <= 0 {
		def := Default()
		cfg.Columns, cfg.Rows = def.Columns, def.Rows
	}
	if cfg.BlinkMillis <= 0 {
		cfg.BlinkMillis = Default().BlinkMillis
	}
	return cfg, nil
}

// Save writes the configuration back to the user config directory.
func Save(cfg Config) error {
	dir, err := os.UserConfigDir()
	if err != nil {
		return err
	}
	dir = filepath.Join(dir, "phosphor")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, configName), data, 0o644)
}
