// Copyright 2025 The Thaumaturgia Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads thaumctl's settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Output formats for encoded content.
const (
	OutputText   = "text"
	OutputBinary = "binary"
)

// Config is thaumctl's configuration.
type Config struct {
	Log LogConfig `envPrefix:"THAUM_LOG_"`
	// Output is the default encoding for the encode command: text or binary.
	Output string `env:"THAUM_OUTPUT" envDefault:"text"`
	// AllowOverwrite lets content definitions replace earlier registrations.
	AllowOverwrite bool `env:"THAUM_ALLOW_OVERWRITE" envDefault:"false"`
}

// LogConfig defines logger settings.
type LogConfig struct {
	// Level: debug, info, warn, error.
	Level string `env:"LEVEL" envDefault:"info"`
	// Format: console or json.
	Format string `env:"FORMAT" envDefault:"console"`
	// Development toggles development-friendly logging options.
	Development bool `env:"DEVELOPMENT" envDefault:"false"`
	// File, if set, sends logs to a rotating file instead of standard error.
	File       string `env:"FILE"`
	MaxSizeMB  int    `env:"MAX_SIZE_MB" envDefault:"10"`
	MaxBackups int    `env:"MAX_BACKUPS" envDefault:"3"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate rejects unknown output and log formats.
func (c Config) Validate() error {
	switch strings.ToLower(c.Output) {
	case OutputText, OutputBinary:
	default:
		return fmt.Errorf("invalid output %q: want %s or %s", c.Output, OutputText, OutputBinary)
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q: want console or json", c.Log.Format)
	}
	return nil
}
