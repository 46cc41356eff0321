// SPDX-License-Identifier: MIT

// Package config loads lvmat session settings.
//
// Settings are layered, later layers winning:
//
//  1. Default()
//  2. an optional YAML file (a missing file is not an error)
//  3. LVMAT_* environment variables
//  4. command-line flags, applied by the caller
//
// Validate must be called after the last layer.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a setting outside its accepted range.
var ErrInvalidConfig = errors.New("config: invalid setting")

// Config holds every tunable of a session.
type Config struct {
	// Capacity is the number of registry slots.
	Capacity int `yaml:"capacity" env:"LVMAT_CAPACITY"`

	// DataDir is where write stores files and relative reads resolve.
	DataDir string `yaml:"data_dir" env:"LVMAT_DATA_DIR"`

	// Prompt is printed before every input line.
	Prompt string `yaml:"prompt" env:"LVMAT_PROMPT"`

	// History bounds the interactive line history.
	History int `yaml:"history" env:"LVMAT_HISTORY"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"LVMAT_LOG_LEVEL"`

	// Bootstrap creates, randomizes and writes the temp_mat fixture at startup.
	Bootstrap bool `yaml:"bootstrap" env:"LVMAT_BOOTSTRAP"`

	// Seed fixes the random generator. Zero draws a fresh seed.
	Seed int64 `yaml:"seed" env:"LVMAT_SEED"`

	// MetricsFile receives a Prometheus textfile dump at exit when set.
	MetricsFile string `yaml:"metrics_file" env:"LVMAT_METRICS_FILE"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Capacity: 10,
		DataDir:  ".",
		Prompt:   "> ",
		History:  50,
		LogLevel: "info",
	}
}

// Load returns Default() overlaid with the YAML file at path (if it exists)
// and then with the environment. An empty path skips the file layer.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err = yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks every setting.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("capacity %d: %w", c.Capacity, ErrInvalidConfig)
	}
	if c.History < 0 {
		return fmt.Errorf("history %d: %w", c.History, ErrInvalidConfig)
	}
	if c.DataDir == "" {
		return fmt.Errorf("empty data_dir: %w", ErrInvalidConfig)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level maps LogLevel to a slog.Level.
func (c Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.LogLevel, ErrInvalidConfig)
}
