// SPDX-License-Identifier: MIT

package cranes

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dockyard/grid"
)

// Environment variables that override file and default settings.
const (
	EnvAlgorithm = "DOCKYARD_ALGORITHM"
	EnvStepLimit = "DOCKYARD_STEP_LIMIT"
)

// Config holds search settings that can be loaded from YAML.
//
// Example:
//
//	algorithm: exhaustive
//	step_limit: 20
//	verify: true
//	log_level: debug
//
// Thread Safety: Safe to read concurrently. Not safe to modify after creation.
type Config struct {
	// Algorithm is "dynprog" or "exhaustive".
	Algorithm string `json:"algorithm" yaml:"algorithm"`

	// StepLimit bounds rows+columns-2 for exhaustive search; 0 disables it.
	StepLimit int `json:"step_limit" yaml:"step_limit"`

	// Verify runs both searches and cross-checks them instead of Algorithm.
	Verify bool `json:"verify" yaml:"verify"`

	// LogLevel is a slog level name: debug, info, warn, error.
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// DefaultConfig returns dynamic programming, DefaultStepLimit, no
// verification, info logging.
func DefaultConfig() Config {
	return Config{
		Algorithm: nameDynProg,
		StepLimit: DefaultStepLimit,
		Verify:    false,
		LogLevel:  "info",
	}
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
// Keys absent from data keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// LoadConfig loads configuration with priority: env > file > defaults.
// An empty path or a missing file means defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// File doesn't exist, use defaults
		case err != nil:
			return cfg, fmt.Errorf("load config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("load config file %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// applyEnv overrides fields from EnvAlgorithm and EnvStepLimit when set.
func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvAlgorithm); ok && v != "" {
		c.Algorithm = v
	}
	if v, ok := os.LookupEnv(EnvStepLimit); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvStepLimit, v, ErrInvalidConfig)
		}
		c.StepLimit = n
	}

	return nil
}

// Validate checks every field. Errors wrap ErrInvalidConfig, and also
// ErrUnknownAlgorithm for a bad algorithm name.
func (c Config) Validate() error {
	if _, err := ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("algorithm: %w: %w", ErrInvalidConfig, err)
	}
	if c.StepLimit < 0 {
		return fmt.Errorf("step_limit=%d must be >= 0: %w", c.StepLimit, ErrInvalidConfig)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel; empty means info.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level=%q: %w", c.LogLevel, ErrInvalidConfig)
	}

	return lvl, nil
}

// Options converts c into search options. c must be valid. A nil logger
// gets a text logger on stderr at c's level.
func (c Config) Options(logger *slog.Logger) ([]Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	algo, _ := ParseAlgorithm(c.Algorithm)
	if logger == nil {
		lvl, _ := c.Level()
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	}

	return []Option{
		WithAlgorithm(algo),
		WithStepLimit(c.StepLimit),
		WithLogger(logger),
	}, nil
}

// SolveWithConfig runs Verify when cfg.Verify is set, Solve otherwise.
func SolveWithConfig(ctx context.Context, g *grid.Grid, cfg Config, logger *slog.Logger) (Result, error) {
	opts, err := cfg.Options(logger)
	if err != nil {
		return Result{}, err
	}
	if cfg.Verify {
		return Verify(ctx, g, opts...)
	}

	return Solve(ctx, g, opts...)
}
