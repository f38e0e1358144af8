// SPDX-License-Identifier: MIT

// Package config resolves the command-line driver's settings from a .env file
// and the process environment.
//
// Lookup order (first wins): variables already set in the environment, then
// the first .env found in the working directory or up to four parents. Unset
// variables fall back to the documented defaults.
//
//	STRASSEN_SIZE          matrix row length N (0 ⇒ prompt)       default 0
//	STRASSEN_SEED          RNG seed (0 ⇒ time-based)              default 0
//	STRASSEN_MAX_DEPTH     recursion/fork cutoff                  default 1
//	STRASSEN_BOUNDS_CHECK  checked element access                 default true
//	STRASSEN_SEQUENTIAL    disable fork/join                      default false
//	STRASSEN_ROW_GRAIN     min rows per concurrent band           default 64
//	STRASSEN_QUIET         do not print matrices                  default false
//	STRASSEN_VERIFY        cross-check against gonum              default false
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/strassen"
)

// Environment variable names.
const (
	EnvSize        = "STRASSEN_SIZE"
	EnvSeed        = "STRASSEN_SEED"
	EnvMaxDepth    = "STRASSEN_MAX_DEPTH"
	EnvBoundsCheck = "STRASSEN_BOUNDS_CHECK"
	EnvSequential  = "STRASSEN_SEQUENTIAL"
	EnvRowGrain    = "STRASSEN_ROW_GRAIN"
	EnvQuiet       = "STRASSEN_QUIET"
	EnvVerify      = "STRASSEN_VERIFY"
)

// envFileName is the file looked up by Load.
const envFileName = ".env"

// maxLookup bounds the number of directories Load inspects.
const maxLookup = 5

// ErrInvalidConfig indicates an unparsable or out-of-range setting.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the driver settings.
type Config struct {
	Size        int
	Seed        int64
	MaxDepth    int
	BoundsCheck bool
	Sequential  bool
	RowGrain    int
	Quiet       bool
	Verify      bool
}

// Default returns the documented defaults.
func Default() *Config {
	return &Config{
		MaxDepth:    strassen.DefaultMaxDepth,
		BoundsCheck: matrix.DefaultBoundsCheck,
		RowGrain:    strassen.DefaultRowGrain,
	}
}

// Load reads the nearest .env file (if any) and then the environment.
func Load() (*Config, error) {
	// A missing or unreadable .env is not an error; the environment and the
	// defaults still apply.
	_ = loadEnvFile()

	return FromEnv()
}

// LoadFile reads the given .env file and then the environment. Unlike Load, a
// missing file is an error.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}

	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (*Config, error) {
	c := Default()
	var err error
	if c.Size, err = intVar(EnvSize, c.Size); err != nil {
		return nil, err
	}
	if c.Seed, err = int64Var(EnvSeed, c.Seed); err != nil {
		return nil, err
	}
	if c.MaxDepth, err = intVar(EnvMaxDepth, c.MaxDepth); err != nil {
		return nil, err
	}
	if c.BoundsCheck, err = boolVar(EnvBoundsCheck, c.BoundsCheck); err != nil {
		return nil, err
	}
	if c.Sequential, err = boolVar(EnvSequential, c.Sequential); err != nil {
		return nil, err
	}
	if c.RowGrain, err = intVar(EnvRowGrain, c.RowGrain); err != nil {
		return nil, err
	}
	if c.Quiet, err = boolVar(EnvQuiet, c.Quiet); err != nil {
		return nil, err
	}
	if c.Verify, err = boolVar(EnvVerify, c.Verify); err != nil {
		return nil, err
	}
	if err = c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch {
	case c.Size < 0:
		return fmt.Errorf("%s=%d must be >= 0: %w", EnvSize, c.Size, ErrInvalidConfig)
	case c.MaxDepth < 0:
		return fmt.Errorf("%s=%d must be >= 0: %w", EnvMaxDepth, c.MaxDepth, ErrInvalidConfig)
	case c.RowGrain < 1:
		return fmt.Errorf("%s=%d must be >= 1: %w", EnvRowGrain, c.RowGrain, ErrInvalidConfig)
	}

	return nil
}

// StrassenOptions translates the settings into multiplier options.
func (c *Config) StrassenOptions() []strassen.Option {
	opts := []strassen.Option{
		strassen.WithMaxDepth(c.MaxDepth),
		strassen.WithRowGrain(c.RowGrain),
	}
	if c.Sequential {
		opts = append(opts, strassen.WithSequential())
	}

	return opts
}

// MatrixOptions translates the settings into store options.
func (c *Config) MatrixOptions() []matrix.Option {
	return []matrix.Option{matrix.WithBoundsCheck(c.BoundsCheck)}
}

func intVar(name string, def int) (int, error) {
	s, ok := os.LookupEnv(name)
	if !ok || s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", name, s, ErrInvalidConfig)
	}

	return v, nil
}

func int64Var(name string, def int64) (int64, error) {
	s, ok := os.LookupEnv(name)
	if !ok || s == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", name, s, ErrInvalidConfig)
	}

	return v, nil
}

func boolVar(name string, def bool) (bool, error) {
	s, ok := os.LookupEnv(name)
	if !ok || s == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%s=%q: %w", name, s, ErrInvalidConfig)
	}

	return v, nil
}

// loadEnvFile walks up from the working directory until it finds a .env file.
func loadEnvFile() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	for i := 0; i < maxLookup; i++ {
		envPath := filepath.Join(dir, envFileName)
		if _, err := os.Stat(envPath); err == nil {
			return godotenv.Load(envPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil
}
