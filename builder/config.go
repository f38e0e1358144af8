// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng       = nil          (pure/deterministic unless seeded)
//   • lo, hi    = -100, 100    (inclusive value range of Random)
//   • storeOpts = none         (matrix defaults: bounds-checked stores)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/strassen/matrix"
)

// Deterministic defaults (named, no magic numbers).
const (
	// DefaultMin is the inclusive lower bound of values drawn by Random.
	DefaultMin int64 = -100
	// DefaultMax is the inclusive upper bound of values drawn by Random.
	DefaultMax int64 = 100
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Inclusive value range for Random.
	lo, hi int64
	// Options forwarded to matrix.NewStore for every store built.
	storeOpts []matrix.Option
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		lo: DefaultMin,
		hi: DefaultMax,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
