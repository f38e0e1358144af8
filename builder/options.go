// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math"
	"math/rand" // RNG source for stochastic builders

	"github.com/katalvlaran/strassen/matrix"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before the store is built.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
// The RNG is not goroutine-safe: do not share it between concurrent builds.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRange sets the inclusive range [lo, hi] of values drawn by Random.
// Panics when lo > hi or when the span does not fit in an int64.
func WithRange(lo, hi int64) BuilderOption {
	if lo > hi {
		panic("builder: WithRange: lo > hi")
	}
	if span := hi - lo; span < 0 || span == math.MaxInt64 {
		panic("builder: WithRange: span overflows int64")
	}
	return func(c *builderConfig) {
		c.lo, c.hi = lo, hi
	}
}

// WithStoreOptions forwards matrix options (e.g. matrix.WithBoundsCheck) to
// every store the constructor allocates. Repeated use appends.
func WithStoreOptions(opts ...matrix.Option) BuilderOption {
	return func(c *builderConfig) {
		c.storeOpts = append(c.storeOpts, opts...)
	}
}
