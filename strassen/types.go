// SPDX-License-Identifier: MIT

// Package strassen defines sentinel errors and configuration options for the
// naive and Strassen multipliers.
//
// Options:
//
//	– MaxDepth:  deepest recursion level that still recurses (and forks);
//	             frames with depth > MaxDepth fall back to Naive. Default 1,
//	             i.e. two forking levels (depth 0 and depth 1).
//	– Parallel:  whether forking frames run their independent steps as
//	             concurrent tasks. Default true.
//	– RowGrain:  minimum number of rows per concurrent band inside a single
//	             elementwise step. Default 64.
//
// Errors (sentinel):
//
//	– ErrInvalidSize   if size <= 0.
//	– ErrNegativeDepth if depth < 0.
//	– matrix.ErrDimensionMismatch if an operand is not size×size.

package strassen

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the multipliers.
var (
	// ErrInvalidSize indicates a non-positive problem size.
	ErrInvalidSize = errors.New("strassen: size must be > 0")

	// ErrNegativeDepth indicates a negative starting recursion depth.
	ErrNegativeDepth = errors.New("strassen: depth must be >= 0")
)

// Defaults (single source of truth).
const (
	// DefaultMaxDepth bounds recursion to two forking levels, which caps the
	// number of simultaneously schedulable leaf products at 7 + 7*7 = 56.
	DefaultMaxDepth = 1

	// DefaultParallel enables fork/join at forking depths.
	DefaultParallel = true

	// DefaultRowGrain is the minimum band height for row-parallel kernels.
	DefaultRowGrain = 64
)

// Internal panic messages (no magic strings).
const (
	panicMaxDepthNegative = "strassen: WithMaxDepth: depth must be >= 0"
	panicRowGrainInvalid  = "strassen: WithRowGrain: grain must be >= 1"
)

// Option configures a Multiplier. Constructors panic only on nonsensical
// values (programmer error); the algorithms themselves never panic on input.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxDepth int  // DefaultMaxDepth
	parallel bool // DefaultParallel
	rowGrain int  // DefaultRowGrain
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		maxDepth: DefaultMaxDepth,
		parallel: DefaultParallel,
		rowGrain: DefaultRowGrain,
	}
}

// MaxDepth returns the resolved recursion cutoff.
func (o Options) MaxDepth() int { return o.maxDepth }

// Parallel reports whether forking frames spawn tasks.
func (o Options) Parallel() bool { return o.parallel }

// RowGrain returns the minimum band height for row-parallel kernels.
func (o Options) RowGrain() int { return o.rowGrain }

// String renders the options for logs and test names.
func (o Options) String() string {
	return fmt.Sprintf("maxDepth=%d parallel=%t rowGrain=%d", o.maxDepth, o.parallel, o.rowGrain)
}

// WithMaxDepth sets the recursion cutoff: a frame at depth d recurses while
// d <= depth and falls back to Naive once d > depth.
// Panics if depth < 0.
func WithMaxDepth(depth int) Option {
	if depth < 0 {
		panic(panicMaxDepthNegative)
	}

	return func(o *Options) { o.maxDepth = depth }
}

// WithSequential runs every step of every frame on the calling goroutine.
// Numeric results are identical to the parallel mode.
func WithSequential() Option {
	return func(o *Options) { o.parallel = false }
}

// WithParallel re-enables fork/join (the default).
func WithParallel() Option {
	return func(o *Options) { o.parallel = true }
}

// WithRowGrain sets the minimum band height for row-parallel kernels.
// Panics if grain < 1.
func WithRowGrain(grain int) Option {
	if grain < 1 {
		panic(panicRowGrainInvalid)
	}

	return func(o *Options) { o.rowGrain = grain }
}

// gatherOptions applies opts over DefaultOptions; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
