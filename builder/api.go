// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - public entry-points for the builder package.
//
// Design contract (strict):
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed ⇒ identical stores.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"github.com/katalvlaran/strassen/matrix"
)

// Zeros allocates a rows×cols store filled with zeros.
// Errors: matrix.ErrInvalidDimensions, matrix.ErrAllocation (wrapped).
// Complexity: O(rows*cols).
func Zeros[T matrix.Number](rows, cols int, opts ...BuilderOption) (*matrix.Store[T], error) {
	cfg := newBuilderConfig(opts...)
	s, err := matrix.NewStore[T](rows, cols, cfg.storeOpts...)
	if err != nil {
		return nil, builderErrorf("Zeros", err)
	}

	return s, nil
}

// Identity allocates the n×n identity matrix.
// Errors: matrix.ErrInvalidDimensions, matrix.ErrAllocation (wrapped).
// Complexity: O(n²).
func Identity[T matrix.Number](n int, opts ...BuilderOption) (*matrix.Store[T], error) {
	cfg := newBuilderConfig(opts...)
	s, err := matrix.NewStore[T](n, n, cfg.storeOpts...)
	if err != nil {
		return nil, builderErrorf("Identity", err)
	}
	if err = matrix.Identity(s.Full()); err != nil {
		return nil, builderErrorf("Identity", err)
	}

	return s, nil
}

// FromRows copies a rectangular [][]T literal into a new store.
// Errors: matrix.ErrInvalidDimensions (no rows or empty rows), ErrRaggedRows.
// Complexity: O(rows*cols).
func FromRows[T matrix.Number](rows [][]T, opts ...BuilderOption) (*matrix.Store[T], error) {
	if len(rows) == 0 {
		return nil, builderErrorf("FromRows", matrix.ErrInvalidDimensions)
	}
	cols := len(rows[0])
	for _, row := range rows[1:] {
		if len(row) != cols {
			return nil, builderErrorf("FromRows", ErrRaggedRows)
		}
	}
	cfg := newBuilderConfig(opts...)
	s, err := matrix.NewStore[T](len(rows), cols, cfg.storeOpts...)
	if err != nil {
		return nil, builderErrorf("FromRows", err)
	}
	err = matrix.Fill(s.Full(), func(i, j int) T { return rows[i][j] })
	if err != nil {
		return nil, builderErrorf("FromRows", err)
	}

	return s, nil
}

// Random allocates a rows×cols store of integers drawn uniformly from the
// configured inclusive range (default [-100, 100]) in row-major order.
//
// Behavior highlights:
//   - Requires an RNG (WithSeed or WithRand); same seed ⇒ same store.
//   - Values are converted to T with Go conversion rules; negative values
//     wrap for unsigned element types, so pick a non-negative range for them.
//
// Errors: ErrNeedRandSource, matrix.ErrInvalidDimensions, matrix.ErrAllocation.
// Complexity: O(rows*cols).
func Random[T matrix.Number](rows, cols int, opts ...BuilderOption) (*matrix.Store[T], error) {
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf("Random", ErrNeedRandSource)
	}
	s, err := matrix.NewStore[T](rows, cols, cfg.storeOpts...)
	if err != nil {
		return nil, builderErrorf("Random", err)
	}
	span := cfg.hi - cfg.lo + 1
	err = matrix.Fill(s.Full(), func(int, int) T {
		return T(cfg.lo + cfg.rng.Int63n(span))
	})
	if err != nil {
		return nil, builderErrorf("Random", err)
	}

	return s, nil
}
