// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Shape errors come from the matrix package (matrix.ErrInvalidDimensions,
//     matrix.ErrAllocation) and are wrapped, never re-declared here.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
// Typical origins: Random without RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrRaggedRows indicates that FromRows received rows of different lengths.
var ErrRaggedRows = errors.New("builder: rows have different lengths")

// builderErrorf wraps err with the constructor name.
func builderErrorf(ctor string, err error) error {
	return fmt.Errorf("builder.%s: %w", ctor, err)
}
