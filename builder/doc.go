// SPDX-License-Identifier: MIT

// Package builder constructs matrix stores for tests, examples and the
// command-line driver: zero, identity, literal and uniformly random matrices.
//
// All constructors resolve functional options into an immutable config;
// randomness is explicit (WithSeed / WithRand), so the same seed always
// yields the same matrix.
//
//	a, err := builder.Random[int](n, n, builder.WithSeed(42))
//	id, err := builder.Identity[int](n)
package builder
