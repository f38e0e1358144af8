// SPDX-License-Identifier: MIT
package strassen_test

import (
	"testing"

	"github.com/katalvlaran/strassen/builder"
	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/strassen"
)

// randomStore returns an n×n store of values in [-100, 100] fixed by seed.
func randomStore[T matrix.Number](tb testing.TB, n int, seed int64, opts ...matrix.Option) *matrix.Store[T] {
	tb.Helper()
	s, err := builder.Random[T](n, n, builder.WithSeed(seed), builder.WithStoreOptions(opts...))
	if err != nil {
		tb.Fatalf("Random(%d): %v", n, err)
	}

	return s
}

// literal builds a store from a row literal.
func literal[T matrix.Number](tb testing.TB, rows [][]T, opts ...matrix.Option) *matrix.Store[T] {
	tb.Helper()
	s, err := builder.FromRows(rows, builder.WithStoreOptions(opts...))
	if err != nil {
		tb.Fatalf("FromRows: %v", err)
	}

	return s
}

// zeros allocates an n×n zero store.
func zeros[T matrix.Number](tb testing.TB, n int, opts ...matrix.Option) *matrix.Store[T] {
	tb.Helper()
	s, err := matrix.NewStore[T](n, n, opts...)
	if err != nil {
		tb.Fatalf("NewStore(%d): %v", n, err)
	}

	return s
}

// naiveOf returns the reference product A·B.
func naiveOf[T matrix.Number](tb testing.TB, a, b *matrix.Store[T]) *matrix.Store[T] {
	tb.Helper()
	n := a.Rows()
	c := zeros[T](tb, n)
	if err := strassen.Naive(a.Full(), b.Full(), c.Full(), n); err != nil {
		tb.Fatalf("Naive(%d): %v", n, err)
	}

	return c
}
