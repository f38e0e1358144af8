// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for store/region/kernel tests.
//   • Fail fast (t.Fatalf) on fixture errors so test bodies stay linear.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/strassen/matrix"
)

// mustStore ALLOCATES an r×c store or fails the test.
func mustStore[T matrix.Number](tb testing.TB, r, c int, opts ...matrix.Option) *matrix.Store[T] {
	tb.Helper()
	s, err := matrix.NewStore[T](r, c, opts...)
	if err != nil {
		tb.Fatalf("NewStore(%d,%d): %v", r, c, err)
	}

	return s
}

// fromRows builds a store from a rectangular literal or fails the test.
func fromRows[T matrix.Number](tb testing.TB, rows [][]T, opts ...matrix.Option) *matrix.Store[T] {
	tb.Helper()
	s := mustStore[T](tb, len(rows), len(rows[0]), opts...)
	if err := matrix.Fill(s.Full(), func(i, j int) T { return rows[i][j] }); err != nil {
		tb.Fatalf("Fill: %v", err)
	}

	return s
}

// seqStore returns an r×c int store with element (i,j) = i*c + j, so every
// value names its own root coordinates.
func seqStore(tb testing.TB, r, c int, opts ...matrix.Option) *matrix.Store[int] {
	tb.Helper()
	s := mustStore[int](tb, r, c, opts...)
	if err := matrix.Fill(s.Full(), func(i, j int) int { return i*c + j }); err != nil {
		tb.Fatalf("Fill: %v", err)
	}

	return s
}

// toRows reads a region back into a [][]T literal.
func toRows[T matrix.Number](tb testing.TB, v matrix.Region[T]) [][]T {
	tb.Helper()
	out := make([][]T, v.Rows())
	for i := range out {
		row, err := v.Row(i)
		if err != nil {
			tb.Fatalf("Row(%d): %v", i, err)
		}
		out[i] = append([]T(nil), row...)
	}

	return out
}
