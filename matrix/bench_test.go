// SPDX-License-Identifier: MIT
// Package matrix_test benchmarks the elementwise kernels and element access.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/strassen/matrix"
)

func benchStores(b *testing.B, n int, opts ...matrix.Option) (x, y, z *matrix.Store[float64]) {
	b.Helper()
	x = mustStore[float64](b, n, n, opts...)
	y = mustStore[float64](b, n, n, opts...)
	z = mustStore[float64](b, n, n, opts...)
	_ = matrix.Fill(x.Full(), func(i, j int) float64 { return float64(i + j) })
	_ = matrix.Fill(y.Full(), func(i, j int) float64 { return float64(i - j) })

	return x, y, z
}

func BenchmarkCombine4_256(b *testing.B) {
	x, y, z := benchStores(b, 256)
	terms := []matrix.Term[float64]{
		matrix.Plus(x.Full()), matrix.Plus(y.Full()), matrix.Minus(x.Full()), matrix.Plus(y.Full()),
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = matrix.Combine(z.Full(), terms...)
	}
}

func BenchmarkRegionAt_Checked(b *testing.B) {
	x, _, _ := benchStores(b, 128)
	benchAt(b, x.Full())
}

func BenchmarkRegionAt_Unchecked(b *testing.B) {
	x, _, _ := benchStores(b, 128, matrix.WithBoundsCheck(false))
	benchAt(b, x.Full())
}

func benchAt(b *testing.B, v matrix.Region[float64]) {
	b.ReportAllocs()
	b.ResetTimer()
	var sink float64
	for i := 0; i < b.N; i++ {
		for r := 0; r < v.Rows(); r++ {
			for c := 0; c < v.Cols(); c++ {
				x, _ := v.At(r, c)
				sink += x
			}
		}
	}
	_ = sink
}
