// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for elementwise kernels.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strassen/matrix"
)

// TestAddSub covers the two-operand kernels.
func TestAddSub(t *testing.T) {
	a := fromRows(t, [][]int{{1, 2}, {3, 4}})
	b := fromRows(t, [][]int{{10, 20}, {30, 40}})
	dst := mustStore[int](t, 2, 2)

	require.NoError(t, matrix.Add(dst.Full(), a.Full(), b.Full()))
	require.Equal(t, [][]int{{11, 22}, {33, 44}}, toRows(t, dst.Full()))

	require.NoError(t, matrix.Sub(dst.Full(), a.Full(), b.Full()))
	require.Equal(t, [][]int{{-9, -18}, {-27, -36}}, toRows(t, dst.Full()))
}

// TestCombineSigns verifies every sign pattern and left-to-right accumulation.
func TestCombineSigns(t *testing.T) {
	a := fromRows(t, [][]int{{1, 2}, {3, 4}})
	b := fromRows(t, [][]int{{5, 6}, {7, 8}})
	c := fromRows(t, [][]int{{1, 1}, {1, 1}})
	dst := mustStore[int](t, 2, 2)
	A, B, C, D := a.Full(), b.Full(), c.Full(), dst.Full()

	cases := []struct {
		name  string
		terms []matrix.Term[int]
		want  [][]int
	}{
		{"+a", []matrix.Term[int]{matrix.Plus(A)}, [][]int{{1, 2}, {3, 4}}},
		{"-a", []matrix.Term[int]{matrix.Minus(A)}, [][]int{{-1, -2}, {-3, -4}}},
		{"a+b", []matrix.Term[int]{matrix.Plus(A), matrix.Plus(B)}, [][]int{{6, 8}, {10, 12}}},
		{"a-b", []matrix.Term[int]{matrix.Plus(A), matrix.Minus(B)}, [][]int{{-4, -4}, {-4, -4}}},
		{"-a+b", []matrix.Term[int]{matrix.Minus(A), matrix.Plus(B)}, [][]int{{4, 4}, {4, 4}}},
		{"-a-b", []matrix.Term[int]{matrix.Minus(A), matrix.Minus(B)}, [][]int{{-6, -8}, {-10, -12}}},
		{"b+a-c+b", []matrix.Term[int]{matrix.Plus(B), matrix.Plus(A), matrix.Minus(C), matrix.Plus(B)},
			[][]int{{10, 13}, {16, 19}}},
		{"b+a-a-c", []matrix.Term[int]{matrix.Plus(B), matrix.Plus(A), matrix.Minus(A), matrix.Minus(C)},
			[][]int{{4, 5}, {6, 7}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, matrix.Combine(D, tc.terms...))
			require.Equal(t, tc.want, toRows(t, D))
		})
	}
}

// TestCombineInPlaceFirstTerm checks that dst may be the first term.
func TestCombineInPlaceFirstTerm(t *testing.T) {
	a := fromRows(t, [][]int{{1, 2}, {3, 4}})
	b := fromRows(t, [][]int{{1, 1}, {1, 1}})

	require.NoError(t, matrix.Combine(a.Full(), matrix.Plus(a.Full()), matrix.Plus(b.Full()), matrix.Plus(b.Full())))
	require.Equal(t, [][]int{{3, 4}, {5, 6}}, toRows(t, a.Full()))
}

// TestCombineOnQuadrants runs a kernel over sibling views of one store.
func TestCombineOnQuadrants(t *testing.T) {
	s := seqStore(t, 4, 4)
	q11, q12, q21, q22, err := s.Full().Quadrants()
	require.NoError(t, err)

	out := mustStore[int](t, 2, 2)
	require.NoError(t, matrix.Combine(out.Full(), matrix.Plus(q11), matrix.Plus(q22), matrix.Minus(q12), matrix.Minus(q21)))
	// q11+q22-q12-q21 = (x) + (x+10) - (x+2) - (x+8) = 0 elementwise.
	require.Equal(t, [][]int{{0, 0}, {0, 0}}, toRows(t, out.Full()))
}

// TestCombineErrors covers the validation paths.
func TestCombineErrors(t *testing.T) {
	dst := mustStore[int](t, 2, 2).Full()
	wide := mustStore[int](t, 2, 3).Full()

	require.ErrorIs(t, matrix.Combine(dst), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.Combine(dst, matrix.Plus(dst), matrix.Minus(wide)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.Combine(dst, matrix.Plus(matrix.Region[int]{})), matrix.ErrNilStore)
	require.ErrorIs(t, matrix.Combine(matrix.Region[int]{}, matrix.Plus(dst)), matrix.ErrNilStore)
}

// TestTermRows checks band restriction of a signed term.
func TestTermRows(t *testing.T) {
	s := seqStore(t, 4, 2)
	term := matrix.Minus(s.Full())

	band, err := term.Rows(1, 3)
	require.NoError(t, err)
	require.True(t, band.Negated())
	require.Equal(t, [][]int{{2, 3}, {4, 5}}, toRows(t, band.Source()))

	_, err = term.Rows(3, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidSubRegion)
}

// TestKernelsShapeMismatch ensures every two-operand kernel validates shapes.
func TestKernelsShapeMismatch(t *testing.T) {
	a := mustStore[float64](t, 2, 2).Full()
	b := mustStore[float64](t, 3, 2).Full()

	require.ErrorIs(t, matrix.Add(a, a, b), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.Sub(a, b, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.Copy(a, b), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.Add(matrix.Region[float64]{}, a, a), matrix.ErrNilStore)
}

// TestCopy ensures Copy duplicates data rather than aliasing it.
func TestCopy(t *testing.T) {
	src := fromRows(t, [][]int{{1, 2}, {3, 4}})
	dst := mustStore[int](t, 2, 2)

	require.NoError(t, matrix.Copy(dst.Full(), src.Full()))
	require.True(t, matrix.Equal(dst.Full(), src.Full()))

	require.NoError(t, src.Set(0, 0, 100))
	v, _ := dst.At(0, 0)
	require.Equal(t, 1, v)
}

// TestFillZeroIdentity covers the initialisers.
func TestFillZeroIdentity(t *testing.T) {
	s := mustStore[int](t, 3, 3)

	require.NoError(t, matrix.Fill(s.Full(), func(i, j int) int { return i - j }))
	require.Equal(t, [][]int{{0, -1, -2}, {1, 0, -1}, {2, 1, 0}}, toRows(t, s.Full()))

	require.NoError(t, matrix.Identity(s.Full()))
	require.Equal(t, [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, toRows(t, s.Full()))

	require.NoError(t, matrix.Zero(s.Full()))
	require.Equal(t, [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, toRows(t, s.Full()))

	require.ErrorIs(t, matrix.Identity(mustStore[int](t, 2, 3).Full()), matrix.ErrDimensionMismatch)
}

// TestEqual covers shape, value and zero-region comparisons.
func TestEqual(t *testing.T) {
	a := fromRows(t, [][]int{{1, 2}, {3, 4}})
	b := fromRows(t, [][]int{{1, 2}, {3, 4}})
	c := fromRows(t, [][]int{{1, 2}, {3, 5}})
	wide := mustStore[int](t, 2, 3)

	require.True(t, matrix.Equal(a.Full(), b.Full()))
	require.False(t, matrix.Equal(a.Full(), c.Full()))
	require.False(t, matrix.Equal(a.Full(), wide.Full()))
	require.True(t, matrix.Equal(matrix.Region[int]{}, matrix.Region[int]{}))
	require.False(t, matrix.Equal(a.Full(), matrix.Region[int]{}))
}
