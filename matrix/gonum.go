// SPDX-License-Identifier: MIT

// Package matrix - gonum interop.
//
// Purpose:
//   - Export a Region into a gonum *mat.Dense (float64 copy) so results can be
//     cross-checked against gonum's BLAS-backed Mul.
//   - Import any gonum mat.Matrix into a new Store, converting element-wise.
//
// Notes:
//   - Both directions copy; gonum never aliases a Store buffer.
//   - Conversion follows Go conversion rules: float64 → integer truncates
//     toward zero, out-of-range values are implementation-defined.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies the region into a new float64 gonum matrix.
// Returns nil for the zero Region or an empty one.
// Complexity: O(r*c).
func ToGonum[T Number](v Region[T]) *mat.Dense {
	if v.base == nil || v.r == 0 || v.c == 0 {
		return nil
	}
	buf := make([]float64, 0, v.r*v.c)
	for i := 0; i < v.r; i++ {
		for _, x := range v.row(i) {
			buf = append(buf, float64(x))
		}
	}

	return mat.NewDense(v.r, v.c, buf)
}

// FromGonum copies a gonum matrix into a new Store configured by opts.
// Errors: ErrNilStore for a nil matrix; ErrInvalidDimensions for empty shapes.
// Complexity: O(r*c).
func FromGonum[T Number](m mat.Matrix, opts ...Option) (*Store[T], error) {
	if m == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilStore)
	}
	r, c := m.Dims()
	s, err := NewStore[T](r, c, opts...)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	for i := 0; i < r; i++ {
		row := s.data[i*c : (i+1)*c]
		for j := range row {
			row[j] = T(m.At(i, j))
		}
	}

	return s, nil
}
