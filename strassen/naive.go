// SPDX-License-Identifier: MIT

package strassen

import (
	"fmt"

	"github.com/katalvlaran/strassen/matrix"
)

// Naive computes C = A·B for size×size regions with the classic triple loop,
// overwriting any prior contents of C. It is the reference result and the
// fallback of Multiply for odd sizes and frames past the depth cutoff.
//
// Implementation:
//   - Stage 1: validate size and operand shapes.
//   - Stage 2: for each row i of C: clear it, then accumulate A(i,k)·B(k,·)
//     for k ascending (i→k→j order walks B and C rows contiguously).
//
// Behavior highlights:
//   - Every C(i,j) is summed over k in ascending order, matching the textbook
//     Σₖ A(i,k)·B(k,j) bit for bit, floating point included.
//   - C must not share storage with A or B.
//
// Errors:
//   - ErrInvalidSize, matrix.ErrNilStore, matrix.ErrDimensionMismatch.
//
// Complexity:
//   - Time Θ(size³), Space O(1).
func Naive[T matrix.Number](a, b, c matrix.Region[T], size int) error {
	if err := validate(a, b, c, size, 0); err != nil {
		return fmt.Errorf("Naive: %w", err)
	}

	return naive(a, b, c, size)
}

// naive is Naive without argument validation; recursion enters here.
func naive[T matrix.Number](a, b, c matrix.Region[T], size int) error {
	for i := 0; i < size; i++ {
		ci, err := c.Row(i)
		if err != nil {
			return err
		}
		ai, err := a.Row(i)
		if err != nil {
			return err
		}
		clear(ci[:size])
		for k := 0; k < size; k++ {
			bk, err := b.Row(k)
			if err != nil {
				return err
			}
			aik := ai[k]
			for j := 0; j < size; j++ {
				ci[j] += aik * bk[j]
			}
		}
	}

	return nil
}

// validate checks the shared preconditions of Naive and Multiply.
func validate[T matrix.Number](a, b, c matrix.Region[T], size, depth int) error {
	if size <= 0 {
		return fmt.Errorf("size %d: %w", size, ErrInvalidSize)
	}
	if depth < 0 {
		return fmt.Errorf("depth %d: %w", depth, ErrNegativeDepth)
	}
	operands := [...]struct {
		name string
		r    matrix.Region[T]
	}{{"A", a}, {"B", b}, {"C", c}}
	for _, op := range operands {
		if !op.r.Valid() {
			return fmt.Errorf("operand %s: %w", op.name, matrix.ErrNilStore)
		}
		if !op.r.Square(size) {
			return fmt.Errorf("operand %s is %dx%d, want %dx%d: %w",
				op.name, op.r.Rows(), op.r.Cols(), size, size, matrix.ErrDimensionMismatch)
		}
	}

	return nil
}
