// SPDX-License-Identifier: MIT

package strassen

import (
	"fmt"

	"github.com/katalvlaran/strassen/matrix"
)

// Multiplier runs the depth-limited parallel Strassen algorithm with a fixed
// configuration. A Multiplier holds no mutable state and may be shared by any
// number of goroutines.
type Multiplier[T matrix.Number] struct {
	opts Options
}

// New returns a Multiplier configured by opts over DefaultOptions.
func New[T matrix.Number](opts ...Option) *Multiplier[T] {
	return &Multiplier[T]{opts: gatherOptions(opts...)}
}

// Options returns the resolved configuration.
func (m *Multiplier[T]) Options() Options { return m.opts }

// Forks reports whether a frame at the given depth spawns concurrent tasks.
// It depends on depth and configuration only, never on the call site.
func (m *Multiplier[T]) Forks(depth int) bool {
	return m.opts.parallel && depth <= m.opts.maxDepth
}

// Multiply computes C = A·B with the default Multiplier. depth is the number
// of recursion levels already entered; callers start at 0.
func Multiply[T matrix.Number](a, b, c matrix.Region[T], size, depth int) error {
	return New[T]().Multiply(a, b, c, size, depth)
}

// Multiply computes C = A·B for size×size regions, overwriting C.
//
// Policy, in order:
//  1. size == 1: C(0,0) = A(0,0)·B(0,0).
//  2. size odd: Naive (odd sizes are not padded, even at the top level).
//  3. depth > MaxDepth: Naive.
//  4. otherwise split into quadrants and recurse:
//
//	S1 = B12 − B22   S2 = A11 + A12   S3 = A21 + A22   S4 = B21 − B11
//	S5 = A11 + A22   S6 = B11 + B22   S7 = A12 − A22   S8 = B21 + B22
//	S9 = A11 − A21   S10 = B11 + B12
//
//	P1 = A11·S1   P2 = S2·B22   P3 = S3·B11   P4 = A22·S4
//	P5 = S5·S6    P6 = S7·S8    P7 = S9·S10
//
//	C11 = P5 + P4 − P2 + P6   C12 = P1 + P2
//	C21 = P3 + P4             C22 = P5 + P1 − P3 − P7
//
// The ten sums, the seven products and the four combinations are each a
// fork/join group when Forks(depth) holds; the groups run in that order.
//
// Errors:
//   - ErrInvalidSize, ErrNegativeDepth, matrix.ErrNilStore,
//     matrix.ErrDimensionMismatch from argument validation;
//   - any view, access or allocation error raised while recursing,
//     propagated unchanged.
func (m *Multiplier[T]) Multiply(a, b, c matrix.Region[T], size, depth int) error {
	if err := validate(a, b, c, size, depth); err != nil {
		return fmt.Errorf("Strassen: %w", err)
	}

	return m.multiply(a, b, c, size, depth)
}

func (m *Multiplier[T]) multiply(a, b, c matrix.Region[T], size, depth int) error {
	if size == 1 {
		return single(a, b, c)
	}
	if size%2 != 0 || depth > m.opts.maxDepth {
		return naive(a, b, c, size)
	}

	a11, a12, a21, a22, err := a.Quadrants()
	if err != nil {
		return err
	}
	b11, b12, b21, b22, err := b.Quadrants()
	if err != nil {
		return err
	}
	c11, c12, c21, c22, err := c.Quadrants()
	if err != nil {
		return err
	}

	// Frame-local scratch; unreachable once this call returns.
	half := size / 2
	s, err := scratch[T](10, half, c.Checked())
	if err != nil {
		return err
	}
	p, err := scratch[T](7, half, c.Checked())
	if err != nil {
		return err
	}
	s1, s2, s3, s4, s5 := s[0], s[1], s[2], s[3], s[4]
	s6, s7, s8, s9, s10 := s[5], s[6], s[7], s[8], s[9]
	p1, p2, p3, p4, p5, p6, p7 := p[0], p[1], p[2], p[3], p[4], p[5], p[6]

	fork := m.Forks(depth)
	plus, minus := matrix.Plus[T], matrix.Minus[T]

	err = forkJoin(fork,
		m.sum(fork, s1, plus(b12), minus(b22)),
		m.sum(fork, s2, plus(a11), plus(a12)),
		m.sum(fork, s3, plus(a21), plus(a22)),
		m.sum(fork, s4, plus(b21), minus(b11)),
		m.sum(fork, s5, plus(a11), plus(a22)),
		m.sum(fork, s6, plus(b11), plus(b22)),
		m.sum(fork, s7, plus(a12), minus(a22)),
		m.sum(fork, s8, plus(b21), plus(b22)),
		m.sum(fork, s9, plus(a11), minus(a21)),
		m.sum(fork, s10, plus(b11), plus(b12)),
	)
	if err != nil {
		return err
	}

	err = forkJoin(fork,
		m.product(a11, s1, p1, half, depth+1),
		m.product(s2, b22, p2, half, depth+1),
		m.product(s3, b11, p3, half, depth+1),
		m.product(a22, s4, p4, half, depth+1),
		m.product(s5, s6, p5, half, depth+1),
		m.product(s7, s8, p6, half, depth+1),
		m.product(s9, s10, p7, half, depth+1),
	)
	if err != nil {
		return err
	}

	return forkJoin(fork,
		m.sum(fork, c11, plus(p5), plus(p4), minus(p2), plus(p6)),
		m.sum(fork, c12, plus(p1), plus(p2)),
		m.sum(fork, c21, plus(p3), plus(p4)),
		m.sum(fork, c22, plus(p5), plus(p1), minus(p3), minus(p7)),
	)
}

// single is the 1×1 base case.
func single[T matrix.Number](a, b, c matrix.Region[T]) error {
	x, err := a.At(0, 0)
	if err != nil {
		return err
	}
	y, err := b.At(0, 0)
	if err != nil {
		return err
	}

	return c.Set(0, 0, x*y)
}

// product returns the task computing z = x·y one level deeper.
func (m *Multiplier[T]) product(x, y, z matrix.Region[T], size, depth int) func() error {
	return func() error { return m.multiply(x, y, z, size, depth) }
}

// sum returns the task computing dst = ±t0 ± t1 ..., split into row bands
// when the frame forks and dst is tall enough.
func (m *Multiplier[T]) sum(fork bool, dst matrix.Region[T], terms ...matrix.Term[T]) func() error {
	return func() error {
		n := dst.Rows()

		return forEachBand(fork, n, m.opts.rowGrain, func(lo, hi int) error {
			if lo == 0 && hi == n {
				return matrix.Combine(dst, terms...)
			}
			band, err := dst.View(lo, 0, hi-lo, dst.Cols())
			if err != nil {
				return err
			}
			bandTerms := make([]matrix.Term[T], len(terms))
			for k, t := range terms {
				if bandTerms[k], err = t.Rows(lo, hi); err != nil {
					return err
				}
			}

			return matrix.Combine(band, bandTerms...)
		})
	}
}

// scratch allocates count size×size stores with the given bounds-check
// policy and returns their full regions.
func scratch[T matrix.Number](count, size int, checked bool) ([]matrix.Region[T], error) {
	out := make([]matrix.Region[T], count)
	for i := range out {
		st, err := matrix.NewStore[T](size, size, matrix.WithBoundsCheck(checked))
		if err != nil {
			return nil, fmt.Errorf("scratch %dx%d: %w", size, size, err)
		}
		out[i] = st.Full()
	}

	return out, nil
}

// Product allocates C and computes C = A·B for square stores of equal size,
// starting at depth 0. C inherits A's bounds-check policy.
// Errors: matrix.ErrNilStore, matrix.ErrDimensionMismatch, plus Multiply's.
func Product[T matrix.Number](a, b *matrix.Store[T], opts ...Option) (*matrix.Store[T], error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Product: %w", matrix.ErrNilStore)
	}
	n := a.Rows()
	if a.Cols() != n || b.Rows() != n || b.Cols() != n {
		return nil, fmt.Errorf("Product: %dx%d · %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), matrix.ErrDimensionMismatch)
	}
	c, err := matrix.NewStore[T](n, n, matrix.WithBoundsCheck(a.Checked()))
	if err != nil {
		return nil, fmt.Errorf("Product: %w", err)
	}
	if err = New[T](opts...).Multiply(a.Full(), b.Full(), c.Full(), n, 0); err != nil {
		return nil, err
	}

	return c, nil
}
