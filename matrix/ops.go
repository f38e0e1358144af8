// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide elementwise kernels over Regions (Add, Sub, Combine, Copy, Fill,
//     Zero, Identity, Equal) without allocating: every kernel writes into a
//     caller-provided destination region.
//   - Keep loops deterministic (i→j) and cache-friendly: each row is resolved
//     once to a slice of the root buffer.
//
// Contract:
//   - Operands must have identical shapes (ErrDimensionMismatch otherwise) and
//     be backed by a store (ErrNilStore otherwise).
//   - dst may coincide exactly with the FIRST source term; any other overlap
//     between dst and a source is unsupported.
//   - Kernels are safe to run concurrently on disjoint destination regions.

package matrix

import "fmt"

// Term is one signed operand of Combine.
type Term[T Number] struct {
	src Region[T]
	neg bool
}

// Plus returns the term +r.
func Plus[T Number](r Region[T]) Term[T] { return Term[T]{src: r} }

// Minus returns the term -r.
func Minus[T Number](r Region[T]) Term[T] { return Term[T]{src: r, neg: true} }

// Source returns the region the term reads.
func (t Term[T]) Source() Region[T] { return t.src }

// Negated reports whether the term is subtracted.
func (t Term[T]) Negated() bool { return t.neg }

// Rows restricts the term to rows [lo, hi) of its source, keeping the sign.
// Errors follow Region.View.
func (t Term[T]) Rows(lo, hi int) (Term[T], error) {
	v, err := t.src.View(lo, 0, hi-lo, t.src.c)
	if err != nil {
		return Term[T]{}, err
	}

	return Term[T]{src: v, neg: t.neg}, nil
}

// row returns row i without bounds checks; callers validate shapes first.
func (v Region[T]) row(i int) []T {
	off := (v.r0+i)*v.base.c + v.c0

	return v.base.data[off : off+v.c : off+v.c]
}

// sameShape validates that every operand is backed and shaped like dst.
func sameShape[T Number](kernel string, dst Region[T], srcs ...Region[T]) error {
	if dst.base == nil {
		return kernelErrorf(kernel, ErrNilStore)
	}
	for _, s := range srcs {
		if s.base == nil {
			return kernelErrorf(kernel, ErrNilStore)
		}
		if s.r != dst.r || s.c != dst.c {
			return kernelErrorf(kernel, fmt.Errorf("%dx%d vs %dx%d: %w", s.r, s.c, dst.r, dst.c, ErrDimensionMismatch))
		}
	}

	return nil
}

// Add computes dst = a + b.
// Complexity: O(r*c), no allocations.
func Add[T Number](dst, a, b Region[T]) error {
	if err := sameShape("Add", dst, a, b); err != nil {
		return err
	}
	for i := 0; i < dst.r; i++ {
		d, x, y := dst.row(i), a.row(i), b.row(i)
		for j := range d {
			d[j] = x[j] + y[j]
		}
	}

	return nil
}

// Sub computes dst = a - b.
// Complexity: O(r*c), no allocations.
func Sub[T Number](dst, a, b Region[T]) error {
	if err := sameShape("Sub", dst, a, b); err != nil {
		return err
	}
	for i := 0; i < dst.r; i++ {
		d, x, y := dst.row(i), a.row(i), b.row(i)
		for j := range d {
			d[j] = x[j] - y[j]
		}
	}

	return nil
}

// Combine computes dst = ±t0 ± t1 ± ... evaluated left to right per element.
// At least one term is required.
//
// Example: C11 = P5 + P4 − P2 + P6 is
//
//	Combine(c11, Plus(p5), Plus(p4), Minus(p2), Plus(p6))
//
// Complexity: O(len(terms)*r*c), no allocations.
func Combine[T Number](dst Region[T], terms ...Term[T]) error {
	if len(terms) == 0 {
		return kernelErrorf("Combine", fmt.Errorf("no terms: %w", ErrDimensionMismatch))
	}
	for _, t := range terms {
		if err := sameShape("Combine", dst, t.src); err != nil {
			return err
		}
	}
	for i := 0; i < dst.r; i++ {
		d := dst.row(i)
		s := terms[0].src.row(i)
		switch {
		case len(terms) == 1 && terms[0].neg:
			for j := range d {
				d[j] = -s[j]
			}
		case len(terms) == 1:
			copy(d, s)
		default:
			// First two terms in a single pass; the rest accumulate.
			y := terms[1].src.row(i)
			switch {
			case !terms[0].neg && !terms[1].neg:
				for j := range d {
					d[j] = s[j] + y[j]
				}
			case !terms[0].neg:
				for j := range d {
					d[j] = s[j] - y[j]
				}
			case !terms[1].neg:
				for j := range d {
					d[j] = -s[j] + y[j]
				}
			default:
				for j := range d {
					d[j] = -s[j] - y[j]
				}
			}
		}
		for k := 2; k < len(terms); k++ {
			s = terms[k].src.row(i)
			if terms[k].neg {
				for j := range d {
					d[j] -= s[j]
				}
				continue
			}
			for j := range d {
				d[j] += s[j]
			}
		}
	}

	return nil
}

// Copy overwrites dst with src. This is the explicit duplication path:
// stores are never copied implicitly.
func Copy[T Number](dst, src Region[T]) error {
	if err := sameShape("Copy", dst, src); err != nil {
		return err
	}
	for i := 0; i < dst.r; i++ {
		copy(dst.row(i), src.row(i))
	}

	return nil
}

// Fill sets dst(i,j) = fn(i,j) in row-major order.
func Fill[T Number](dst Region[T], fn func(i, j int) T) error {
	if err := sameShape[T]("Fill", dst); err != nil {
		return err
	}
	for i := 0; i < dst.r; i++ {
		d := dst.row(i)
		for j := range d {
			d[j] = fn(i, j)
		}
	}

	return nil
}

// Zero sets every element of dst to zero.
func Zero[T Number](dst Region[T]) error {
	if err := sameShape[T]("Zero", dst); err != nil {
		return err
	}
	for i := 0; i < dst.r; i++ {
		clear(dst.row(i))
	}

	return nil
}

// Identity writes the identity matrix into the square region dst.
func Identity[T Number](dst Region[T]) error {
	if err := sameShape[T]("Identity", dst); err != nil {
		return err
	}
	if dst.r != dst.c {
		return kernelErrorf("Identity", fmt.Errorf("%dx%d: %w", dst.r, dst.c, ErrDimensionMismatch))
	}
	for i := 0; i < dst.r; i++ {
		d := dst.row(i)
		clear(d)
		d[i] = 1
	}

	return nil
}

// Equal reports whether a and b have the same shape and identical elements.
// Two zero regions are equal; a zero region never equals a backed one.
func Equal[T Number](a, b Region[T]) bool {
	if a.base == nil || b.base == nil {
		return a.base == nil && b.base == nil
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := 0; i < a.r; i++ {
		x, y := a.row(i), b.row(i)
		for j := range x {
			if x[j] != y[j] {
				return false
			}
		}
	}

	return true
}
