// SPDX-License-Identifier: MIT

// Package matrix - Region: non-owning, zero-copy window into a Store.
//
// Purpose:
//   - Address a rectangle of a Store without copying data; mutations through
//     a Region are mutations of the root buffer.
//   - Compose windows: Region.View offsets are relative to the parent region,
//     and every Region resolves to the same root Store handle.
//
// Ownership:
//   - The root Store owns the buffer. A Region holds the *Store handle plus
//     absolute offsets, so it keeps the buffer reachable for as long as the
//     Region itself is reachable; it can never dangle.
//   - A Region is a small value (one pointer, four ints). Pass it by value.
//
// Complexity quicksheet:
//   - At/Set/Ref/Row/View/Quadrants: O(1); String: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

const typRegion = "Region"

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Region is a rectangular window [r0, r0+r) × [c0, c0+c) of a root Store.
// The zero Region has no store; every accessor reports ErrNilStore.
type Region[T Number] struct {
	base *Store[T] // root storage owner
	r0   int       // top-left row offset in base
	c0   int       // top-left col offset in base
	r    int       // region height
	c    int       // region width
}

// Rows returns the number of rows in the region.
func (v Region[T]) Rows() int { return v.r }

// Cols returns the number of columns in the region.
func (v Region[T]) Cols() int { return v.c }

// Shape packs Rows() and Cols() into a single call.
func (v Region[T]) Shape() (rows, cols int) { return v.r, v.c }

// Offset returns the region origin in root-store coordinates.
func (v Region[T]) Offset() (row, col int) { return v.r0, v.c0 }

// Valid reports whether the region is backed by a store.
func (v Region[T]) Valid() bool { return v.base != nil }

// Checked reports the bounds-check policy inherited from the root store.
// The zero Region reports true: it rejects every access.
func (v Region[T]) Checked() bool { return v.base == nil || v.base.checked }

// Square reports whether the region is size×size.
func (v Region[T]) Square(size int) bool { return v.r == size && v.c == size }

// fits reports whether [r, r+rows) × [c, c+cols) lies inside maxR × maxC.
func fits(r, c, rows, cols, maxR, maxC int) bool {
	if r < 0 || c < 0 || rows < 0 || cols < 0 {
		return false
	}

	return r <= maxR-rows && c <= maxC-cols
}

// view composes a sub-window without validation.
func (v Region[T]) view(r, c, rows, cols int) Region[T] {
	return Region[T]{base: v.base, r0: v.r0 + r, c0: v.c0 + c, r: rows, c: cols}
}

// View returns the sub-region [r, r+rows) × [c, c+cols) relative to v.
//
// Behavior highlights:
//   - No data is copied; the result shares v's root store.
//   - Checked mode: r<0, c<0, negative extents, r+rows > Rows() or
//     c+cols > Cols() return ErrInvalidSubRegion.
//   - Unchecked mode: the window is composed as requested.
func (v Region[T]) View(r, c, rows, cols int) (Region[T], error) {
	if v.base == nil {
		return Region[T]{}, viewErrorf(typRegion, r, c, rows, cols, ErrNilStore)
	}
	if v.base.checked && !fits(r, c, rows, cols, v.r, v.c) {
		return Region[T]{}, viewErrorf(typRegion, r, c, rows, cols, ErrInvalidSubRegion)
	}

	return v.view(r, c, rows, cols), nil
}

// Quadrants splits an even square region into its four half-size blocks:
// top-left, top-right, bottom-left, bottom-right.
// Errors: ErrNilStore, ErrDimensionMismatch (not square, or odd extent).
func (v Region[T]) Quadrants() (q11, q12, q21, q22 Region[T], err error) {
	if v.base == nil {
		return q11, q12, q21, q22, fmt.Errorf("%s.%s: %w", typRegion, ctxQuadrant, ErrNilStore)
	}
	if v.r != v.c || v.r%2 != 0 {
		return q11, q12, q21, q22, fmt.Errorf("%s.%s: %dx%d: %w", typRegion, ctxQuadrant, v.r, v.c, ErrDimensionMismatch)
	}
	h := v.r / 2
	if q11, err = v.View(0, 0, h, h); err != nil {
		return
	}
	if q12, err = v.View(0, h, h, h); err != nil {
		return
	}
	if q21, err = v.View(h, 0, h, h); err != nil {
		return
	}
	q22, err = v.View(h, h, h, h)

	return
}

// inside reports whether (i, j) may be accessed under the policy.
func (v Region[T]) inside(i, j int) bool {
	return !v.base.checked || (i >= 0 && i < v.r && j >= 0 && j < v.c)
}

func (v Region[T]) ref(method string, i, j int) (*T, error) {
	if v.base == nil {
		return nil, accessErrorf(typRegion, method, i, j, ErrNilStore)
	}
	if !v.inside(i, j) {
		return nil, accessErrorf(typRegion, method, i, j, ErrOutOfBounds)
	}

	// Translate to root coordinates: (r0+i)*stride + (c0+j).
	return &v.base.data[(v.r0+i)*v.base.c+v.c0+j], nil
}

// At reads element (i,j) of the region.
// Errors: ErrNilStore; ErrOutOfBounds (checked mode only).
func (v Region[T]) At(i, j int) (T, error) {
	p, err := v.ref(ctxAt, i, j)
	if err != nil {
		var zero T
		return zero, err
	}

	return *p, nil
}

// Set writes element (i,j) of the region through to the root store.
// Errors: ErrNilStore; ErrOutOfBounds (checked mode only).
func (v Region[T]) Set(i, j int, val T) error {
	p, err := v.ref(ctxSet, i, j)
	if err != nil {
		return err
	}
	*p = val

	return nil
}

// Ref returns a pointer to element (i,j) of the region.
// Errors: ErrNilStore; ErrOutOfBounds (checked mode only).
func (v Region[T]) Ref(i, j int) (*T, error) {
	return v.ref(ctxRef, i, j)
}

// Row returns row i of the region as a slice of length Cols() aliasing the
// root buffer. Capacity is clipped so append reallocates instead of writing
// past the region's right edge.
// Errors: ErrNilStore; ErrOutOfBounds (checked mode only).
func (v Region[T]) Row(i int) ([]T, error) {
	if v.base == nil {
		return nil, accessErrorf(typRegion, ctxRow, i, 0, ErrNilStore)
	}
	if v.base.checked && (i < 0 || i >= v.r) {
		return nil, accessErrorf(typRegion, ctxRow, i, 0, ErrOutOfBounds)
	}
	off := (v.r0+i)*v.base.c + v.c0

	return v.base.data[off : off+v.c : off+v.c], nil
}

// String implements fmt.Stringer; one bracketed line per row.
func (v Region[T]) String() string {
	if v.base == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for i := 0; i < v.r; i++ {
		off := (v.r0+i)*v.base.c + v.c0
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < v.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprint(&sb, v.base.data[off+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
