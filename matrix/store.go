// SPDX-License-Identifier: MIT

// Package matrix - Store: owning row-major buffer & accessors.
//
// Purpose:
//   - Provide the root addressable backing store: one contiguous row-major
//     buffer with the explicit index formula i*cols + j.
//   - Expose the same element-access and sub-windowing contract as Region.
//   - Forbid implicit duplication: a Store is handled through *Store and
//     carries a noCopy marker; duplicates are built explicitly (NewStore + Copy).
//
// Complexity quicksheet:
//   - NewStore: O(r*c) zero-init; At/Set/Ref: O(1); Full/View: O(1).

package matrix

import (
	"math"
	"math/bits"
	"unsafe"
)

const typStore = "Store"

// Store is an r×c matrix owning a contiguous row-major buffer.
//   - r,c hold dimensions (both > 0, immutable).
//   - data holds r*c elements; element (i,j) lives at data[i*c+j].
//   - checked is the bounds-check policy inherited by every derived Region.
type Store[T Number] struct {
	_       noCopy
	r, c    int
	data    []T
	checked bool
}

// NewStore allocates a zero-filled rows×cols store.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: reject element counts or byte sizes that overflow int (ErrAllocation).
//   - Stage 3: allocate and apply options (bounds-check policy).
//
// Notes:
//   - A genuine out-of-memory condition inside the Go runtime is fatal to the
//     process and cannot be reported as ErrAllocation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewStore[T Number](rows, cols int, opts ...Option) (*Store[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	n, err := checkedElems[T](rows, cols)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	return &Store[T]{
		r:       rows,
		c:       cols,
		data:    make([]T, n),
		checked: o.boundsCheck,
	}, nil
}

// checkedElems returns rows*cols, or ErrAllocation when either the element
// count or the byte size of the buffer does not fit in an int.
func checkedElems[T Number](rows, cols int) (int, error) {
	hi, lo := bits.Mul64(uint64(rows), uint64(cols))
	if hi != 0 || lo > math.MaxInt {
		return 0, ErrAllocation
	}
	var zero T
	size := uint64(unsafe.Sizeof(zero))
	hi, bytes := bits.Mul64(lo, size)
	if hi != 0 || bytes > math.MaxInt {
		return 0, ErrAllocation
	}

	return int(lo), nil
}

// Rows returns the row count.
func (m *Store[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Store[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Store[T]) Shape() (rows, cols int) { return m.r, m.c }

// Checked reports whether accesses through this store are bounds-checked.
func (m *Store[T]) Checked() bool { return m.checked }

// Full returns a region spanning the entire store; the canonical way to start
// working with an owned store as a view.
func (m *Store[T]) Full() Region[T] {
	return Region[T]{base: m, r: m.r, c: m.c}
}

// View returns the region [r, r+rows) × [c, c+cols) of the store.
// Same contract as Region.View; delegates to a freshly built full region.
func (m *Store[T]) View(r, c, rows, cols int) (Region[T], error) {
	if m == nil {
		return Region[T]{}, viewErrorf(typStore, r, c, rows, cols, ErrNilStore)
	}
	if m.checked && !fits(r, c, rows, cols, m.r, m.c) {
		return Region[T]{}, viewErrorf(typStore, r, c, rows, cols, ErrInvalidSubRegion)
	}

	return m.Full().view(r, c, rows, cols), nil
}

// indexOf returns the flat offset of (row, col), bounds-checked when the
// policy is on.
func (m *Store[T]) indexOf(row, col int) (int, bool) {
	if m.checked && (row < 0 || row >= m.r || col < 0 || col >= m.c) {
		return 0, false
	}

	return row*m.c + col, true
}

// At returns the element at (row, col).
// Errors: ErrOutOfBounds (checked mode only).
func (m *Store[T]) At(row, col int) (T, error) {
	p, err := m.ref(ctxAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return *p, nil
}

// Set stores v at (row, col).
// Errors: ErrOutOfBounds (checked mode only).
func (m *Store[T]) Set(row, col int, v T) error {
	p, err := m.ref(ctxSet, row, col)
	if err != nil {
		return err
	}
	*p = v

	return nil
}

// Ref returns a pointer to the element at (row, col); writes through the
// pointer are visible to every region over this store.
// Errors: ErrOutOfBounds (checked mode only).
func (m *Store[T]) Ref(row, col int) (*T, error) {
	return m.ref(ctxRef, row, col)
}

func (m *Store[T]) ref(method string, row, col int) (*T, error) {
	if m == nil {
		return nil, accessErrorf(typStore, method, row, col, ErrNilStore)
	}
	off, ok := m.indexOf(row, col)
	if !ok {
		return nil, accessErrorf(typStore, method, row, col, ErrOutOfBounds)
	}

	return &m.data[off], nil
}

// Row returns row i as a slice aliasing the buffer. The slice capacity is
// clipped to the row so append can never spill into row i+1.
// Errors: ErrOutOfBounds (checked mode only).
func (m *Store[T]) Row(i int) ([]T, error) {
	if m == nil {
		return nil, accessErrorf(typStore, ctxRow, i, 0, ErrNilStore)
	}

	return m.Full().Row(i)
}

// String implements fmt.Stringer; one bracketed line per row.
func (m *Store[T]) String() string {
	if m == nil {
		return "<nil>"
	}

	return m.Full().String()
}
