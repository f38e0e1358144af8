// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Accessors and kernels MUST return these sentinels and tests MUST
// check them via errors.Is. No accessor panics on a user-triggered error while
// the bounds-check policy is enabled; with the policy disabled no check is made
// at all (see options.go).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Sentinels are wrapped once, at the detection
// site, with the method tag and coordinates: "Region.At(3,-1): matrix: ...".
//
// ERROR PRIORITY:
// nil store -> shape -> index/sub-region -> dimension mismatch -> allocation.

var (
	// ErrOutOfBounds indicates that an element access (row, col) lies outside
	// the extent of the store or region it was issued against.
	ErrOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrInvalidSubRegion indicates that a requested sub-window is not fully
	// contained in its parent (negative origin or extent past the parent edge).
	ErrInvalidSubRegion = errors.New("matrix: invalid sub-region")

	// ErrAllocation indicates that a store could not be created because its
	// element count or byte size does not fit the address space.
	ErrAllocation = errors.New("matrix: allocation failure")

	// ErrInvalidDimensions indicates that requested store dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrDimensionMismatch indicates incompatible extents between operands of
	// an elementwise kernel or a product.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilStore indicates use of a zero Region (no backing store) or a nil *Store.
	ErrNilStore = errors.New("matrix: nil store")
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxRef      = "Ref"
	ctxRow      = "Row"
	ctxView     = "View"
	ctxQuadrant = "Quadrants"
)

// accessErrorf wraps err with a uniform "<Type>.<method>(row,col)" context.
// Keep tags in constants for grep-ability and consistency.
func accessErrorf(typ, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", typ, method, row, col, err)
}

// viewErrorf wraps err for a sub-region request; all four arguments are
// reported because either the origin or the extent may be at fault.
func viewErrorf(typ string, r, c, rows, cols int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d,%d,%d): %w", typ, ctxView, r, c, rows, cols, err)
}

// kernelErrorf tags an error raised by an elementwise kernel.
func kernelErrorf(kernel string, err error) error {
	return fmt.Errorf("%s: %w", kernel, err)
}
