// SPDX-License-Identifier: MIT

// Package matrix provides owned row-major matrix storage and zero-copy
// rectangular views over it.
//
// The matrix package provides:
//
//   - Store[T]: the root backing store. One contiguous buffer of rows*cols
//     elements, element (i,j) at offset i*cols + j. Dimensions are fixed at
//     construction and a Store is never copied implicitly.
//   - Region[T]: a bounded window into a Store. Regions are cheap values; taking
//     a sub-region composes offsets and never touches element data, which is
//     what lets divide-and-conquer algorithms recurse over quadrants without
//     allocating per call.
//   - Elementwise kernels (Add, Sub, Combine, Copy, Fill, Zero, Identity,
//     Equal) that write into caller-owned destination regions.
//   - gonum interop (ToGonum, FromGonum).
//
// Bounds checking is a per-store policy chosen with WithBoundsCheck. When it
// is enabled (the default) out-of-extent accesses return ErrOutOfBounds and
// oversized views return ErrInvalidSubRegion. When it is disabled nothing is
// checked and violations have unspecified results; use it only for code whose
// indices are already proven.
//
// Quick example:
//
//	a, _ := matrix.NewStore[int](2, 2)
//	_ = a.Set(0, 1, 7)
//	top, _ := a.View(0, 0, 1, 2) // first row, shares a's buffer
//	v, _ := top.At(0, 1)         // 7
package matrix
