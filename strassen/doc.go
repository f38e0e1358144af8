// SPDX-License-Identifier: MIT

// Package strassen multiplies square matrices with a depth-limited, parallel
// Strassen divide-and-conquer algorithm and with a naive triple loop used as
// reference and fallback.
//
// Overview:
//
//   - Naive computes C = A·B in Θ(n³).
//   - Multiply splits A, B and C into quadrant views (matrix.Region), forms ten
//     half-size sums S1..S10, computes seven half-size products P1..P7
//     recursively and combines them into the four quadrants of C. Only the
//     scratch stores for S and P are allocated; operand quadrants are views.
//
// When recursion stops:
//
//   - size == 1 multiplies the single elements;
//   - odd sizes delegate to Naive (no padding);
//   - frames deeper than MaxDepth (default 1) delegate to Naive.
//
// Concurrency:
//
//   - A frame forks when Forks(depth) holds: parallel mode is on and
//     depth <= MaxDepth. Its ten sums, then its seven products, then its four
//     combinations run as concurrent tasks joined before the next group.
//   - Inside a forking frame, elementwise steps over at least two RowGrain
//     bands are further split into concurrent row bands.
//   - With the default MaxDepth, at most 7 + 7*7 = 56 leaf products are
//     schedulable at once. No locks are used: every task writes a region no
//     other task touches.
//   - There is no cancellation; a call runs to completion or to its first
//     error, and on error C holds unspecified partial results.
//
// Determinism:
//
//   - For integer element types results are exact and independent of MaxDepth,
//     parallel mode and RowGrain. Floating-point results of Multiply differ
//     from Naive by rounding only.
//
// Example usage:
//
//	a, _ := matrix.NewStore[int](n, n)
//	b, _ := matrix.NewStore[int](n, n)
//	c, _ := matrix.NewStore[int](n, n)
//	// ... fill a and b ...
//	if err := strassen.Multiply(a.Full(), b.Full(), c.Full(), n, 0); err != nil {
//	    log.Fatal(err)
//	}
package strassen
