// Package strassen is the module root of a small, dependency-light toolkit for
// dense square matrix multiplication: owned row-major storage, zero-copy
// views, a naive reference multiply and a depth-limited parallel Strassen.
//
// 🚀 What is in the box?
//
//	• matrix/       Store (owned buffer), Region (zero-copy window), elementwise
//	                kernels, gonum interop
//	• strassen/     Naive, Multiply (parallel Strassen), Product, options
//	• builder/      zero, identity, literal and seeded random stores
//	• config/       .env + environment settings for the driver
//	• cmd/strassen  command-line driver comparing both algorithms
//
// ✨ Guarantees
//
//   - Views never copy: quadrants of a quadrant still address the root buffer.
//   - Integer products are exact and independent of depth and scheduling.
//   - Bounds checks are on by default and can be switched off per store.
//
// Quick start:
//
//	a, _ := builder.Random[int](256, 256, builder.WithSeed(1))
//	b, _ := builder.Random[int](256, 256, builder.WithSeed(2))
//	c, err := strassen.Product(a, b)
package strassen
