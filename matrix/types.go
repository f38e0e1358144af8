// SPDX-License-Identifier: MIT

// Package matrix - element types and shared markers.

package matrix

// Number is the set of element types a Store may hold: every built-in integer
// and floating-point kind, including named types derived from them. Complex
// kinds are excluded; products of complex matrices are out of scope.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// noCopy may be embedded into structs which must not be copied after first
// use. `go vet` (copylocks) reports value copies of such structs.
// See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock() {}

// Unlock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Unlock() {}
