// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for store construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - No global state: the bounds-check policy is a per-store flag fixed at
//     construction and inherited by every Region built over that store.
//   - Both safety modes stay independently testable: WithBoundsCheck(true)
//     and WithBoundsCheck(false) select them explicitly.
//
// Notes:
//   - Checked mode: At/Set/Ref/Row return ErrOutOfBounds and View returns
//     ErrInvalidSubRegion on violation.
//   - Unchecked mode: no comparison is made. An out-of-extent access either
//     lands on another element of the root buffer or panics in the Go runtime;
//     the outcome is unspecified and callers must not rely on it.

package matrix

// ---------- Defaults (single source of truth) ----------

// DefaultBoundsCheck enables checked element access and sub-region creation.
const DefaultBoundsCheck = true

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	boundsCheck bool // DefaultBoundsCheck
}

// BoundsCheck reports the resolved bounds-check policy.
func (o Options) BoundsCheck() bool { return o.boundsCheck }

// WithBoundsCheck selects checked (true) or unchecked (false) access for the
// store being constructed and all regions derived from it.
// Complexity: O(1).
func WithBoundsCheck(enabled bool) Option {
	return func(o *Options) { o.boundsCheck = enabled }
}

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{boundsCheck: DefaultBoundsCheck}
}

// gatherOptions applies opts over the defaults in order; later options win.
// Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// NewOptions resolves opts into an Options value. Packages that allocate
// stores on behalf of a caller use it to inspect the effective policy.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }
