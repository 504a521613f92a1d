// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for builders. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package sparse

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on every
	// mutating accessor.
	DefaultValidateNaNInf = true

	// DefaultKeepCancelled controls whether Add keeps an entry whose value
	// cancelled to exactly zero. false => the entry is removed, preserving the
	// zero-is-absence invariant.
	DefaultKeepCancelled = false

	// DefaultCapacity is the initial entry-map size hint.
	DefaultCapacity = 0
)

const panicCapacityInvalid = "sparse: WithCapacity: capacity must be non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	keepCancelled  bool // DefaultKeepCancelled
	capacity       int  // DefaultCapacity
}

// WithValidateNaNInf enables strict finite-value validation.
// When enabled, Set/Add/SetRow/SetColumn/SetDiagonal and the batched forms
// reject NaN and +/-Inf with ErrNaNInf. This is the default.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation.
//
// Notes:
//   - NaN is never equal to zero, so a NaN written with Set is stored and counted.
//   - Materialized *matrix.Dense inherits the relaxed policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithKeepCancelled makes Add keep entries whose accumulated value became
// exactly zero. They stay in NumberOfNonZeros and in every export until
// overwritten by Set. Use it when the sparsity pattern matters more than the
// values (e.g. symbolic assembly).
func WithKeepCancelled() Option {
	return func(o *Options) { o.keepCancelled = true }
}

// WithCapacity preallocates room for n entries.
// Panics when n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) { o.capacity = n }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		keepCancelled:  DefaultKeepCancelled,
		capacity:       DefaultCapacity,
	}
}

// gatherOptions applies opts on top of the defaults, left to right.
// nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// isNonFinite reports whether v is NaN or +/-Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
