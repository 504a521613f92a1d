// SPDX-License-Identifier: MIT

package sparse

import "golang.org/x/exp/constraints"

// Index is the set of integer types usable as row/column indices.
// The index type is fixed once per Builder instance, e.g. Builder[int] or
// Builder[uint32].
type Index interface {
	constraints.Integer
}

// coord is the composite map key of a stored entry.
type coord[I Index] struct {
	row, col I
}

// Entry is a single stored nonzero, as returned by Builder.Entries.
type Entry[I Index] struct {
	Row   I       // zero-based row index
	Col   I       // zero-based column index
	Value float64 // stored value, never 0 unless WithKeepCancelled applies
}
