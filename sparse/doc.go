// SPDX-License-Identifier: MIT

// Package sparse provides a mutable builder for sparse matrices.
//
// What & Why:
//
//	A Builder accumulates nonzero entries addressed by (row, column) in a hash
//	map keyed by the coordinate pair, so assembling a large, mostly-zero matrix
//	costs O(nnz) memory instead of O(rows*cols). Once assembly is done the
//	builder is materialized into a dense array, a COO triple, a *matrix.Dense
//	or a gonum *mat.Dense and handed to a linear-algebra library.
//
// Invariants:
//
//   - Extents are fixed at construction.
//   - Every stored coordinate is in range.
//   - No stored entry equals zero: Set(..., 0) removes, and an Add that cancels
//     an entry to exactly zero removes it as well (see WithKeepCancelled).
//   - Under the default numeric policy no stored value is NaN or +/-Inf, not
//     even a sum of finite Add deltas that overflows.
//   - Failed calls leave the builder untouched (validation precedes mutation).
//
// Index width:
//
//	Builder is generic over any integer type (Index). Dimensions must be
//	non-negative and representable as int, and rows*cols must fit into an
//	int, because dense exports allocate one int-indexed buffer.
//
// Concurrency:
//
//	A Builder has no internal locking. It must be owned by a single goroutine
//	or guarded externally.
//
// Complexity:
//
//	Get/Set/Add: O(1) average. Batched forms: O(k).
//	Row/column/diagonal: O(min(extent, nnz)). ToDense: O(rows*cols + nnz).
//	ToCOO: O(nnz). ToCOOSorted/Entries: O(nnz log nnz).
package sparse
