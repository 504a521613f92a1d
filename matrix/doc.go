// SPDX-License-Identifier: MIT

// Package matrix is the dense staging buffer behind sparse builder exports
// and imports.
//
// The matrix package provides:
//
//   - Dense: one flat row-major buffer with bounds-checked At/Set that return
//     sentinel errors instead of panicking. Empty shapes (0xn, nx0) are legal.
//   - FromRows, for validating a caller-supplied [][]float64 before a sparse
//     builder ingests it.
//   - RowViews and EachNonZero, the two traversals sparse builders use to
//     export to and import from dense form.
//
// A Dense costs O(r*c) memory. Assemble large, mostly-zero matrices with
// package sparse and materialize them here only once construction is done.
package matrix
