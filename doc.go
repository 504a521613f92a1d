// SPDX-License-Identifier: MIT

// Package sparsebuilder is an in-memory staging area for large, mostly-zero
// matrices: accumulate nonzeros by (row, column), reshape them with row,
// column and diagonal operators, then hand a dense array or a COO triple to
// the linear-algebra library of your choice.
//
// Everything is organized under two subpackages:
//
//	sparse/ - the generic Builder[I]: scalar, batched and bulk accessors,
//	          dense/COO exports and gonum interop
//	matrix/ - row-major Dense, the bounds-checked staging buffer behind
//	          dense exports and imports
//
// Quick example:
//
//	b, _ := sparse.NewBuilder(3, 3)
//	_ = b.Set(1, 2, -2)
//	rows, cols, vals := b.ToCOO(1) // [2] [3] [-2]
//
//	go get github.com/katalvlaran/sparsebuilder
package sparsebuilder
