// SPDX-License-Identifier: MIT

// Package sparse - Builder construction, properties and lifecycle helpers.
//
// Purpose:
//   - Own the coordinate-to-value map and the fixed extents.
//   - Keep every mutation path funnelled through put/accumulate so the
//     zero-is-absence invariant has a single implementation.

package sparse

import (
	"fmt"

	"github.com/katalvlaran/sparsebuilder/matrix"
)

// Builder is a mutable sparse matrix under construction.
//   - rows, cols are fixed at construction.
//   - data maps a coordinate to its nonzero value.
//   - opts is the resolved configuration (numeric policy, cancellation policy).
//
// The zero value is not usable; create builders with NewBuilder or FromDense.
type Builder[I Index] struct {
	rows, cols I
	data       map[coord[I]]float64
	opts       Options
}

// NewBuilder creates an empty rows x cols builder.
// MAIN DESCRIPTION:
//   - Public constructor with dimension validation and functional options.
//
// Implementation:
//   - Stage 1: validate rows, cols are non-negative and fit into an int.
//   - Stage 2: validate rows*cols fits into an int, so every dense export
//     can be allocated (matrix.CheckShape).
//   - Stage 3: resolve options and allocate the entry map.
//
// Behavior highlights:
//   - Zero extents are legal: a 0 x n builder stores nothing and exports empty arrays.
//
// Errors:
//   - ErrInvalidDimensions.
//
// Complexity:
//   - Time O(1) (plus the capacity hint), Space O(capacity).
func NewBuilder[I Index](rows, cols I, opts ...Option) (*Builder[I], error) {
	if !fitsInt(rows) || !fitsInt(cols) {
		return nil, fmt.Errorf("%s(%v,%v): %w", ctxNew, rows, cols, ErrInvalidDimensions)
	}
	if err := matrix.CheckShape(int(rows), int(cols)); err != nil {
		return nil, fmt.Errorf("%s(%v,%v): %w", ctxNew, rows, cols, fromMatrixError(err))
	}
	o := gatherOptions(opts...)

	return &Builder[I]{
		rows: rows,
		cols: cols,
		data: make(map[coord[I]]float64, o.capacity),
		opts: o,
	}, nil
}

// FromDense creates a builder shaped like src and stores its nonzeros.
// src is validated by matrix.FromRows under the builder's numeric policy and
// then ingested with FromMatrix.
//
// Errors:
//   - ErrDimensionMismatch (ragged rows), ErrNaNInf, ErrInvalidDimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) transient + O(nnz).
func FromDense[I Index](src [][]float64, opts ...Option) (*Builder[I], error) {
	o := gatherOptions(opts...)
	d, err := matrix.FromRows(src, o.validateNaNInf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromDense, fromMatrixError(err))
	}

	return FromMatrix[I](d, opts...)
}

// FromMatrix creates a builder shaped like d and stores its nonzero cells.
// MAIN DESCRIPTION:
//   - Inverse of ToMatrix: FromMatrix(b.ToMatrix()) reproduces b.
//
// Implementation:
//   - Stage 1: reject nil input and shapes the index type cannot address.
//   - Stage 2: size the entry map from d.NonZeros() (user WithCapacity wins).
//   - Stage 3: store every nonzero cell, enforcing the builder's numeric policy.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(nnz).
func FromMatrix[I Index](d *matrix.Dense, opts ...Option) (*Builder[I], error) {
	if d == nil {
		return nil, fmt.Errorf("%s: %w", ctxFromMatrix, ErrNilMatrix)
	}
	r, c := d.Shape()
	if int(I(r)) != r || int(I(c)) != c {
		// the index type cannot address the source shape
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxFromMatrix, r, c, ErrInvalidDimensions)
	}
	sized := append([]Option{WithCapacity(d.NonZeros())}, opts...)
	b, err := NewBuilder(I(r), I(c), sized...)
	if err != nil {
		return nil, err
	}
	d.EachNonZero(func(i, j int, v float64) {
		if err != nil {
			return
		}
		if err = b.validateValue(v); err != nil {
			err = builderErrorf(ctxFromMatrix, I(i), I(j), err)
			return
		}
		b.data[coord[I]{I(i), I(j)}] = v
	})
	if err != nil {
		return nil, err
	}

	return b, nil
}

// NumberOfRows returns the fixed row extent. Complexity: O(1).
func (b *Builder[I]) NumberOfRows() I { return b.rows }

// NumberOfColumns returns the fixed column extent. Complexity: O(1).
func (b *Builder[I]) NumberOfColumns() I { return b.cols }

// NumberOfNonZeros returns the number of stored entries. Complexity: O(1).
func (b *Builder[I]) NumberOfNonZeros() int { return len(b.data) }

// Shape packs NumberOfRows() and NumberOfColumns() into a single call.
func (b *Builder[I]) Shape() (rows, cols I) { return b.rows, b.cols }

// Clone returns an independent deep copy with the same extents and options.
// Complexity: O(nnz).
func (b *Builder[I]) Clone() *Builder[I] {
	cp := make(map[coord[I]]float64, len(b.data))
	for k, v := range b.data {
		cp[k] = v
	}

	return &Builder[I]{rows: b.rows, cols: b.cols, data: cp, opts: b.opts}
}

// Clear removes every entry; extents and options are kept.
func (b *Builder[I]) Clear() {
	clear(b.data)
}

// put applies scalar-set semantics to an already validated key.
func (b *Builder[I]) put(k coord[I], v float64) {
	if v == 0 {
		delete(b.data, k)
		return
	}
	b.data[k] = v
}

// accumulate applies scalar-add semantics to an already validated key.
// Callers must have checked the resulting sum against the numeric policy
// (see validateSum).
func (b *Builder[I]) accumulate(k coord[I], delta float64) {
	if delta == 0 {
		return
	}
	sum := b.data[k] + delta
	if sum == 0 && !b.opts.keepCancelled {
		delete(b.data, k)
		return
	}
	b.data[k] = sum
}
