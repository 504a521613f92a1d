// SPDX-License-Identifier: MIT

// Package matrix - Dense staging buffer.
//
// Purpose:
//   - Hold a materialized rows x cols matrix in one flat row-major slice
//     (cell (i,j) lives at i*cols + j).
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Carry the numeric policy of the sparse builder it was produced from.
//
// Complexity quicksheet:
//   - NewDense/FromRows: O(r*c); At/Set: O(1); RowViews: O(r); EachNonZero/NonZeros: O(r*c).

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ---------- error context tags ----------

const (
	ctxNewDense = "NewDense"
	ctxFromRows = "FromRows"
	ctxAt       = "At"
	ctxSet      = "Set"
)

// cellErrorf wraps err with the method tag and the offending cell.
func cellErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, i, j, err)
}

// Dense is a materialized matrix.
//   - rows, cols are the extents (either may be zero).
//   - cells is row-major storage, len(cells) == rows*cols.
//   - finiteOnly rejects NaN/Inf in Set and FromRows.
type Dense struct {
	rows, cols int
	cells      []float64
	finiteOnly bool
}

// CheckShape reports whether a rows x cols buffer can be allocated:
// both extents non-negative and rows*cols representable as an int.
//
// Errors:
//   - ErrInvalidDimensions.
//
// Complexity: O(1).
func CheckShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrInvalidDimensions
	}
	if rows > 0 && cols > math.MaxInt/rows {
		return ErrInvalidDimensions
	}

	return nil
}

// NewDense allocates a zero rows x cols matrix.
// MAIN DESCRIPTION:
//   - Constructor with shape validation and an explicit numeric policy.
//
// Implementation:
//   - Stage 1: CheckShape (negative extents, cell-count overflow).
//   - Stage 2: single zero-filled allocation.
//
// Errors:
//   - ErrInvalidDimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, finiteOnly bool) (*Dense, error) {
	if err := CheckShape(rows, cols); err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewDense, rows, cols, err)
	}

	return &Dense{
		rows:       rows,
		cols:       cols,
		cells:      make([]float64, rows*cols),
		finiteOnly: finiteOnly,
	}, nil
}

// FromRows validates and copies a caller-supplied [][]float64.
// MAIN DESCRIPTION:
//   - The shape is taken from the first row; zero rows give a 0x0 matrix.
//
// Implementation:
//   - Stage 1: reject ragged input.
//   - Stage 2: copy every row, enforcing the numeric policy per cell.
//
// Errors:
//   - ErrDimensionMismatch for ragged rows.
//   - ErrNaNInf for a non-finite value when finiteOnly is set.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(src [][]float64, finiteOnly bool) (*Dense, error) {
	cols := 0
	if len(src) > 0 {
		cols = len(src[0])
	}
	for i, row := range src {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w",
				ctxFromRows, i, len(row), cols, ErrDimensionMismatch)
		}
	}
	d, err := NewDense(len(src), cols, finiteOnly)
	if err != nil {
		return nil, err
	}
	for i, row := range src {
		for j, v := range row {
			if err = d.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// Shape returns (rows, cols). Complexity: O(1).
func (d *Dense) Shape() (rows, cols int) { return d.rows, d.cols }

// FiniteOnly reports whether Set rejects NaN/Inf.
func (d *Dense) FiniteOnly() bool { return d.finiteOnly }

// cell maps (i, j) to its offset in cells; ok is false when out of range.
func (d *Dense) cell(i, j int) (off int, ok bool) {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		return 0, false
	}

	return i*d.cols + j, true
}

// At returns the value at (i, j).
//
// Errors:
//   - ErrOutOfRange.
func (d *Dense) At(i, j int) (float64, error) {
	off, ok := d.cell(i, j)
	if !ok {
		return 0, cellErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return d.cells[off], nil
}

// Set stores v at (i, j).
//
// Errors:
//   - ErrOutOfRange; ErrNaNInf when the policy is finite-only.
func (d *Dense) Set(i, j int, v float64) error {
	off, ok := d.cell(i, j)
	if !ok {
		return cellErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if d.finiteOnly && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return cellErrorf(ctxSet, i, j, ErrNaNInf)
	}
	d.cells[off] = v

	return nil
}

// RowViews returns one slice per row, each aliasing the backing buffer.
// Writes through a view are visible in d and bypass the numeric policy.
// Each view is capped at its row, so appending to it reallocates instead of
// spilling into the next row.
func (d *Dense) RowViews() [][]float64 {
	out := make([][]float64, d.rows)
	for i := range out {
		lo, hi := i*d.cols, (i+1)*d.cols
		out[i] = d.cells[lo:hi:hi]
	}

	return out
}

// NonZeros counts the cells that differ from zero (NaN counts as nonzero).
func (d *Dense) NonZeros() int {
	return floats.Count(func(v float64) bool { return v != 0 }, d.cells)
}

// EachNonZero calls fn for every nonzero cell in row-major order.
func (d *Dense) EachNonZero(fn func(i, j int, v float64)) {
	for off, v := range d.cells {
		if v != 0 {
			fn(off/d.cols, off%d.cols, v)
		}
	}
}
