// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//  - Single source of truth for dimension, coordinate, length and value checks.
//  - Validators return plain sentinels; public methods wrap them with context.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing on the success path.

package sparse

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/sparsebuilder/matrix"
)

// ---------- error context tags ----------

const (
	ctxNew         = "NewBuilder"
	ctxFromDense   = "FromDense"
	ctxFromMatrix  = "FromMatrix"
	ctxGet         = "Get"
	ctxSet         = "Set"
	ctxAdd         = "Add"
	ctxGetBatch    = "GetBatch"
	ctxSetBatch    = "SetBatch"
	ctxAddBatch    = "AddBatch"
	ctxSetDiagonal = "SetDiagonal"
	ctxSetRow      = "SetRow"
	ctxGetRow      = "GetRow"
	ctxSetColumn   = "SetColumn"
	ctxGetColumn   = "GetColumn"
	ctxToMatrix    = "ToMatrix"
	ctxToGonum     = "ToGonum"
)

// builderErrorf wraps err with the method tag and coordinates.
func builderErrorf[I Index](method string, row, col I, err error) error {
	return fmt.Errorf("Builder.%s(%v,%v): %w", method, row, col, err)
}

// batchErrorf wraps err with the method tag, batch position and coordinates.
func batchErrorf[I Index](method string, pos int, row, col I, err error) error {
	return fmt.Errorf("Builder.%s[%d](%v,%v): %w", method, pos, row, col, err)
}

// lineErrorf wraps err for single-index operations (row or column).
func lineErrorf[I Index](method string, idx I, err error) error {
	return fmt.Errorf("Builder.%s(%v): %w", method, idx, err)
}

// fitsInt reports whether v is a valid dimension: non-negative and
// representable as int.
func fitsInt[I Index](v I) bool {
	if v < 0 {
		return false
	}

	return uint64(v) <= math.MaxInt
}

// validateRow checks 0 <= row < rows.
func (b *Builder[I]) validateRow(row I) error {
	if row < 0 || row >= b.rows {
		return ErrOutOfRange
	}

	return nil
}

// validateColumn checks 0 <= col < cols.
func (b *Builder[I]) validateColumn(col I) error {
	if col < 0 || col >= b.cols {
		return ErrOutOfRange
	}

	return nil
}

// validateCoord checks both indices; rows first.
func (b *Builder[I]) validateCoord(row, col I) error {
	if err := b.validateRow(row); err != nil {
		return err
	}

	return b.validateColumn(col)
}

// validateValue enforces the numeric policy.
func (b *Builder[I]) validateValue(v float64) error {
	if b.opts.validateNaNInf && isNonFinite(v) {
		return ErrNaNInf
	}

	return nil
}

// validateSum enforces the numeric policy on the value an Add would store.
// Two finite operands can still overflow to +/-Inf.
func (b *Builder[I]) validateSum(current, delta float64) error {
	return b.validateValue(current + delta)
}

// validateAddBatch replays a validated batch on a scratch map of running sums
// and rejects it if any intermediate sum violates the numeric policy.
// The builder itself is not touched.
func (b *Builder[I]) validateAddBatch(rows, cols []I, vals []float64) error {
	if !b.opts.validateNaNInf {
		return nil
	}
	pending := make(map[coord[I]]float64, len(vals))
	for i, v := range vals {
		k := coord[I]{rows[i], cols[i]}
		cur, seen := pending[k]
		if !seen {
			cur = b.data[k]
		}
		if err := b.validateSum(cur, v); err != nil {
			return batchErrorf(ctxAddBatch, i, rows[i], cols[i], err)
		}
		pending[k] = cur + v
	}

	return nil
}

// fromMatrixError maps a matrix sentinel onto the matching sparse sentinel,
// keeping both matchable with errors.Is.
func fromMatrixError(err error) error {
	switch {
	case errors.Is(err, matrix.ErrDimensionMismatch):
		return fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
	case errors.Is(err, matrix.ErrNaNInf):
		return fmt.Errorf("%w: %w", ErrNaNInf, err)
	case errors.Is(err, matrix.ErrInvalidDimensions):
		return fmt.Errorf("%w: %w", ErrInvalidDimensions, err)
	case errors.Is(err, matrix.ErrOutOfRange):
		return fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}

	return err
}

// validateLengths checks that every parallel slice has length n.
func validateLengths(method string, n int, others ...int) error {
	for _, m := range others {
		if m != n {
			return fmt.Errorf("Builder.%s: lengths %d and %d: %w", method, n, m, ErrLengthMismatch)
		}
	}

	return nil
}

// validateTriples checks a whole set/add batch before any mutation:
// lengths, then every coordinate, then every value.
func (b *Builder[I]) validateTriples(method string, rows, cols []I, vals []float64) error {
	if err := validateLengths(method, len(rows), len(cols), len(vals)); err != nil {
		return err
	}
	for i := range rows {
		if err := b.validateCoord(rows[i], cols[i]); err != nil {
			return batchErrorf(method, i, rows[i], cols[i], err)
		}
	}
	for i, v := range vals {
		if err := b.validateValue(v); err != nil {
			return batchErrorf(method, i, rows[i], cols[i], err)
		}
	}

	return nil
}
