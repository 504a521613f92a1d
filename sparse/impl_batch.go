// SPDX-License-Identifier: MIT

// Package sparse - batched accessors over parallel slices.
//
// Every batched call validates the whole input (lengths, then coordinates,
// then values, then AddBatch running sums) before it touches the map, so a failure is all-or-nothing.
// Elements are applied in slice order: a later element at the same coordinate
// overwrites (Set) or accumulates onto (Add) an earlier one, exactly like a
// sequence of scalar calls.

package sparse

// GetBatch returns the values at (rows[i], cols[i]) for every i.
//
// Errors:
//   - ErrLengthMismatch when len(rows) != len(cols).
//   - ErrOutOfRange for the first invalid coordinate.
//
// Complexity: O(k) average.
func (b *Builder[I]) GetBatch(rows, cols []I) ([]float64, error) {
	if err := validateLengths(ctxGetBatch, len(rows), len(cols)); err != nil {
		return nil, err
	}
	for i := range rows {
		if err := b.validateCoord(rows[i], cols[i]); err != nil {
			return nil, batchErrorf(ctxGetBatch, i, rows[i], cols[i], err)
		}
	}

	out := make([]float64, len(rows))
	for i := range rows {
		out[i] = b.data[coord[I]{rows[i], cols[i]}]
	}

	return out, nil
}

// SetBatch applies Set(rows[i], cols[i], vals[i]) for every i, in order.
//
// Errors:
//   - ErrLengthMismatch, ErrOutOfRange, ErrNaNInf; the builder is unchanged on error.
func (b *Builder[I]) SetBatch(rows, cols []I, vals []float64) error {
	if err := b.validateTriples(ctxSetBatch, rows, cols, vals); err != nil {
		return err
	}
	for i, v := range vals {
		b.put(coord[I]{rows[i], cols[i]}, v)
	}

	return nil
}

// AddBatch applies Add(rows[i], cols[i], vals[i]) for every i, in order.
// This is the natural entry point for finite-element or MNA style stamping,
// where many contributions land on the same coordinate.
//
// Errors:
//   - ErrLengthMismatch, ErrOutOfRange, ErrNaNInf; the builder is unchanged on error.
//   - ErrNaNInf also covers running sums that overflow, checked on a scratch
//     copy of the touched entries before anything is written.
func (b *Builder[I]) AddBatch(rows, cols []I, vals []float64) error {
	if err := b.validateTriples(ctxAddBatch, rows, cols, vals); err != nil {
		return err
	}
	if err := b.validateAddBatch(rows, cols, vals); err != nil {
		return err
	}
	for i, v := range vals {
		b.accumulate(coord[I]{rows[i], cols[i]}, v)
	}

	return nil
}
