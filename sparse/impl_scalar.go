// SPDX-License-Identifier: MIT

package sparse

// Get returns the value stored at (row, col), or 0 when nothing is stored.
// Never mutates.
//
// Errors:
//   - ErrOutOfRange when row or col is outside the extents.
//
// Complexity: O(1) average.
func (b *Builder[I]) Get(row, col I) (float64, error) {
	if err := b.validateCoord(row, col); err != nil {
		return 0, builderErrorf(ctxGet, row, col, err)
	}

	return b.data[coord[I]{row, col}], nil
}

// Set stores v at (row, col). A zero v removes any existing entry
// (no-op when absent); any other value inserts or overwrites.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf under the numeric policy.
//
// Complexity: O(1) average.
func (b *Builder[I]) Set(row, col I, v float64) error {
	if err := b.validateCoord(row, col); err != nil {
		return builderErrorf(ctxSet, row, col, err)
	}
	if err := b.validateValue(v); err != nil {
		return builderErrorf(ctxSet, row, col, err)
	}
	b.put(coord[I]{row, col}, v)

	return nil
}

// Add accumulates delta into (row, col).
// MAIN DESCRIPTION:
//   - Zero delta is a no-op.
//   - Absent entry: delta is inserted.
//   - Present entry: delta is added in place; if the sum is exactly zero the
//     entry is removed (kept instead under WithKeepCancelled).
//
// Errors:
//   - ErrOutOfRange for bounds.
//   - ErrNaNInf under the numeric policy, for delta itself or for a sum that
//     overflows to +/-Inf; the stored value is then left unchanged.
//
// Complexity: O(1) average.
func (b *Builder[I]) Add(row, col I, delta float64) error {
	if err := b.validateCoord(row, col); err != nil {
		return builderErrorf(ctxAdd, row, col, err)
	}
	if err := b.validateValue(delta); err != nil {
		return builderErrorf(ctxAdd, row, col, err)
	}
	k := coord[I]{row, col}
	if err := b.validateSum(b.data[k], delta); err != nil {
		return builderErrorf(ctxAdd, row, col, err)
	}
	b.accumulate(k, delta)

	return nil
}
