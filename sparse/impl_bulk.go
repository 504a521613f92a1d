// SPDX-License-Identifier: MIT

// Package sparse - diagonal, row and column operators.
//
// Row and column arguments are validated like scalar coordinates. Each getter
// picks the cheaper of two strategies: probe every position of the line, or
// scan the stored entries when there are fewer of them than positions.

package sparse

import "fmt"

// diagonalLen returns min(rows, cols) as an int.
func (b *Builder[I]) diagonalLen() int {
	return int(min(b.rows, b.cols))
}

// SetDiagonal applies Set(i, i, v) for every i in [0, min(rows, cols)).
//
// Errors:
//   - ErrNaNInf under the numeric policy.
func (b *Builder[I]) SetDiagonal(v float64) error {
	if err := b.validateValue(v); err != nil {
		return fmt.Errorf("Builder.%s: %w", ctxSetDiagonal, err)
	}
	n := min(b.rows, b.cols)
	if v == 0 && len(b.data) < b.diagonalLen() {
		for k := range b.data {
			if k.row == k.col {
				delete(b.data, k)
			}
		}
		return nil
	}
	for i := I(0); i < n; i++ {
		b.put(coord[I]{i, i}, v)
	}

	return nil
}

// GetDiagonal returns a dense slice of length min(rows, cols) whose i-th
// element equals Get(i, i).
func (b *Builder[I]) GetDiagonal() []float64 {
	n := b.diagonalLen()
	out := make([]float64, n)
	if len(b.data) < n {
		for k, v := range b.data {
			if k.row == k.col {
				out[int(k.row)] = v
			}
		}
		return out
	}
	for i := 0; i < n; i++ {
		out[i] = b.data[coord[I]{I(i), I(i)}]
	}

	return out
}

// SetRow applies Set(row, j, v) for every column j.
//
// Errors:
//   - ErrOutOfRange when row is outside the extents.
//   - ErrNaNInf under the numeric policy.
func (b *Builder[I]) SetRow(row I, v float64) error {
	if err := b.validateRow(row); err != nil {
		return lineErrorf(ctxSetRow, row, err)
	}
	if err := b.validateValue(v); err != nil {
		return lineErrorf(ctxSetRow, row, err)
	}
	if v == 0 && len(b.data) < int(b.cols) {
		for k := range b.data {
			if k.row == row {
				delete(b.data, k)
			}
		}
		return nil
	}
	for j := I(0); j < b.cols; j++ {
		b.put(coord[I]{row, j}, v)
	}

	return nil
}

// GetRow returns a dense slice of length NumberOfColumns() whose j-th element
// equals Get(row, j).
//
// Errors:
//   - ErrOutOfRange when row is outside the extents.
func (b *Builder[I]) GetRow(row I) ([]float64, error) {
	if err := b.validateRow(row); err != nil {
		return nil, lineErrorf(ctxGetRow, row, err)
	}
	out := make([]float64, int(b.cols))
	if len(b.data) < len(out) {
		for k, v := range b.data {
			if k.row == row {
				out[int(k.col)] = v
			}
		}
		return out, nil
	}
	for j := range out {
		out[j] = b.data[coord[I]{row, I(j)}]
	}

	return out, nil
}

// SetColumn applies Set(i, col, v) for every row i.
//
// Errors:
//   - ErrOutOfRange when col is outside the extents.
//   - ErrNaNInf under the numeric policy.
func (b *Builder[I]) SetColumn(col I, v float64) error {
	if err := b.validateColumn(col); err != nil {
		return lineErrorf(ctxSetColumn, col, err)
	}
	if err := b.validateValue(v); err != nil {
		return lineErrorf(ctxSetColumn, col, err)
	}
	if v == 0 && len(b.data) < int(b.rows) {
		for k := range b.data {
			if k.col == col {
				delete(b.data, k)
			}
		}
		return nil
	}
	for i := I(0); i < b.rows; i++ {
		b.put(coord[I]{i, col}, v)
	}

	return nil
}

// GetColumn returns a dense slice of length NumberOfRows() whose i-th element
// equals Get(i, col).
//
// Errors:
//   - ErrOutOfRange when col is outside the extents.
func (b *Builder[I]) GetColumn(col I) ([]float64, error) {
	if err := b.validateColumn(col); err != nil {
		return nil, lineErrorf(ctxGetColumn, col, err)
	}
	out := make([]float64, int(b.rows))
	if len(b.data) < len(out) {
		for k, v := range b.data {
			if k.col == col {
				out[int(k.row)] = v
			}
		}
		return out, nil
	}
	for i := range out {
		out[i] = b.data[coord[I]{I(i), col}]
	}

	return out, nil
}
