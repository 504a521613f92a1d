// SPDX-License-Identifier: MIT

// Package sparse - export transforms.
//
// Purpose:
//   - Materialize the builder into formats a linear-algebra library consumes:
//     [][]float64, COO triples, *matrix.Dense.
//   - ToCOO follows map iteration order (unspecified, but consistent across
//     the three slices); ToCOOSorted and Entries are deterministic (row-major).

package sparse

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/sparsebuilder/matrix"
)

// ToDense returns a freshly allocated rows x cols array with every stored
// entry written at its coordinate and zeros elsewhere. The rows are views
// over one matrix.Dense buffer; NewBuilder already guaranteed that
// rows*cols fits into an int, so the allocation cannot overflow.
// Complexity: O(rows*cols + nnz).
func (b *Builder[I]) ToDense() [][]float64 {
	d, err := b.ToMatrix()
	if err != nil {
		// unreachable: the shape was checked by NewBuilder and every stored
		// value passed the same numeric policy the Dense enforces
		panic(err)
	}

	return d.RowViews()
}

// ToCOO returns the stored entries as three parallel slices, one triple per
// entry, with both indices shifted by indexBase (0 or 1 in practice).
//
// Behavior highlights:
//   - len(rows) == len(cols) == len(vals) == NumberOfNonZeros().
//   - Position i of each slice describes the same entry.
//   - The order across positions is unspecified; use ToCOOSorted when it matters.
//   - Shifting is plain integer addition: an indexBase that overflows I wraps.
//
// Complexity: O(nnz).
func (b *Builder[I]) ToCOO(indexBase I) (rows, cols []I, vals []float64) {
	n := len(b.data)
	rows = make([]I, n)
	cols = make([]I, n)
	vals = make([]float64, n)
	i := 0
	for k, v := range b.data {
		rows[i] = k.row + indexBase
		cols[i] = k.col + indexBase
		vals[i] = v
		i++
	}

	return rows, cols, vals
}

// ToCOOSorted is ToCOO with the triples in row-major order
// (row ascending, then column ascending).
// Complexity: O(nnz log nnz).
func (b *Builder[I]) ToCOOSorted(indexBase I) (rows, cols []I, vals []float64) {
	entries := b.Entries()
	rows = make([]I, len(entries))
	cols = make([]I, len(entries))
	vals = make([]float64, len(entries))
	for i, e := range entries {
		rows[i] = e.Row + indexBase
		cols[i] = e.Col + indexBase
		vals[i] = e.Value
	}

	return rows, cols, vals
}

// Entries returns every stored entry in row-major order.
// The slice is a snapshot; later mutations of the builder do not affect it.
func (b *Builder[I]) Entries() []Entry[I] {
	out := make([]Entry[I], 0, len(b.data))
	for k, v := range b.data {
		out = append(out, Entry[I]{Row: k.row, Col: k.col, Value: v})
	}
	slices.SortFunc(out, func(x, y Entry[I]) int {
		if c := cmp.Compare(x.Row, y.Row); c != 0 {
			return c
		}
		return cmp.Compare(x.Col, y.Col)
	})

	return out
}

// ToMatrix materializes the builder into a *matrix.Dense carrying the same
// numeric policy. Empty shapes give an empty Dense.
// FromMatrix is the inverse.
//
// Complexity: O(rows*cols + nnz).
func (b *Builder[I]) ToMatrix() (*matrix.Dense, error) {
	d, err := matrix.NewDense(int(b.rows), int(b.cols), b.opts.validateNaNInf)
	if err != nil {
		return nil, fmt.Errorf("Builder.%s: %w", ctxToMatrix, fromMatrixError(err))
	}
	for k, v := range b.data {
		if err = d.Set(int(k.row), int(k.col), v); err != nil {
			return nil, fmt.Errorf("Builder.%s: %w", ctxToMatrix, fromMatrixError(err))
		}
	}

	return d, nil
}
