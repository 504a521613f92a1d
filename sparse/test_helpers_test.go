// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the builder tests.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsebuilder/sparse"
	"github.com/stretchr/testify/require"
)

// MustBuilder allocates a rows x cols builder or fails the test.
func MustBuilder[I sparse.Index](tb testing.TB, rows, cols I, opts ...sparse.Option) *sparse.Builder[I] {
	tb.Helper()
	b, err := sparse.NewBuilder(rows, cols, opts...)
	require.NoError(tb, err)

	return b
}

// MustGet reads (row, col) or fails the test.
func MustGet[I sparse.Index](tb testing.TB, b *sparse.Builder[I], row, col I) float64 {
	tb.Helper()
	v, err := b.Get(row, col)
	require.NoError(tb, err)

	return v
}

// cooTriple is one exported COO position, used to compare exports as sets.
type cooTriple[I sparse.Index] struct {
	row, col I
	val      float64
}

// cooSet turns parallel COO slices into a set of triples and fails the test
// if a triple appears twice.
func cooSet[I sparse.Index](tb testing.TB, rows, cols []I, vals []float64) map[cooTriple[I]]struct{} {
	tb.Helper()
	require.Len(tb, cols, len(rows))
	require.Len(tb, vals, len(rows))
	out := make(map[cooTriple[I]]struct{}, len(rows))
	for i := range rows {
		t := cooTriple[I]{rows[i], cols[i], vals[i]}
		_, dup := out[t]
		require.False(tb, dup, "duplicate COO triple %v", t)
		out[t] = struct{}{}
	}

	return out
}

// fillRandom writes nnz random nonzero values at random coordinates with a
// fixed seed. Collisions overwrite, so the resulting count may be lower.
func fillRandom(tb testing.TB, b *sparse.Builder[int], nnz int, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := b.Shape()
	for k := 0; k < nnz; k++ {
		require.NoError(tb, b.Set(rng.Intn(r), rng.Intn(c), rng.Float64()+0.5))
	}
}
