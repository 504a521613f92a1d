// SPDX-License-Identifier: MIT

package sparse_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sparsebuilder/sparse"
	"github.com/stretchr/testify/require"
)

// TestValidateNaNInf_Default rejects non-finite values on every mutating path.
func TestValidateNaNInf_Default(t *testing.T) {
	b := MustBuilder(t, 2, 2)
	require.ErrorIs(t, b.Set(0, 0, math.NaN()), sparse.ErrNaNInf)
	require.ErrorIs(t, b.Add(0, 0, math.Inf(1)), sparse.ErrNaNInf)
	require.Equal(t, 0, b.NumberOfNonZeros())

	// explicit option equals the default
	b = MustBuilder(t, 2, 2, sparse.WithNoValidateNaNInf(), sparse.WithValidateNaNInf())
	require.ErrorIs(t, b.Set(0, 0, math.Inf(-1)), sparse.ErrNaNInf)
}

// TestNoValidateNaNInf stores non-finite values and propagates the policy to
// the materialized matrix.
func TestNoValidateNaNInf(t *testing.T) {
	b := MustBuilder(t, 2, 2, sparse.WithNoValidateNaNInf())
	require.NoError(t, b.Set(0, 0, math.NaN()))
	require.NoError(t, b.Add(1, 1, math.Inf(1)))
	require.Equal(t, 2, b.NumberOfNonZeros())

	m, err := b.ToMatrix()
	require.NoError(t, err)
	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.True(t, math.IsInf(v, 1))
}

// TestKeepCancelled keeps the coordinate of a cancelled sum.
func TestKeepCancelled(t *testing.T) {
	b := MustBuilder(t, 2, 2, sparse.WithKeepCancelled())
	require.NoError(t, b.Add(0, 1, 2))
	require.NoError(t, b.Add(0, 1, -2))
	require.Equal(t, 1, b.NumberOfNonZeros())
	require.Equal(t, 0.0, MustGet(t, b, 0, 1))

	rows, cols, vals := b.ToCOO(0)
	require.Equal(t, []int{0}, rows)
	require.Equal(t, []int{1}, cols)
	require.Equal(t, []float64{0}, vals)

	// Set with zero still removes
	require.NoError(t, b.Set(0, 1, 0))
	require.Equal(t, 0, b.NumberOfNonZeros())

	// cloning keeps the policy
	cp := b.Clone()
	require.NoError(t, cp.Add(1, 1, 1))
	require.NoError(t, cp.Add(1, 1, -1))
	require.Equal(t, 1, cp.NumberOfNonZeros())
}

// TestWithCapacity accepts non-negative hints and panics otherwise.
func TestWithCapacity(t *testing.T) {
	b := MustBuilder(t, 10, 10, sparse.WithCapacity(64))
	require.NoError(t, b.Set(9, 9, 1))
	require.Equal(t, 1, b.NumberOfNonZeros())

	require.PanicsWithValue(t, "sparse: WithCapacity: capacity must be non-negative", func() {
		sparse.WithCapacity(-1)
	})
}

// TestNilOption is ignored.
func TestNilOption(t *testing.T) {
	b := MustBuilder(t, 1, 1, nil)
	require.ErrorIs(t, b.Set(0, 0, math.NaN()), sparse.ErrNaNInf)
}
