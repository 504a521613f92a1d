// SPDX-License-Identifier: MIT

package sparse_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sparsebuilder/sparse"
	"github.com/stretchr/testify/require"
)

// TestSetBatch_SequentialSemantics: later elements overwrite earlier ones.
func TestSetBatch_SequentialSemantics(t *testing.T) {
	b := MustBuilder(t, 3, 3)
	err := b.SetBatch(
		[]int{0, 1, 0, 2},
		[]int{0, 1, 0, 2},
		[]float64{1, 2, 3, 0},
	)
	require.NoError(t, err)
	require.Equal(t, 3.0, MustGet(t, b, 0, 0))
	require.Equal(t, 2.0, MustGet(t, b, 1, 1))
	require.Equal(t, 2, b.NumberOfNonZeros())

	// a zero later in the batch removes an entry written earlier in it
	require.NoError(t, b.SetBatch([]int{2, 2}, []int{1, 1}, []float64{5, 0}))
	require.Equal(t, 2, b.NumberOfNonZeros())
}

// TestAddBatch_Accumulates stamps repeated contributions onto one coordinate.
func TestAddBatch_Accumulates(t *testing.T) {
	b := MustBuilder(t, 2, 2)
	err := b.AddBatch(
		[]int{0, 0, 1, 0},
		[]int{0, 0, 1, 0},
		[]float64{1, 2, 5, 0},
	)
	require.NoError(t, err)
	require.Equal(t, 3.0, MustGet(t, b, 0, 0))
	require.Equal(t, 5.0, MustGet(t, b, 1, 1))

	require.NoError(t, b.AddBatch([]int{1}, []int{1}, []float64{-5}))
	require.Equal(t, 1, b.NumberOfNonZeros())
}

// TestGetBatch reads stored values and zeros.
func TestGetBatch(t *testing.T) {
	b := MustBuilder(t, 2, 2)
	require.NoError(t, b.Set(1, 0, 9))
	got, err := b.GetBatch([]int{1, 0, 1}, []int{0, 0, 0})
	require.NoError(t, err)
	require.Equal(t, []float64{9, 0, 9}, got)

	got, err = b.GetBatch(nil, nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

// TestBatch_LengthMismatch leaves the builder unmodified.
func TestBatch_LengthMismatch(t *testing.T) {
	b := MustBuilder(t, 3, 3)
	require.NoError(t, b.Set(0, 0, 1))

	err := b.SetBatch([]int{1, 2}, []int{1}, []float64{1, 1})
	require.ErrorIs(t, err, sparse.ErrLengthMismatch)

	err = b.AddBatch([]int{1}, []int{1}, []float64{1, 2})
	require.ErrorIs(t, err, sparse.ErrLengthMismatch)

	_, err = b.GetBatch([]int{1}, []int{})
	require.ErrorIs(t, err, sparse.ErrLengthMismatch)

	require.Equal(t, 1, b.NumberOfNonZeros())
	require.Equal(t, 1.0, MustGet(t, b, 0, 0))
}

// TestBatch_AllOrNothing: an invalid element anywhere aborts the whole batch.
func TestBatch_AllOrNothing(t *testing.T) {
	b := MustBuilder(t, 3, 3)

	err := b.SetBatch([]int{0, 1, 5}, []int{0, 1, 0}, []float64{1, 2, 3})
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
	require.Equal(t, 0, b.NumberOfNonZeros())

	err = b.AddBatch([]int{0, 1}, []int{0, 1}, []float64{1, math.NaN()})
	require.ErrorIs(t, err, sparse.ErrNaNInf)
	require.Equal(t, 0, b.NumberOfNonZeros())

	_, err = b.GetBatch([]int{0, -1}, []int{0, 0})
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
}

// TestBatch_ErrorPriority: lengths are checked before coordinates.
func TestBatch_ErrorPriority(t *testing.T) {
	b := MustBuilder(t, 1, 1)
	err := b.SetBatch([]int{9}, []int{9, 9}, []float64{1})
	require.ErrorIs(t, err, sparse.ErrLengthMismatch)
	require.NotErrorIs(t, err, sparse.ErrOutOfRange)
}

// TestAddBatch_OverflowAllOrNothing rejects a batch whose running sum
// overflows, even though every element is finite, and writes nothing.
func TestAddBatch_OverflowAllOrNothing(t *testing.T) {
	b := MustBuilder(t, 2, 2)

	err := b.AddBatch([]int{0, 1, 1}, []int{0, 1, 1}, []float64{3, math.MaxFloat64, math.MaxFloat64})
	require.ErrorIs(t, err, sparse.ErrNaNInf)
	require.Equal(t, 0, b.NumberOfNonZeros())

	// the running sum starts from the stored value
	require.NoError(t, b.Set(1, 1, -math.MaxFloat64))
	err = b.AddBatch([]int{1, 1}, []int{1, 1}, []float64{-math.MaxFloat64, math.MaxFloat64})
	require.ErrorIs(t, err, sparse.ErrNaNInf)
	require.Equal(t, -math.MaxFloat64, MustGet(t, b, 1, 1))

	// a batch that goes up and comes back down stays finite and is accepted
	require.NoError(t, b.AddBatch([]int{1, 1}, []int{1, 1}, []float64{math.MaxFloat64, 1}))
	require.Equal(t, 1.0, MustGet(t, b, 1, 1))
}
