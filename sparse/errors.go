// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Every public method returns one of these sentinels, wrapped with the method
// name and offending coordinates via %w. Tests MUST match them with errors.Is.
// No method panics on user-triggered error conditions; only Option
// constructors panic, and only on nonsensical parameters (programmer error).

package sparse

import "errors"

// ERROR PRIORITY (documented, enforced in tests):
// lengths -> coordinates -> numeric policy. Validation always precedes
// mutation, so a returned error means the builder was left untouched.
var (
	// ErrInvalidDimensions is returned by constructors when a dimension is
	// negative, does not fit into an int, or rows*cols overflows an int.
	ErrInvalidDimensions = errors.New("sparse: invalid dimensions")

	// ErrOutOfRange indicates that a row or column index lies outside
	// [0, NumberOfRows()) / [0, NumberOfColumns()).
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrLengthMismatch indicates that the parallel slices handed to a
	// batched accessor differ in length.
	ErrLengthMismatch = errors.New("sparse: length mismatch")

	// ErrNaNInf signals a NaN or +/-Inf value while the numeric policy
	// requires finite values (see WithValidateNaNInf).
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrNilMatrix indicates a nil *matrix.Dense handed to FromMatrix.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrDimensionMismatch indicates ragged dense input in FromDense.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrEmptyExport is returned by exporters whose target cannot represent
	// a matrix with zero rows or zero columns.
	ErrEmptyExport = errors.New("sparse: cannot export empty shape")
)
