// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every exported function returns one of these sentinels, optionally wrapped
// with call-site context via %w. Tests MUST match them with errors.Is.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so it can be grepped in logs
// of downstream services.
var (
	// ErrInvalidDimensions indicates a negative shape, or one whose cell count
	// does not fit into an int.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates ragged input rows in FromRows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or +/-Inf value was encountered where finite
	// values are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
