// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum materializes the builder into a gonum *mat.Dense, ready for
// factorization or solving with gonum.org/v1/gonum/mat.
//
// Errors:
//   - ErrEmptyExport when the builder has zero rows or zero columns, since
//     mat.NewDense rejects empty shapes.
//
// Complexity: O(rows*cols + nnz).
func (b *Builder[I]) ToGonum() (*mat.Dense, error) {
	r, c := int(b.rows), int(b.cols)
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("Builder.%s(%d,%d): %w", ctxToGonum, r, c, ErrEmptyExport)
	}
	m := mat.NewDense(r, c, nil)
	for k, v := range b.data {
		m.Set(int(k.row), int(k.col), v)
	}

	return m, nil
}
