// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Interop with gonum.org/v1/gonum/mat for callers that need decompositions
//     or BLAS-backed kernels. Both directions copy; no storage is shared.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	ctxToGonum   = "ToGonum"
	ctxFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense.
//
// Errors:
//   - ErrShape for a zero-area matrix (gonum has no empty Dense).
func (m *Dense) ToGonum() (*mat.Dense, error) {
	if m.r == 0 || m.c == 0 {
		return nil, denseErrorf(ctxToGonum, fmt.Errorf("zero-area %dx%d: %w", m.r, m.c, ErrShape))
	}

	return mat.NewDense(m.r, m.c, m.Elements()), nil
}

// FromGonum copies any gonum mat.Matrix into a new Dense.
//
// Errors:
//   - ErrNilMatrix when src is nil.
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, denseErrorf(ctxFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	out := newZeroed(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = src.At(i, j)
		}
	}

	return out, nil
}
