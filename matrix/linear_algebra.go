// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Matrix product and transpose. Mul is expressed through the row/column
//     accessors and the element-wise kernels, so its correctness rests on the
//     same indexing contract as every other accessor.

package matrix

import "fmt"

const ctxMul = "Mul"

// Mul returns the matrix product m·o.
//
// Implementation:
//   - Stage 1: validate o non-nil and m.Cols() == o.Rows().
//   - Stage 2: for each output cell (i,j): take row i of m (1×k) and column j
//     of o (k×1), transpose the column to 1×k, multiply element-wise and sum.
//
// Errors:
//   - ErrNilMatrix when o is nil.
//   - ErrShape on an inner-dimension mismatch.
//
// Complexity:
//   - Time O(r·c·k), Space O(r·c + k).
func (m *Dense) Mul(o *Dense) (*Dense, error) {
	if err := validateOperands(ctxMul, o); err != nil {
		return nil, err
	}
	if m.c != o.r {
		return nil, denseErrorf(ctxMul, fmt.Errorf("inner dimensions %d and %d: %w",
			m.c, o.r, shapeMismatch(m.r, m.c, o.r, o.c)))
	}

	out := newZeroed(m.r, o.c)

	// Columns of o are reused by every row of m; extract them once.
	cols := make([]*Dense, o.c)
	var err error
	for j := 0; j < o.c; j++ {
		var col *Dense
		if col, err = o.ColAt(j); err != nil {
			return nil, denseErrorf(ctxMul, err)
		}
		cols[j] = col.Transpose()
	}

	var row, prod *Dense
	for i := 0; i < m.r; i++ {
		if row, err = m.RowAt(i); err != nil {
			return nil, denseErrorf(ctxMul, err)
		}
		for j := 0; j < o.c; j++ {
			if prod, err = row.MulElem(cols[j]); err != nil {
				return nil, denseErrorf(ctxMul, err)
			}
			out.data[i*o.c+j] = prod.Sum()
		}
	}

	return out, nil
}

// Transpose returns a new Cols()×Rows() matrix with out[j,i] = m[i,j].
// The receiver is not modified.
func (m *Dense) Transpose() *Dense {
	out := newZeroed(m.c, m.r)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[base+j]
		}
	}

	return out
}
