// SPDX-License-Identifier: MIT

// Package matrix - generalized submatrix accessor and its specializations.
//
// Purpose:
//   - Submatrix / SetSubmatrix are the single primitive for reading and
//     writing an arbitrary (non-contiguous, non-monotonic) selection of rows
//     and columns.
//   - Every other accessor (Select, Range, Strided, Row, Col, RowAt, ColAt)
//     expands its arguments into index lists and delegates here, so all
//     forms share one bounds rule and one fill rule.
//
// Semantics:
//   - Reads always copy into a freshly allocated matrix (no views).
//   - Writes are in place; every check runs before the first write.

package matrix

import "fmt"

const (
	ctxSubmatrix    = "Submatrix"
	ctxSetSubmatrix = "SetSubmatrix"
	ctxSelect       = "Select"
	ctxSetSelect    = "SetSelect"
)

// extremes returns the smallest and largest index in idx.
// idx must be non-empty.
func extremes(idx []int) (lo, hi int) {
	lo, hi = idx[0], idx[0]
	for _, v := range idx[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}

// checkSelection validates each non-empty index list against its own
// dimension. Every index lies between its list's extremes, so extremes in
// bounds means every addressed cell exists. An empty list addresses nothing
// and passes, but the other list is still checked.
func (m *Dense) checkSelection(method string, rows, cols []int) error {
	if len(rows) > 0 {
		if lo, hi := extremes(rows); !axisInBounds(lo, hi, m.r) {
			return denseErrorf(method, fmt.Errorf("rows [%d..%d] in %dx%d: %w", lo, hi, m.r, m.c, ErrOutOfBounds))
		}
	}
	if len(cols) > 0 {
		if lo, hi := extremes(cols); !axisInBounds(lo, hi, m.c) {
			return denseErrorf(method, fmt.Errorf("cols [%d..%d] in %dx%d: %w", lo, hi, m.r, m.c, ErrOutOfBounds))
		}
	}

	return nil
}

// Submatrix returns a new len(rows)×len(cols) matrix with
// out[i,j] = m[rows[i], cols[j]].
//
// Implementation:
//   - Stage 1: validate the extremes of rows and cols (before any read).
//   - Stage 2: allocate the result and copy with direct offset math.
//
// Behavior highlights:
//   - Index lists need not be sorted or unique; order is preserved, so
//     rows {2,0,1} places source row 2 into result row 0.
//   - Empty lists yield a zero-area matrix.
//
// Errors:
//   - ErrOutOfBounds when a non-empty list leaves its dimension.
//
// Complexity:
//   - Time O(len(rows)*len(cols)), Space O(len(rows)*len(cols)).
func (m *Dense) Submatrix(rows, cols []int) (*Dense, error) {
	if err := m.checkSelection(ctxSubmatrix, rows, cols); err != nil {
		return nil, err
	}

	rp, cp := len(rows), len(cols)
	out := newZeroed(rp, cp)
	var i, j, base int
	for i = 0; i < rp; i++ {
		base = rows[i] * m.c
		for j = 0; j < cp; j++ {
			out.data[i*cp+j] = m.data[base+cols[j]]
		}
	}

	return out, nil
}

// SetSubmatrix writes fill into the cells selected by rows×cols, in place.
//
// Implementation:
//   - Stage 1: reject a nil fill; validate the extremes of rows and cols.
//   - Stage 2: choose the fill mode:
//     broadcast when fill holds exactly one element (every selected cell gets it);
//     exact when fill is len(rows)×len(cols) (cell (rows[i],cols[j]) gets fill[i,j]).
//   - Stage 3: write. No write happens unless every check passed.
//
// Errors:
//   - ErrNilMatrix for a nil fill.
//   - ErrOutOfBounds when a non-empty list leaves its dimension.
//   - ErrShape when fill is neither one element nor exactly the selected size.
//
// Complexity:
//   - Time O(len(rows)*len(cols)), Space O(1).
func (m *Dense) SetSubmatrix(rows, cols []int, fill *Dense) error {
	if err := validateOperands(ctxSetSubmatrix, fill); err != nil {
		return err
	}
	if err := m.checkSelection(ctxSetSubmatrix, rows, cols); err != nil {
		return err
	}

	rp, cp := len(rows), len(cols)
	broadcast := len(fill.data) == 1
	if !broadcast && (fill.r != rp || fill.c != cp) {
		return denseErrorf(ctxSetSubmatrix, fmt.Errorf("fill %dx%d for selection %dx%d: %w",
			fill.r, fill.c, rp, cp, ErrShape))
	}

	// Exact fill from the receiver itself must read a snapshot.
	if fill == m && !broadcast {
		fill = fill.Clone()
	}

	var i, j, base int
	if broadcast {
		v := fill.data[0]
		for i = 0; i < rp; i++ {
			base = rows[i] * m.c
			for j = 0; j < cp; j++ {
				m.data[base+cols[j]] = v
			}
		}
		return nil
	}
	for i = 0; i < rp; i++ {
		base = rows[i] * m.c
		for j = 0; j < cp; j++ {
			m.data[base+cols[j]] = fill.data[i*cp+j]
		}
	}

	return nil
}

// Select is Submatrix over arbitrary selectors. Index, Span and Stride are
// bounds-checked before they are expanded.
func (m *Dense) Select(rows, cols Selector) (*Dense, error) {
	ri, ci, err := m.expand(ctxSelect, rows, cols)
	if err != nil {
		return nil, err
	}

	return m.Submatrix(ri, ci)
}

// SetSelect is SetSubmatrix over arbitrary selectors.
func (m *Dense) SetSelect(rows, cols Selector, fill *Dense) error {
	ri, ci, err := m.expand(ctxSetSelect, rows, cols)
	if err != nil {
		return err
	}

	return m.SetSubmatrix(ri, ci, fill)
}

// Range returns the contiguous block rows × cols.
func (m *Dense) Range(rows, cols Span) (*Dense, error) { return m.Select(rows, cols) }

// SetRange writes fill into the contiguous block rows × cols.
func (m *Dense) SetRange(rows, cols Span, fill *Dense) error { return m.SetSelect(rows, cols, fill) }

// Strided returns the cells on the row and column progressions.
func (m *Dense) Strided(rows, cols Stride) (*Dense, error) { return m.Select(rows, cols) }

// SetStrided writes fill into the cells on the row and column progressions.
func (m *Dense) SetStrided(rows, cols Stride, fill *Dense) error {
	return m.SetSelect(rows, cols, fill)
}

// Row returns the 1×n selection of row i over cols (an Indices, Span or Stride).
func (m *Dense) Row(i int, cols Selector) (*Dense, error) { return m.Select(Index(i), cols) }

// SetRow writes fill into row i over cols.
func (m *Dense) SetRow(i int, cols Selector, fill *Dense) error {
	return m.SetSelect(Index(i), cols, fill)
}

// Col returns the m×1 selection of column j over rows.
func (m *Dense) Col(rows Selector, j int) (*Dense, error) { return m.Select(rows, Index(j)) }

// SetCol writes fill into column j over rows.
func (m *Dense) SetCol(rows Selector, j int, fill *Dense) error {
	return m.SetSelect(rows, Index(j), fill)
}

// RowAt returns the whole row i as a 1×Cols() matrix.
func (m *Dense) RowAt(i int) (*Dense, error) { return m.Row(i, All(m.c)) }

// ColAt returns the whole column j as a Rows()×1 matrix.
func (m *Dense) ColAt(j int) (*Dense, error) { return m.Col(All(m.r), j) }
