// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe single-cell accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula row*cols + col.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Every method that returns a matrix allocates fresh storage; nothing aliases.
//
// Complexity quicksheet:
//   - New/FromRows: O(r*c); At/Set: O(1); Clone/Elements: O(r*c).

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxFromRows = "FromRows"
	ctxAt       = "At"
	ctxSet      = "Set"
)

// Dense is a mutable row-major matrix of float64 values.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c (offset = row*c + col).
//
// A Dense is not safe for concurrent mutation; callers synchronize.
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

var _ fmt.Stringer = (*Dense)(nil)

// New creates a rows×cols matrix holding a copy of data in row-major order.
//
// Errors:
//   - ErrShape when a dimension is negative, rows*cols overflows int, or
//     len(data) != rows*cols.
//
// Complexity: O(rows*cols).
func New(rows, cols int, data []float64) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, denseErrorf(ctxNew, fmt.Errorf("negative dimensions %dx%d: %w", rows, cols, ErrShape))
	}
	if !sizeFits(rows, cols) {
		return nil, denseErrorf(ctxNew, fmt.Errorf("%dx%d overflows element count: %w", rows, cols, ErrShape))
	}
	if len(data) != rows*cols {
		return nil, denseErrorf(ctxNew, fmt.Errorf("%d values for %dx%d: %w", len(data), rows, cols, ErrShape))
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// FromRows builds a matrix from a slice of rows.
// The row count is len(rows); the column count is the length of the first
// row (0 when there are no rows). Every row must have that same length.
//
// Errors:
//   - ErrShape when any row length differs from the first.
//
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}

	// Every row must match the first; a ragged input whose lengths happen to
	// sum to r*c is rejected as well.
	buf := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, denseErrorf(ctxFromRows, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), c, ErrShape))
		}
		buf = append(buf, row...)
	}

	return &Dense{r: r, c: c, data: buf}, nil
}

// sizeFits reports whether rows*cols is representable as an int.
// Both dimensions must be non-negative.
func sizeFits(rows, cols int) bool {
	return cols == 0 || rows <= math.MaxInt/cols
}

// newZeroed allocates an r×c zero matrix without validation; callers pass
// dimensions taken from existing matrices or checked with sizeFits.
func newZeroed(r, c int) *Dense {
	return &Dense{r: r, c: c, data: make([]float64, r*c)}
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Len returns the number of stored elements (rows*cols).
func (m *Dense) Len() int { return len(m.data) }

// At returns the value at (row, col).
//
// Errors:
//   - ErrOutOfBounds when the coordinates fail IndexInBounds.
//
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if !m.IndexInBounds(row, col) {
		return 0, denseIndexErrorf(ctxAt, row, col, ErrOutOfBounds)
	}

	return m.data[row*m.c+col], nil
}

// Set stores v at (row, col) in place.
//
// Errors:
//   - ErrOutOfBounds when the coordinates fail IndexInBounds.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	if !m.IndexInBounds(row, col) {
		return denseIndexErrorf(ctxSet, row, col, ErrOutOfBounds)
	}
	m.data[row*m.c+col] = v

	return nil
}

// Clone returns a deep copy with independent storage.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Elements returns a copy of the row-major buffer.
func (m *Dense) Elements() []float64 {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return cp
}

// Equal reports whether m and o have the same shape and bitwise-equal values.
// NaN never equals NaN.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if !DimensionsEqual(m, o) {
		return false
	}
	for i, v := range m.data {
		if v != o.data[i] {
			return false
		}
	}

	return true
}

// EqualApprox reports whether m and o have the same shape and every pair of
// elements differs by at most |tol|.
func (m *Dense) EqualApprox(o *Dense, tol float64) bool {
	if m == nil || o == nil {
		return m == o
	}
	if !DimensionsEqual(m, o) {
		return false
	}
	tol = math.Abs(tol)
	for i, v := range m.data {
		if math.Abs(v-o.data[i]) > tol {
			return false
		}
	}

	return true
}

// Do visits each element in row-major order and calls f(row, col, v).
// It stops early when f returns false.
func (m *Dense) Do(f func(row, col int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}
