// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide the single source of truth for bounds and shape checks.
//  - Every accessor form funnels through axisInBounds (directly, or via
//    IndexInBounds / RangeInBounds) so the "last addressable index" rule is
//    applied uniformly.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing.

package matrix

// IndexInBounds reports whether 0 <= row < Rows() and 0 <= col < Cols().
func (m *Dense) IndexInBounds(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c
}

// RangeInBounds reports whether both half-open spans address only existing
// cells: the first pair (rows.Start, cols.Start) and the last addressable pair
// (rows.End-1, cols.End-1) must satisfy IndexInBounds.
//
// An empty or inverted span has no last addressable index and is reported as
// out of bounds.
func (m *Dense) RangeInBounds(rows, cols Span) bool {
	if rows.End <= rows.Start || cols.End <= cols.Start {
		return false
	}

	return axisInBounds(rows.Start, rows.End-1, m.r) && axisInBounds(cols.Start, cols.End-1, m.c)
}

// axisInBounds reports whether the indices lo..hi all lie in [0, n).
func axisInBounds(lo, hi, n int) bool {
	return lo >= 0 && hi < n
}

// DimensionsEqual reports whether a and b have identical row and column counts.
// Both must be non-nil.
func DimensionsEqual(a, b *Dense) bool {
	return a.r == b.r && a.c == b.c
}

// validateOperands fails with ErrNilMatrix on the first nil operand.
func validateOperands(method string, ms ...*Dense) error {
	for _, m := range ms {
		if m == nil {
			return denseErrorf(method, ErrNilMatrix)
		}
	}

	return nil
}

// validateSameShape is validateOperands followed by DimensionsEqual.
func validateSameShape(method string, a, b *Dense) error {
	if err := validateOperands(method, a, b); err != nil {
		return err
	}
	if !DimensionsEqual(a, b) {
		return denseErrorf(method, shapeMismatch(a.r, a.c, b.r, b.c))
	}

	return nil
}
