// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every user-triggered failure returns one of these (possibly wrapped
// with call-site context) and tests match them via errors.Is.
// Panics are reserved for programmer errors such as negative factory sizes.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Detection
// sites wrap with denseErrorf("Method", ErrX) so the message carries the
// failing method while errors.Is keeps matching the sentinel.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> bad stride -> out of bounds -> shape.

var (
	// ErrOutOfBounds indicates that a row or column index lies outside the
	// current dimensions (single-cell and submatrix accessors).
	ErrOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrShape indicates that operand shapes are incompatible: element-wise
	// operands of different size, an inner-dimension mismatch in Mul, a fill
	// that is neither one element nor exactly the selected size, ragged rows
	// in FromRows, or a data length that does not match rows*cols.
	ErrShape = errors.New("matrix: shape mismatch")

	// ErrBadStride indicates a Stride selector with a zero step.
	ErrBadStride = errors.New("matrix: stride step must be non-zero")

	// ErrNilMatrix indicates that a nil *Dense was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// denseErrorf wraps a sentinel with the Dense method that detected it.
func denseErrorf(method string, err error) error {
	return fmt.Errorf("Dense.%s: %w", method, err)
}

// shapeMismatch describes two incompatible shapes and wraps ErrShape.
func shapeMismatch(ar, ac, br, bc int) error {
	return fmt.Errorf("%dx%d vs %dx%d: %w", ar, ac, br, bc, ErrShape)
}

// denseIndexErrorf wraps a sentinel with the method and offending coordinates.
func denseIndexErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
