// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Convenience factories for common prefilled shapes: constant, zeros,
//     ones, diagonal with pad, identity.
//   - Factories compute data that always matches rows*cols, so they return
//     *Dense without an error. A negative size, or one whose element count
//     overflows int, is a programmer error and panics.

package matrix

import "fmt"

const (
	panicNegativeSize = "matrix: %s: negative size %dx%d"
	panicOversize     = "matrix: %s: size %dx%d overflows element count"
)

// Prefilled returns a rows×cols matrix with every element equal to v.
// Complexity: O(rows*cols).
func Prefilled(rows, cols int, v float64) *Dense {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf(panicNegativeSize, "Prefilled", rows, cols))
	}
	if !sizeFits(rows, cols) {
		panic(fmt.Sprintf(panicOversize, "Prefilled", rows, cols))
	}
	m := newZeroed(rows, cols)
	if v != 0 {
		for i := range m.data {
			m.data[i] = v
		}
	}

	return m
}

// PrefilledSquare returns a size×size matrix with every element equal to v.
func PrefilledSquare(size int, v float64) *Dense { return Prefilled(size, size, v) }

// Zeros returns a rows×cols matrix of zeros.
func Zeros(rows, cols int) *Dense { return Prefilled(rows, cols, 0) }

// ZerosSquare returns a size×size matrix of zeros.
func ZerosSquare(size int) *Dense { return Zeros(size, size) }

// Ones returns a rows×cols matrix of ones.
func Ones(rows, cols int) *Dense { return Prefilled(rows, cols, 1) }

// OnesSquare returns a size×size matrix of ones.
func OnesSquare(size int) *Dense { return Ones(size, size) }

// DiagonalPad returns an N×N matrix (N = len(values)) whose main diagonal
// holds values from top-left to bottom-right and whose other entries are pad.
//
// Complexity: O(N²).
func DiagonalPad(values []float64, pad float64) *Dense {
	n := len(values)
	m := Prefilled(n, n, pad)
	for i, v := range values {
		m.data[i*n+i] = v
	}

	return m
}

// Diagonal is DiagonalPad with a zero pad.
func Diagonal(values []float64) *Dense { return DiagonalPad(values, 0) }

// Identity returns the size×size identity matrix.
func Identity(size int) *Dense {
	if size < 0 {
		panic(fmt.Sprintf(panicNegativeSize, "Identity", size, size))
	}
	if !sizeFits(size, size) {
		panic(fmt.Sprintf(panicOversize, "Identity", size, size))
	}
	ones := make([]float64, size)
	for i := range ones {
		ones[i] = 1
	}

	return Diagonal(ones)
}
