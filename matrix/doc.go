// Package matrix provides Dense, a mutable row-major float64 matrix.
//
// The package provides:
//
//   - Construction from flat data (New) or nested rows (FromRows), plus
//     factories: Prefilled, Zeros, Ones, Diagonal, DiagonalPad, Identity.
//   - One generalized accessor, Submatrix / SetSubmatrix, that reads or
//     writes an arbitrary selection of rows and columns in any order.
//     Range, Strided, Row, Col and Select are specializations built on it;
//     At / Set address a single cell.
//   - Element-wise and scalar arithmetic (Map, Combine, Add, Sub, MulElem,
//     DivElem, *Scalar, Scalar*), Mul, Transpose and Sum.
//   - Text rendering with one column width for the whole matrix.
//
// Every operation that returns a matrix allocates new storage; only the
// Set* methods mutate in place. Failures are returned as errors wrapping
// ErrOutOfBounds, ErrShape, ErrBadStride or ErrNilMatrix.
//
//	m, _ := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
//	top, _ := m.Range(matrix.Span{Start: 0, End: 2}, matrix.All(3))
//	_ = m.SetRow(2, matrix.All(3), matrix.Prefilled(1, 1, 0))
//	fmt.Print(m.Transpose())
package matrix
