// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Free-function operator forms. Each dispatches to exactly one method on
//     *Dense, which stays the canonical implementation.
//   - Scalar-on-left forms: s+M and s*M reuse the matrix-on-left methods;
//     s-M and s/M are their own element-wise operations.

package matrix

const (
	ctxScalarAdd = "ScalarAdd"
	ctxScalarSub = "ScalarSub"
	ctxScalarMul = "ScalarMul"
	ctxScalarDiv = "ScalarDiv"
)

// Add returns a + b element-wise.
func Add(a, b *Dense) (*Dense, error) {
	if err := validateOperands(ctxAdd, a); err != nil {
		return nil, err
	}

	return a.Add(b)
}

// Sub returns a - b element-wise.
func Sub(a, b *Dense) (*Dense, error) {
	if err := validateOperands(ctxSub, a); err != nil {
		return nil, err
	}

	return a.Sub(b)
}

// MulElem returns a ∘ b element-wise.
func MulElem(a, b *Dense) (*Dense, error) {
	if err := validateOperands(ctxMulElem, a); err != nil {
		return nil, err
	}

	return a.MulElem(b)
}

// DivElem returns a / b element-wise.
func DivElem(a, b *Dense) (*Dense, error) {
	if err := validateOperands(ctxDivElem, a); err != nil {
		return nil, err
	}

	return a.DivElem(b)
}

// Mul returns the matrix product a·b.
func Mul(a, b *Dense) (*Dense, error) {
	if err := validateOperands(ctxMul, a); err != nil {
		return nil, err
	}

	return a.Mul(b)
}

// Transpose returns mᵀ.
func Transpose(m *Dense) (*Dense, error) {
	if err := validateOperands("Transpose", m); err != nil {
		return nil, err
	}

	return m.Transpose(), nil
}

// ScalarAdd returns s + m, which equals m + s.
func ScalarAdd(s float64, m *Dense) (*Dense, error) {
	if err := validateOperands(ctxScalarAdd, m); err != nil {
		return nil, err
	}

	return m.AddScalar(s), nil
}

// ScalarSub returns s - m, computed as s - m[i,j] for every cell.
func ScalarSub(s float64, m *Dense) (*Dense, error) {
	if err := validateOperands(ctxScalarSub, m); err != nil {
		return nil, err
	}

	return m.Map(func(v float64) float64 { return s - v }), nil
}

// ScalarMul returns s * m, which equals m * s.
func ScalarMul(s float64, m *Dense) (*Dense, error) {
	if err := validateOperands(ctxScalarMul, m); err != nil {
		return nil, err
	}

	return m.MulScalar(s), nil
}

// ScalarDiv returns s / m, computed as s / m[i,j] for every cell.
func ScalarDiv(s float64, m *Dense) (*Dense, error) {
	if err := validateOperands(ctxScalarDiv, m); err != nil {
		return nil, err
	}

	return m.Map(func(v float64) float64 { return s / v }), nil
}
