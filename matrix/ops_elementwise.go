// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Map and Combine are the two element-wise kernels; every element-wise and
//     scalar operator is a thin wrapper over one of them.
//   - Deterministic flat loops over the row-major buffer; one allocation for
//     the output, operands never mutated.

package matrix

const (
	ctxCombine = "Combine"
	ctxAdd     = "Add"
	ctxSub     = "Sub"
	ctxMulElem = "MulElem"
	ctxDivElem = "DivElem"
)

// Map returns a new matrix of the same shape with f applied to every element.
// Complexity: O(r*c).
func (m *Dense) Map(f func(v float64) float64) *Dense {
	out := newZeroed(m.r, m.c)
	for i, v := range m.data {
		out.data[i] = f(v)
	}

	return out
}

// Combine returns a new matrix with out[k] = op(m[k], o[k]) in flat-index order.
//
// Errors:
//   - ErrNilMatrix when o is nil.
//   - ErrShape when the shapes differ.
//
// Complexity: O(r*c).
func (m *Dense) Combine(o *Dense, op func(a, b float64) float64) (*Dense, error) {
	return m.combine(ctxCombine, o, op)
}

func (m *Dense) combine(method string, o *Dense, op func(a, b float64) float64) (*Dense, error) {
	if err := validateSameShape(method, m, o); err != nil {
		return nil, err
	}
	out := newZeroed(m.r, m.c)
	for i, v := range m.data {
		out.data[i] = op(v, o.data[i])
	}

	return out, nil
}

// Add returns m + o element-wise.
func (m *Dense) Add(o *Dense) (*Dense, error) {
	return m.combine(ctxAdd, o, func(a, b float64) float64 { return a + b })
}

// Sub returns m - o element-wise.
func (m *Dense) Sub(o *Dense) (*Dense, error) {
	return m.combine(ctxSub, o, func(a, b float64) float64 { return a - b })
}

// MulElem returns the Hadamard product m ∘ o.
func (m *Dense) MulElem(o *Dense) (*Dense, error) {
	return m.combine(ctxMulElem, o, func(a, b float64) float64 { return a * b })
}

// DivElem returns m / o element-wise. Division by zero follows IEEE-754.
func (m *Dense) DivElem(o *Dense) (*Dense, error) {
	return m.combine(ctxDivElem, o, func(a, b float64) float64 { return a / b })
}

// AddScalar returns m + s.
func (m *Dense) AddScalar(s float64) *Dense {
	return m.Map(func(v float64) float64 { return v + s })
}

// SubScalar returns m - s.
func (m *Dense) SubScalar(s float64) *Dense {
	return m.Map(func(v float64) float64 { return v - s })
}

// MulScalar returns m * s.
func (m *Dense) MulScalar(s float64) *Dense {
	return m.Map(func(v float64) float64 { return v * s })
}

// DivScalar returns m / s.
func (m *Dense) DivScalar(s float64) *Dense {
	return m.Map(func(v float64) float64 { return v / s })
}

// Sum returns the sum of all elements, seeded at 0.
func (m *Dense) Sum() float64 {
	var acc float64
	for _, v := range m.data {
		acc += v
	}

	return acc
}
