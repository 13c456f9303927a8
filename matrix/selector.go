// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Normalize every accessor argument form (explicit list, contiguous range,
//     strided range, single index) into the explicit index list consumed by
//     Submatrix / SetSubmatrix.
//
// Design:
//   - Selector is a tiny interface; each concrete form expands itself.
//   - Index, Span and Stride report their extremes without expanding, so the
//     receiver rejects an out-of-range selector before allocating its list.

package matrix

import (
	"fmt"
	"math"
)

// Selector expands into an ordered list of row or column indices.
type Selector interface {
	Indices() ([]int, error)
}

// Indices is an explicit index list. Order and duplicates are preserved.
type Indices []int

// Indices returns a copy of the list.
func (s Indices) Indices() ([]int, error) {
	out := make([]int, len(s))
	copy(out, s)

	return out, nil
}

// Index selects a single row or column.
type Index int

// Indices returns the one-element list {i}.
func (i Index) Indices() ([]int, error) { return []int{int(i)}, nil }

func (i Index) extent() (lo, hi int, empty bool, err error) { return int(i), int(i), false, nil }

// Span is a contiguous half-open range [Start, End).
type Span struct {
	Start, End int
}

// All returns the span covering n rows or columns, [0, n).
func All(n int) Span { return Span{Start: 0, End: n} }

// Len returns the number of indices in the span (0 when inverted). A length
// that does not fit in an int saturates at math.MaxInt.
func (s Span) Len() int {
	if s.End <= s.Start {
		return 0
	}
	if d := uint(s.End) - uint(s.Start); d <= math.MaxInt {
		return int(d)
	}

	return math.MaxInt
}

func (s Span) extent() (lo, hi int, empty bool, err error) {
	if s.End <= s.Start {
		return 0, 0, true, nil
	}

	return s.Start, s.End - 1, false, nil
}

// Indices returns Start, Start+1, ..., End-1.
//
// Errors:
//   - ErrOutOfBounds when the span is longer than any index list can be.
func (s Span) Indices() ([]int, error) {
	if s.End > s.Start && uint(s.End)-uint(s.Start) > math.MaxInt {
		return nil, fmt.Errorf("Span{%d,%d}: %w", s.Start, s.End, ErrOutOfBounds)
	}
	n := s.Len()
	out := make([]int, n)
	for k := 0; k < n; k++ {
		out[k] = s.Start + k
	}

	return out, nil
}

// Stride is the arithmetic progression From, From+Step, ... that includes
// Through when the progression reaches it exactly. Step may be negative for a
// descending progression; a zero Step is invalid.
type Stride struct {
	From, Through, Step int
}

// terms returns the number of steps past From (q) and the last term of the
// progression. It works in unsigned arithmetic, so endpoints near
// math.MinInt or math.MaxInt neither overflow nor loop.
func (s Stride) terms() (q uint, last int, empty bool, err error) {
	if s.Step == 0 {
		return 0, 0, true, fmt.Errorf("Stride{%d,%d,%d}: %w", s.From, s.Through, s.Step, ErrBadStride)
	}
	if s.Step > 0 {
		if s.From > s.Through {
			return 0, 0, true, nil
		}
		step := uint(s.Step)
		q = (uint(s.Through) - uint(s.From)) / step

		return q, int(uint(s.From) + q*step), false, nil
	}
	if s.From < s.Through {
		return 0, 0, true, nil
	}
	step := -uint(s.Step)
	q = (uint(s.From) - uint(s.Through)) / step

	return q, int(uint(s.From) - q*step), false, nil
}

func (s Stride) extent() (lo, hi int, empty bool, err error) {
	_, last, empty, err := s.terms()
	if err != nil || empty {
		return 0, 0, empty, err
	}
	if s.Step > 0 {
		return s.From, last, false, nil
	}

	return last, s.From, false, nil
}

// Indices expands the progression as From + k*Step, k = 0..n-1.
//
// Errors:
//   - ErrBadStride when Step == 0.
//   - ErrOutOfBounds when the progression has more terms than fit in an int.
func (s Stride) Indices() ([]int, error) {
	q, _, empty, err := s.terms()
	if err != nil {
		return nil, err
	}
	if empty {
		return []int{}, nil
	}
	if q >= math.MaxInt {
		return nil, fmt.Errorf("Stride{%d,%d,%d}: %w", s.From, s.Through, s.Step, ErrOutOfBounds)
	}
	n := int(q) + 1
	out := make([]int, n)
	for k := 0; k < n; k++ {
		out[k] = s.From + k*s.Step
	}

	return out, nil
}

// extenter is implemented by selectors that know their smallest and largest
// index without expanding.
type extenter interface {
	extent() (lo, hi int, empty bool, err error)
}

// expand resolves a pair of selectors against the receiver's dimensions,
// tagging errors with the method name. A nil selector selects nothing.
//
// Errors:
//   - ErrOutOfBounds when a selector's extremes leave the matrix; the check
//     runs before the index list is allocated.
//   - ErrBadStride for a zero-step Stride.
func (m *Dense) expand(method string, rows, cols Selector) ([]int, []int, error) {
	ri, err := indicesWithin(rows, m.r)
	if err != nil {
		return nil, nil, denseErrorf(method, fmt.Errorf("rows: %w", err))
	}
	ci, err := indicesWithin(cols, m.c)
	if err != nil {
		return nil, nil, denseErrorf(method, fmt.Errorf("cols: %w", err))
	}

	return ri, ci, nil
}

// indicesWithin expands s, first rejecting it when its extremes fall outside
// [0, n).
func indicesWithin(s Selector, n int) ([]int, error) {
	if s == nil {
		return []int{}, nil
	}
	if e, ok := s.(extenter); ok {
		lo, hi, empty, err := e.extent()
		if err != nil {
			return nil, err
		}
		if empty {
			return []int{}, nil
		}
		if !axisInBounds(lo, hi, n) {
			return nil, fmt.Errorf("[%d..%d] in dimension %d: %w", lo, hi, n, ErrOutOfBounds)
		}
	}

	return s.Indices()
}
