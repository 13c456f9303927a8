// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

func TestSelectors_Expand(t *testing.T) {
	cases := []struct {
		name string
		sel  matrix.Selector
		want []int
	}{
		{"indices", matrix.Indices{3, 1, 1}, []int{3, 1, 1}},
		{"index", matrix.Index(4), []int{4}},
		{"span", matrix.Span{Start: 2, End: 5}, []int{2, 3, 4}},
		{"empty span", matrix.Span{Start: 2, End: 2}, []int{}},
		{"inverted span", matrix.Span{Start: 3, End: 1}, []int{}},
		{"all", matrix.All(3), []int{0, 1, 2}},
		{"stride through reached", matrix.Stride{From: 0, Through: 6, Step: 2}, []int{0, 2, 4, 6}},
		{"stride through skipped", matrix.Stride{From: 1, Through: 6, Step: 2}, []int{1, 3, 5}},
		{"stride descending", matrix.Stride{From: 5, Through: 1, Step: -2}, []int{5, 3, 1}},
		{"stride single", matrix.Stride{From: 4, Through: 4, Step: 3}, []int{4}},
		{"stride wrong direction", matrix.Stride{From: 4, Through: 0, Step: 1}, []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.sel.Indices()
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestStride_NearIntLimits(t *testing.T) {
	cases := []struct {
		name string
		sel  matrix.Stride
		want []int
	}{
		{"top edge", matrix.Stride{From: math.MaxInt - 1, Through: math.MaxInt, Step: 4}, []int{math.MaxInt - 1}},
		{"reaches max", matrix.Stride{From: math.MaxInt - 4, Through: math.MaxInt, Step: 2}, []int{math.MaxInt - 4, math.MaxInt - 2, math.MaxInt}},
		{"bottom edge", matrix.Stride{From: math.MinInt + 5, Through: math.MinInt, Step: -4}, []int{math.MinInt + 5, math.MinInt + 1}},
		{"min step", matrix.Stride{From: 0, Through: math.MinInt, Step: math.MinInt}, []int{0, math.MinInt}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.sel.Indices()
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestSelectors_TooLongToExpand(t *testing.T) {
	_, err := matrix.Stride{From: math.MinInt, Through: math.MaxInt, Step: 1}.Indices()
	require.ErrorIs(t, err, matrix.ErrOutOfBounds)

	_, err = matrix.Span{Start: math.MinInt, End: math.MaxInt}.Indices()
	require.ErrorIs(t, err, matrix.ErrOutOfBounds)
}

func TestStride_ZeroStep(t *testing.T) {
	_, err := matrix.Stride{From: 0, Through: 3}.Indices()
	require.ErrorIs(t, err, matrix.ErrBadStride)
}

func TestIndices_ReturnsCopy(t *testing.T) {
	src := matrix.Indices{1, 2}
	got, err := src.Indices()
	require.NoError(t, err)
	got[0] = 9
	require.Equal(t, 1, src[0])
}

func TestSpan_Len(t *testing.T) {
	require.Equal(t, 3, matrix.Span{Start: 1, End: 4}.Len())
	require.Equal(t, 0, matrix.Span{Start: 4, End: 1}.Len())
	require.Equal(t, math.MaxInt, matrix.Span{Start: math.MinInt, End: math.MaxInt}.Len())
}

func TestSelect_NilSelectorSelectsNothing(t *testing.T) {
	m := sample3x3(t)
	got, err := m.Select(nil, matrix.All(3))
	require.NoError(t, err)
	require.Equal(t, 0, got.Rows())
	require.Equal(t, 3, got.Cols())
}
