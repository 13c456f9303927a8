// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

func TestIndexInBounds(t *testing.T) {
	m := matrix.Zeros(2, 3)
	require.True(t, m.IndexInBounds(0, 0))
	require.True(t, m.IndexInBounds(1, 2))
	require.False(t, m.IndexInBounds(2, 0))
	require.False(t, m.IndexInBounds(0, 3))
	require.False(t, m.IndexInBounds(-1, 0))
	require.False(t, m.IndexInBounds(0, -1))

	require.False(t, matrix.Zeros(0, 0).IndexInBounds(0, 0))
}

func TestRangeInBounds_ChecksLastAddressableIndex(t *testing.T) {
	m := matrix.Zeros(3, 4)

	// Exclusive end equal to the dimension is fine: End-1 is checked.
	require.True(t, m.RangeInBounds(matrix.All(3), matrix.All(4)))
	require.True(t, m.RangeInBounds(matrix.Span{Start: 2, End: 3}, matrix.Span{Start: 3, End: 4}))

	require.False(t, m.RangeInBounds(matrix.Span{Start: 0, End: 4}, matrix.All(4)))
	require.False(t, m.RangeInBounds(matrix.All(3), matrix.Span{Start: 0, End: 5}))
	require.False(t, m.RangeInBounds(matrix.Span{Start: -1, End: 2}, matrix.All(4)))

	// Empty and inverted spans have no last index.
	require.False(t, m.RangeInBounds(matrix.Span{Start: 1, End: 1}, matrix.All(4)))
	require.False(t, m.RangeInBounds(matrix.All(3), matrix.Span{Start: 3, End: 1}))
}

func TestDimensionsEqual(t *testing.T) {
	require.True(t, matrix.DimensionsEqual(matrix.Zeros(2, 3), matrix.Ones(2, 3)))
	require.False(t, matrix.DimensionsEqual(matrix.Zeros(2, 3), matrix.Zeros(3, 2)))
	require.False(t, matrix.DimensionsEqual(matrix.Zeros(2, 3), matrix.Zeros(2, 2)))
}
