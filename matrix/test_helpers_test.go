// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and assertions shared by the tests.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance for floating comparisons in property tests.
const tol = 1e-9

// MustFromRows builds a matrix from nested rows or fails the test.
func MustFromRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(tb testing.TB, m *matrix.Dense, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// RequireRows asserts shape and every element of got against want rows (exact).
func RequireRows(tb testing.TB, want [][]float64, got *matrix.Dense) {
	tb.Helper()
	require.NotNil(tb, got)
	require.Equal(tb, len(want), got.Rows(), "rows")
	for i := range want {
		require.Equal(tb, len(want[i]), got.Cols(), "cols")
		for j := range want[i] {
			require.Equal(tb, want[i][j], MustAt(tb, got, i, j), "element (%d,%d)", i, j)
		}
	}
}

// RequireApprox asserts equal shapes and element-wise closeness within tol.
func RequireApprox(tb testing.TB, want, got *matrix.Dense) {
	tb.Helper()
	require.True(tb, want.EqualApprox(got, tol), "want:\n%sgot:\n%s", want, got)
}

// RandomDense returns an r×c matrix filled from rng with values in [-10, 10).
func RandomDense(rng *rand.Rand, r, c int) *matrix.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.Float64()*20 - 10
	}
	m, err := matrix.New(r, c, data)
	if err != nil {
		panic(err)
	}

	return m
}

// sample3x3 is the 1..9 fixture.
func sample3x3(tb testing.TB) *matrix.Dense {
	tb.Helper()
	return MustFromRows(tb, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
}

// constantCols3x3 is the [[20,1,5]]×3 fixture.
func constantCols3x3(tb testing.TB) *matrix.Dense {
	tb.Helper()
	return MustFromRows(tb, [][]float64{{20, 1, 5}, {20, 1, 5}, {20, 1, 5}})
}
