// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Human-readable rendering: every element fixed-point with a configurable
//     number of decimals, right-aligned to one width shared by the whole
//     matrix, elements separated by a tab, each row terminated by '\n'.

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// formatFixed renders v in fixed-point notation with precision decimals.
func formatFixed(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// displayWidth is the width an element contributes to the shared column
// width: the integer-only text for whole numbers, otherwise the fixed-point
// text at the given precision.
func displayWidth(v float64, precision int) int {
	if v == math.Floor(v) {
		return len(formatFixed(v, 0))
	}

	return len(formatFixed(v, precision))
}

// Render returns the text form of m.
//
// Implementation:
//   - Stage 1: one global width = max displayWidth over all elements.
//   - Stage 2: each element formatted with the configured precision and
//     left-padded to that width; separator between elements; '\n' after each row.
//
// Complexity: O(r*c).
func (m *Dense) Render(opts ...RenderOption) string {
	o := gatherRenderOptions(opts...)

	width := 0
	m.Do(func(_, _ int, v float64) bool {
		if w := displayWidth(v, o.precision); w > width {
			width = w
		}
		return true
	})

	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(o.separator)
			}
			fmt.Fprintf(&b, "%*s", width, formatFixed(m.data[i*m.c+j], o.precision))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// String renders m with the default options.
func (m *Dense) String() string { return m.Render() }
