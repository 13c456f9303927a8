// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_PrintsEverySection(t *testing.T) {
	var buf bytes.Buffer
	d := demo{Precision: 1}
	require.NoError(t, d.Run(&buf))

	out := buf.String()
	for _, s := range d.sections() {
		require.Contains(t, out, s.title+"\n")
	}
	require.Contains(t, out, "x * y\n120.0\t6.0\t30.0\n300.0\t15.0\t75.0\n480.0\t24.0\t120.0\n")
	require.Contains(t, out, "x + y\n21.0\t3.0\t8.0\n24.0\t6.0\t11.0\n27.0\t9.0\t14.0\n")
	require.Contains(t, out, "I(3)\n1.0\t0.0\t0.0\n")
}

func TestRun_NoColorByDefault(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&demo{Precision: 3}).Run(&buf))
	require.False(t, strings.Contains(buf.String(), "\x1b["))
}

func TestValidate(t *testing.T) {
	require.NoError(t, (&demo{Precision: 0}).Validate())
	require.Error(t, (&demo{Precision: -2}).Validate())
}
