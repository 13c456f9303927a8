// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for text rendering.
// This file defines:
//   - RenderOption (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherRenderOptions helper (internal).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the number of decimal digits printed per element.
	DefaultPrecision = 3

	// DefaultSeparator separates elements within a rendered row.
	DefaultSeparator = "\t"
)

const (
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be non-negative"
)

// RenderOption mutates rendering options. Safe to apply repeatedly.
type RenderOption func(*renderOptions)

type renderOptions struct {
	precision int    // >= 0; DefaultPrecision
	separator string // DefaultSeparator
}

// WithPrecision sets the number of decimal digits. Panics if p < 0.
func WithPrecision(p int) RenderOption {
	if p < 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *renderOptions) { o.precision = p }
}

// WithSeparator sets the string written between elements of a row.
func WithSeparator(sep string) RenderOption {
	return func(o *renderOptions) { o.separator = sep }
}

func gatherRenderOptions(opts ...RenderOption) renderOptions {
	o := renderOptions{
		precision: DefaultPrecision,
		separator: DefaultSeparator,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
