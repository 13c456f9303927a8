// SPDX-License-Identifier: MIT

// Command matrixdemo builds a few sample matrices and prints the results of
// addition, transposition and multiplication.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/katalvlaran/densemat/matrix"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

type demo struct {
	Precision int  `help:"decimal digits printed per element" default:"3"`
	Color     bool `help:"highlight section titles" default:"false" negatable:""`
}

// Validate is called by kong after parsing.
func (d *demo) Validate() error {
	if d.Precision < 0 {
		return errors.Errorf("precision must be non-negative, got %d", d.Precision)
	}
	return nil
}

type section struct {
	title string
	build func() (*matrix.Dense, error)
}

func (d *demo) sections() []section {
	x := mustRows([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	y := mustRows([][]float64{{20, 1, 5}, {20, 1, 5}, {20, 1, 5}})
	z := mustRows([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}, {10, 11, 12}})

	plain := func(m *matrix.Dense) func() (*matrix.Dense, error) {
		return func() (*matrix.Dense, error) { return m, nil }
	}

	return []section{
		{"I(3)", plain(matrix.Identity(3))},
		{"diagonal([1 2 3 4 5 6], pad 2.5)", plain(matrix.DiagonalPad([]float64{1, 2, 3, 4, 5, 6}, 2.5))},
		{"x + y", func() (*matrix.Dense, error) { return x.Add(y) }},
		{"transpose(I(3))", plain(matrix.Identity(3).Transpose())},
		{"transpose(x)", plain(x.Transpose())},
		{"transpose(z)", plain(z.Transpose())},
		{"x * y", func() (*matrix.Dense, error) { return x.Mul(y) }},
		{"y * x", func() (*matrix.Dense, error) { return y.Mul(x) }},
	}
}

func (d *demo) Run(w io.Writer) error {
	au := aurora.NewAurora(d.Color)
	for _, s := range d.sections() {
		m, err := s.build()
		if err != nil {
			return errors.Wrapf(err, "section %q", s.title)
		}
		if _, err = fmt.Fprintf(w, "%s\n%s\n", au.Bold(s.title), m.Render(matrix.WithPrecision(d.Precision))); err != nil {
			return errors.Wrap(err, "write output")
		}
	}
	return nil
}

func mustRows(rows [][]float64) *matrix.Dense {
	m, err := matrix.FromRows(rows)
	if err != nil {
		panic(errors.Wrap(err, "sample matrix"))
	}
	return m
}

func main() {
	var cli demo

	log.SetFlags(log.Lshortfile | log.LUTC | log.Ltime)

	parser := kong.Must(
		&cli,
		kong.Name("matrixdemo"),
		kong.Description("print sample dense matrix computations"),
		kong.UsageOnError(),
	)

	if _, err := parser.Parse(os.Args[1:]); err != nil {
		log.Println(aurora.NewAurora(true).Red("ERROR"), err)
		os.Exit(1)
	}

	if err := cli.Run(os.Stdout); err != nil {
		log.Printf("%T - [%+v]\n", err, err)
		os.Exit(1)
	}
}
