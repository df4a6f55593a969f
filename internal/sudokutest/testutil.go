// Package sudokutest holds grid-literal helpers shared by the engine's
// test suites: parsing the compact row-major digit strings used in
// spec.md's concrete scenarios into *grid.Grid values.
package sudokutest

import (
	"fmt"

	"sudokuengine/internal/grid"
)

// Parse builds a grid of box width w, height h from a row-major digit
// string of length (w*h)^2. Each rune is a digit 0..9 (0 = empty), so
// grids with N > 9 cannot be written with this helper.
func Parse(w, h int, s string) (*grid.Grid, error) {
	g, err := grid.New(w, h)
	if err != nil {
		return nil, err
	}
	n := g.N
	if len(s) != n*n {
		return nil, fmt.Errorf("expected %d chars, got %d", n*n, len(s))
	}
	for i, r := range s {
		v := int(r - '0')
		row, col := i/n, i%n
		if err := g.Set(row, col, v); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Parse9 is a convenience wrapper for the common 9x9 (W=3, H=3) case.
func Parse9(s string) (*grid.Grid, error) {
	return Parse(3, 3, s)
}

// MustParse9 is Parse9 but panics on error, for use in package-level
// test fixtures where errors would indicate a typo in the literal.
func MustParse9(s string) *grid.Grid {
	g, err := Parse9(s)
	if err != nil {
		panic(err)
	}
	return g
}
