// Package grid implements the mutable N*N sudoku value: per-cell
// numbers and candidate sets, plus copy/compare/iterate/diff
// operations. A Grid owns flat row-major slices sized to its own N; no
// package-level state is shared between grids of different shapes.
package grid

import (
	"fmt"

	"sudokuengine/internal/geometry"
	"sudokuengine/internal/sudokuerr"
)

// Grid is an N*N sudoku board with box width W and box height H
// (N = W*H). Numbers holds 0 (empty) or a digit in [1, N] per cell,
// row-major. Candidates holds the per-cell candidate bitmask,
// maintained independently of Numbers — see package doc on BasicSolve
// for how the two are kept in sync.
type Grid struct {
	W, H, N   int
	Numbers   []int
	Candidates []Candidates
}

// New allocates an empty grid (all numbers 0, all candidate sets
// empty) for box width w and box height h.
func New(w, h int) (*Grid, error) {
	if err := geometry.Validate(w, h); err != nil {
		return nil, err
	}
	n := geometry.N(w, h)
	return &Grid{
		W: w, H: h, N: n,
		Numbers:    make([]int, n*n),
		Candidates: make([]Candidates, n*n),
	}, nil
}

func (g *Grid) idx(row, col int) (int, error) {
	if !geometry.InBounds(g.N, row, col) {
		return 0, fmt.Errorf("%w: (%d,%d) for N=%d", sudokuerr.ErrInvalidCoordinate, row, col, g.N)
	}
	return row*g.N + col, nil
}

// Get returns the number at (row, col); 0 means empty.
func (g *Grid) Get(row, col int) (int, error) {
	i, err := g.idx(row, col)
	if err != nil {
		return 0, err
	}
	return g.Numbers[i], nil
}

// Set writes the number at (row, col). v=0 clears the cell. Set does
// not touch Candidates — callers that need candidates kept consistent
// must call solve.InitCandidates or update them explicitly.
func (g *Grid) Set(row, col, v int) error {
	i, err := g.idx(row, col)
	if err != nil {
		return err
	}
	g.Numbers[i] = v
	return nil
}

// GetCandidates returns the candidate set at (row, col).
func (g *Grid) GetCandidates(row, col int) (Candidates, error) {
	i, err := g.idx(row, col)
	if err != nil {
		return 0, err
	}
	return g.Candidates[i], nil
}

// SetCandidates overwrites the candidate set at (row, col).
func (g *Grid) SetCandidates(row, col int, c Candidates) error {
	i, err := g.idx(row, col)
	if err != nil {
		return err
	}
	g.Candidates[i] = c
	return nil
}

// RemoveCandidates removes every digit in rm from the candidate set at
// (row, col). Absent digits are ignored.
func (g *Grid) RemoveCandidates(row, col int, rm Candidates) error {
	i, err := g.idx(row, col)
	if err != nil {
		return err
	}
	g.Candidates[i] = g.Candidates[i].Subtract(rm)
	return nil
}

// AllCells yields every (row, col) in row-major order.
func (g *Grid) AllCells() []geometry.Coord {
	out := make([]geometry.Coord, 0, g.N*g.N)
	for r := 0; r < g.N; r++ {
		for c := 0; c < g.N; c++ {
			out = append(out, geometry.Coord{Row: r, Col: c})
		}
	}
	return out
}

// Empty yields the cells with number 0, in row-major order.
func (g *Grid) Empty() []geometry.Coord {
	var out []geometry.Coord
	for r := 0; r < g.N; r++ {
		for c := 0; c < g.N; c++ {
			if g.Numbers[r*g.N+c] == 0 {
				out = append(out, geometry.Coord{Row: r, Col: c})
			}
		}
	}
	return out
}

// Filled yields the cells with a nonzero number, in row-major order.
func (g *Grid) Filled() []geometry.Coord {
	var out []geometry.Coord
	for r := 0; r < g.N; r++ {
		for c := 0; c < g.N; c++ {
			if g.Numbers[r*g.N+c] != 0 {
				out = append(out, geometry.Coord{Row: r, Col: c})
			}
		}
	}
	return out
}

// Copy returns a deep copy. Candidates are copied only if
// includeCandidates is true; otherwise the copy's candidate sets are
// all empty.
func (g *Grid) Copy(includeCandidates bool) *Grid {
	out := &Grid{
		W: g.W, H: g.H, N: g.N,
		Numbers:    make([]int, len(g.Numbers)),
		Candidates: make([]Candidates, len(g.Candidates)),
	}
	copy(out.Numbers, g.Numbers)
	if includeCandidates {
		copy(out.Candidates, g.Candidates)
	}
	return out
}

// Diff yields the cells where g and other hold different numbers.
// Both grids must share the same N.
func (g *Grid) Diff(other *Grid) []geometry.Coord {
	var out []geometry.Coord
	for r := 0; r < g.N; r++ {
		for c := 0; c < g.N; c++ {
			i := r*g.N + c
			if g.Numbers[i] != other.Numbers[i] {
				out = append(out, geometry.Coord{Row: r, Col: c})
			}
		}
	}
	return out
}

// Equal reports numbers-only equality; candidates are not compared.
func (g *Grid) Equal(other *Grid) bool {
	if g.N != other.N {
		return false
	}
	for i, v := range g.Numbers {
		if other.Numbers[i] != v {
			return false
		}
	}
	return true
}

// RowOf, ColOf, BoxOf and SurroundingOf forward to the geometry
// package bound to this grid's (W, H, N), so callers need not thread
// the shape through every call site.

func (g *Grid) RowOf(row, col int, include bool) []geometry.Coord {
	return geometry.RowOf(g.N, row, col, include)
}

func (g *Grid) ColOf(row, col int, include bool) []geometry.Coord {
	return geometry.ColOf(g.N, row, col, include)
}

func (g *Grid) BoxOf(row, col int, include bool) []geometry.Coord {
	return geometry.BoxOf(g.W, g.H, row, col, include)
}

func (g *Grid) SurroundingOf(row, col int, include bool) []geometry.Coord {
	return geometry.SurroundingOf(g.W, g.H, g.N, row, col, include)
}

func (g *Grid) BoxAt(row, col int) int {
	return geometry.BoxAt(g.W, g.H, row, col)
}
