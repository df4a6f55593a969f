// Package solve implements spec §4.2's BasicSolve: candidate
// calculation and initialization, conflict detection, and the
// uniqueness test built on top of the exact-cover solver.
package solve

import (
	"sudokuengine/internal/dlx"
	"sudokuengine/internal/grid"
)

// CalcCandidates returns the candidate set for (row, col): if the
// cell is filled, the singleton {value}; otherwise {1..N} minus the
// values of its surrounding filled cells.
func CalcCandidates(g *grid.Grid, row, col int) (grid.Candidates, error) {
	v, err := g.Get(row, col)
	if err != nil {
		return 0, err
	}
	if v != 0 {
		return grid.NewCandidates([]int{v}), nil
	}

	c := grid.AllCandidates(g.N)
	for _, s := range g.SurroundingOf(row, col, false) {
		sv, err := g.Get(s.Row, s.Col)
		if err != nil {
			return 0, err
		}
		if sv != 0 {
			c = c.Clear(sv)
		}
	}
	return c, nil
}

// InitCandidates sets candidates for every cell via CalcCandidates. If
// filledOnly is true, only filled cells are touched (they get their
// singleton set; empty cells are left untouched).
func InitCandidates(g *grid.Grid, filledOnly bool) error {
	for _, cell := range g.AllCells() {
		v, err := g.Get(cell.Row, cell.Col)
		if err != nil {
			return err
		}
		if filledOnly && v == 0 {
			continue
		}
		c, err := CalcCandidates(g, cell.Row, cell.Col)
		if err != nil {
			return err
		}
		if err := g.SetCandidates(cell.Row, cell.Col, c); err != nil {
			return err
		}
	}
	return nil
}

// Conflict is one conflicting pair: two filled cells in the same
// house both holding Value.
type Conflict struct {
	A, B  struct{ Row, Col int }
	Value int
}

// FindConflicts yields a Conflict for every ordered pair of cells
// within surrounding_of (for the cells in coords, or the whole grid if
// coords is empty) that hold the same nonzero value. Per spec §9, this
// deliberately yields each conflict from both endpoints when scanning
// the whole grid — duplicates are not suppressed.
func FindConflicts(g *grid.Grid, coords ...struct{ Row, Col int }) []Conflict {
	cells := coords
	if len(cells) == 0 {
		for _, c := range g.AllCells() {
			cells = append(cells, struct{ Row, Col int }{c.Row, c.Col})
		}
	}

	var out []Conflict
	for _, cell := range cells {
		v, err := g.Get(cell.Row, cell.Col)
		if err != nil || v == 0 {
			continue
		}
		for _, s := range g.SurroundingOf(cell.Row, cell.Col, false) {
			sv, _ := g.Get(s.Row, s.Col)
			if sv == v {
				conf := Conflict{Value: v}
				conf.A.Row, conf.A.Col = cell.Row, cell.Col
				conf.B.Row, conf.B.Col = s.Row, s.Col
				out = append(out, conf)
			}
		}
	}
	return out
}

// IsSolved reports whether g has no empty cells and no conflicts.
func IsSolved(g *grid.Grid) bool {
	if len(g.Empty()) != 0 {
		return false
	}
	return len(FindConflicts(g)) == 0
}

// IsUnique consumes up to two solutions from the exact-cover solver
// and reports whether exactly one exists.
func IsUnique(g *grid.Grid) bool {
	stream := dlx.Solve(g)
	defer stream.Close()

	_, ok := stream.Advance()
	if !ok {
		return false
	}
	_, ok = stream.Advance()
	return !ok
}
