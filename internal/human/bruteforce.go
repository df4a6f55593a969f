package human

import (
	"sudokuengine/internal/backtrack"
	"sudokuengine/internal/geometry"
	"sudokuengine/internal/grid"
)

// FindBruteforce implements spec §4.5.8: run the backtracker for one
// solution and, for each cell whose value differs from the input,
// yield a SetNumber step.
func FindBruteforce(g *grid.Grid) []SolveStep {
	stream := backtrack.Bruteforce(g)
	defer stream.Close()

	solved, ok := stream.Advance()
	if !ok {
		return nil
	}

	var steps []SolveStep
	for _, cell := range g.Diff(solved) {
		v, _ := solved.Get(cell.Row, cell.Col)
		steps = append(steps, finish(SolveStep{
			Kind:     KindBruteforce,
			Clues:    []geometry.Coord{cell},
			Affected: []geometry.Coord{cell},
			Values:   []int{v},
			Actions: []Action{
				{Kind: SetNumber, Row: cell.Row, Col: cell.Col, Digit: v},
			},
		}))
	}
	return steps
}
