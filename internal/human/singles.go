package human

import (
	"sudokuengine/internal/geometry"
	"sudokuengine/internal/grid"
	"sudokuengine/internal/solve"
)

// FindCalculateCandidates implements spec §4.5.1: one step per cell
// whose candidate set is empty, setting it to CalcCandidates' result.
func FindCalculateCandidates(g *grid.Grid) []SolveStep {
	var steps []SolveStep
	for _, cell := range g.AllCells() {
		cur, _ := g.GetCandidates(cell.Row, cell.Col)
		if !cur.IsEmpty() {
			continue
		}
		c, err := solve.CalcCandidates(g, cell.Row, cell.Col)
		if err != nil || c.IsEmpty() {
			continue
		}
		steps = append(steps, finish(SolveStep{
			Kind:     KindCalculateCandidates,
			Clues:    []geometry.Coord{cell},
			Affected: []geometry.Coord{cell},
			Values:   c.ToSlice(),
			Actions: []Action{
				{Kind: SetCandidatesAction, Row: cell.Row, Col: cell.Col, Mask: c},
			},
		}))
	}
	return steps
}

// FindNakedSingle implements spec §4.5.2: for each empty cell whose
// candidate set has size 1, set the number and strip that digit from
// every surrounding cell's candidates.
func FindNakedSingle(g *grid.Grid) []SolveStep {
	var steps []SolveStep
	for _, cell := range g.Empty() {
		c, _ := g.GetCandidates(cell.Row, cell.Col)
		v, ok := c.Only()
		if !ok {
			continue
		}
		steps = append(steps, buildSingleStep(g, KindNakedSingle, cell, v))
	}
	return steps
}

// FindHiddenSingle implements spec §4.5.3: for each empty cell and
// each house function, compute {1..N} minus the union of candidates
// of the other cells of that house; each surviving digit is a hidden
// single. After one house yields for a cell, the remaining house
// functions are skipped for that cell.
func FindHiddenSingle(g *grid.Grid) []SolveStep {
	var steps []SolveStep
	emitted := make(map[geometry.Coord]bool)

	houseFns := []func(row, col int, include bool) []geometry.Coord{
		g.ColOf, g.RowOf, g.BoxOf,
	}

	for _, cell := range g.Empty() {
		if emitted[cell] {
			continue
		}
		for _, fn := range houseFns {
			remaining := grid.AllCandidates(g.N)
			for _, other := range fn(cell.Row, cell.Col, false) {
				oc, _ := g.GetCandidates(other.Row, other.Col)
				remaining = remaining.Subtract(oc)
			}

			found := false
			for _, v := range remaining.ToSlice() {
				if emitted[cell] {
					break
				}
				emitted[cell] = true
				steps = append(steps, buildSingleStep(g, KindHiddenSingle, cell, v))
				found = true
			}
			if found {
				break
			}
		}
	}
	return steps
}

// buildSingleStep builds the SetNumber step shared by NakedSingle and
// HiddenSingle: set the number, set the candidates to the singleton,
// and remove v from every surrounding cell that still carries it.
func buildSingleStep(g *grid.Grid, kind Kind, cell geometry.Coord, v int) SolveStep {
	actions := []Action{
		{Kind: SetNumber, Row: cell.Row, Col: cell.Col, Digit: v},
		{Kind: SetCandidatesAction, Row: cell.Row, Col: cell.Col, Mask: grid.NewCandidates([]int{v})},
	}
	affected := []geometry.Coord{cell}
	for _, s := range g.SurroundingOf(cell.Row, cell.Col, false) {
		sc, _ := g.GetCandidates(s.Row, s.Col)
		if sc.Has(v) {
			actions = append(actions, Action{Kind: RemoveCandidatesAction, Row: s.Row, Col: s.Col, Mask: grid.NewCandidates([]int{v})})
			affected = append(affected, s)
		}
	}
	return finish(SolveStep{
		Kind:     kind,
		Clues:    []geometry.Coord{cell},
		Affected: affected,
		Values:   []int{v},
		Actions:  actions,
	})
}
