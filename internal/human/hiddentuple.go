package human

import (
	"sudokuengine/internal/geometry"
	"sudokuengine/internal/grid"
)

var hiddenTupleKinds = map[int]Kind{
	2: KindHiddenPair,
	3: KindHiddenTriple,
	4: KindHiddenQuad,
	5: KindHiddenQuint,
}

// findHiddenTuple implements spec §4.5.5 for a fixed tuple size n: for
// every house, group cells by which digits they host. Pick n digits
// whose cell-sets are each of size in [2, n] and whose combined
// cell-set has size <= n: those cells form a hidden n-tuple. The
// action removes every non-member digit from the tuple's cells.
func findHiddenTuple(g *grid.Grid, n int) []SolveStep {
	kind := hiddenTupleKinds[n]
	var steps []SolveStep
	seenClues := make(map[string]bool)

	for _, house := range allHouses(g) {
		digitCells := make(map[int][]geometry.Coord, g.N)
		var eligibleDigits []int
		for v := 1; v <= g.N; v++ {
			var cells []geometry.Coord
			for _, cell := range house {
				c, _ := g.GetCandidates(cell.Row, cell.Col)
				if c.Has(v) {
					cells = append(cells, cell)
				}
			}
			if len(cells) >= 2 && len(cells) <= n {
				digitCells[v] = cells
				eligibleDigits = append(eligibleDigits, v)
			}
		}
		if len(eligibleDigits) < n {
			continue
		}

		for _, idxs := range combinations(len(eligibleDigits), n) {
			digits := make([]int, n)
			cellSet := make(map[geometry.Coord]bool)
			for i, idx := range idxs {
				digits[i] = eligibleDigits[idx]
				for _, cell := range digitCells[digits[i]] {
					cellSet[cell] = true
				}
			}
			if len(cellSet) > n {
				continue
			}

			var clues []geometry.Coord
			for cell := range cellSet {
				clues = append(clues, cell)
			}

			var affected []geometry.Coord
			var actions []Action
			keepMask := grid.NewCandidates(digits)
			for _, cell := range clues {
				cc, _ := g.GetCandidates(cell.Row, cell.Col)
				toRemove := cc.Subtract(keepMask)
				if toRemove.IsEmpty() {
					continue
				}
				affected = append(affected, cell)
				actions = append(actions, Action{Kind: RemoveCandidatesAction, Row: cell.Row, Col: cell.Col, Mask: toRemove})
			}
			if len(actions) == 0 {
				continue
			}

			step := finish(SolveStep{
				Kind:     kind,
				Clues:    clues,
				Affected: affected,
				Values:   digits,
				Actions:  actions,
			})
			key := cluesKey(step.Clues)
			if seenClues[key] {
				continue
			}
			seenClues[key] = true
			steps = append(steps, step)
		}
	}
	return steps
}

func FindHiddenPair(g *grid.Grid) []SolveStep   { return findHiddenTuple(g, 2) }
func FindHiddenTriple(g *grid.Grid) []SolveStep { return findHiddenTuple(g, 3) }
func FindHiddenQuad(g *grid.Grid) []SolveStep   { return findHiddenTuple(g, 4) }
func FindHiddenQuint(g *grid.Grid) []SolveStep  { return findHiddenTuple(g, 5) }
