package human

import (
	"sudokuengine/internal/geometry"
	"sudokuengine/internal/grid"
)

var nakedTupleKinds = map[int]Kind{
	2: KindNakedPair,
	3: KindNakedTriple,
	4: KindNakedQuad,
	5: KindNakedQuint,
}

// findNakedTuple implements spec §4.5.4 for a fixed tuple size n: for
// every house, consider all size-n subsets of cells whose candidate
// counts lie in [2, n]; if the union of their candidates has size <= n,
// the subset is a naked n-tuple. The affected cells are the other
// cells of the house whose candidates intersect that union.
func findNakedTuple(g *grid.Grid, n int) []SolveStep {
	kind := nakedTupleKinds[n]
	var steps []SolveStep
	seenClues := make(map[string]bool)

	for _, house := range allHouses(g) {
		var eligible []geometry.Coord
		for _, cell := range house {
			c, _ := g.GetCandidates(cell.Row, cell.Col)
			cnt := c.Count()
			if cnt >= 2 && cnt <= n {
				eligible = append(eligible, cell)
			}
		}
		if len(eligible) < n {
			continue
		}

		for _, idxs := range combinations(len(eligible), n) {
			var union grid.Candidates
			subset := make([]geometry.Coord, n)
			for i, idx := range idxs {
				subset[i] = eligible[idx]
				c, _ := g.GetCandidates(subset[i].Row, subset[i].Col)
				union = union.Union(c)
			}
			if union.Count() > n {
				continue
			}

			var affected []geometry.Coord
			var actions []Action
			inSubset := make(map[geometry.Coord]bool, n)
			for _, s := range subset {
				inSubset[s] = true
			}
			for _, cell := range house {
				if inSubset[cell] {
					continue
				}
				cc, _ := g.GetCandidates(cell.Row, cell.Col)
				toRemove := cc.Intersect(union)
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
				Clues:    append([]geometry.Coord(nil), subset...),
				Affected: affected,
				Values:   union.ToSlice(),
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

func cluesKey(clues []geometry.Coord) string {
	b := make([]byte, 0, len(clues)*8)
	for _, c := range clues {
		b = append(b, byte(c.Row), byte(c.Row>>8), byte(c.Col), byte(c.Col>>8))
	}
	return string(b)
}

func FindNakedPair(g *grid.Grid) []SolveStep  { return findNakedTuple(g, 2) }
func FindNakedTriple(g *grid.Grid) []SolveStep { return findNakedTuple(g, 3) }
func FindNakedQuad(g *grid.Grid) []SolveStep  { return findNakedTuple(g, 4) }
func FindNakedQuint(g *grid.Grid) []SolveStep { return findNakedTuple(g, 5) }
