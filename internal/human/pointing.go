package human

import (
	"sudokuengine/internal/geometry"
	"sudokuengine/internal/grid"
)

var pointingKinds = map[int]Kind{
	2: KindPointingPair,
	3: KindPointingTriple,
}

// findPointingTuple implements spec §4.5.6 for a fixed n in {2, 3}:
// box->line (all n occurrences of a digit in a box share a row or
// column: remove it from the rest of that line) and line->box (all n
// occurrences of a digit in a row/column share a box: remove it from
// the rest of that box).
func findPointingTuple(g *grid.Grid, n int) []SolveStep {
	kind := pointingKinds[n]
	var steps []SolveStep
	seen := make(map[string]bool)

	isClue := func(clues []geometry.Coord, cell geometry.Coord) bool {
		for _, clue := range clues {
			if clue == cell {
				return true
			}
		}
		return false
	}

	emit := func(clues []geometry.Coord, v int, targets []geometry.Coord) {
		var affected []geometry.Coord
		var actions []Action
		for _, cell := range targets {
			if isClue(clues, cell) {
				continue
			}
			cc, _ := g.GetCandidates(cell.Row, cell.Col)
			if !cc.Has(v) {
				continue
			}
			affected = append(affected, cell)
			actions = append(actions, Action{Kind: RemoveCandidatesAction, Row: cell.Row, Col: cell.Col, Mask: grid.NewCandidates([]int{v})})
		}
		if len(actions) == 0 {
			return
		}
		step := finish(SolveStep{
			Kind:     kind,
			Clues:    append([]geometry.Coord(nil), clues...),
			Affected: affected,
			Values:   []int{v},
			Actions:  actions,
		})
		key := cluesKey(step.Clues) + string(rune(v))
		if seen[key] {
			return
		}
		seen[key] = true
		steps = append(steps, step)
	}

	// box -> line
	for b := 0; b < g.N; b++ {
		box := geometry.TheBox(g.W, g.H, b)
		for v := 1; v <= g.N; v++ {
			var occ []geometry.Coord
			for _, cell := range box {
				cc, _ := g.GetCandidates(cell.Row, cell.Col)
				if cc.Has(v) {
					occ = append(occ, cell)
				}
			}
			if len(occ) != n {
				continue
			}
			sameRow, sameCol := true, true
			for _, c := range occ[1:] {
				if c.Row != occ[0].Row {
					sameRow = false
				}
				if c.Col != occ[0].Col {
					sameCol = false
				}
			}
			if sameRow {
				emit(occ, v, geometry.TheRow(g.N, occ[0].Row))
			}
			if sameCol {
				emit(occ, v, geometry.TheColumn(g.N, occ[0].Col))
			}
		}
	}

	// line -> box
	for r := 0; r < g.N; r++ {
		findLineToBox(g, geometry.TheRow(g.N, r), n, emit)
	}
	for c := 0; c < g.N; c++ {
		findLineToBox(g, geometry.TheColumn(g.N, c), n, emit)
	}

	return steps
}

func findLineToBox(g *grid.Grid, line []geometry.Coord, n int, emit func(clues []geometry.Coord, v int, targets []geometry.Coord)) {
	for v := 1; v <= g.N; v++ {
		var occ []geometry.Coord
		for _, cell := range line {
			cc, _ := g.GetCandidates(cell.Row, cell.Col)
			if cc.Has(v) {
				occ = append(occ, cell)
			}
		}
		if len(occ) != n {
			continue
		}
		box := g.BoxAt(occ[0].Row, occ[0].Col)
		sameBox := true
		for _, c := range occ[1:] {
			if g.BoxAt(c.Row, c.Col) != box {
				sameBox = false
				break
			}
		}
		if sameBox {
			emit(occ, v, geometry.TheBox(g.W, g.H, box))
		}
	}
}

func FindPointingPair(g *grid.Grid) []SolveStep   { return findPointingTuple(g, 2) }
func FindPointingTriple(g *grid.Grid) []SolveStep { return findPointingTuple(g, 3) }
