package human

import (
	"sudokuengine/internal/geometry"
	"sudokuengine/internal/grid"
)

var fishKinds = map[int]Kind{
	2: KindXWing,
	3: KindSwordfish,
	4: KindJellyfish,
}

// findBasicFish implements spec §4.5.7 for a fixed rank n (X-Wing=2,
// Swordfish=3, Jellyfish=4), over both orientations (rows-as-base and
// columns-as-base).
func findBasicFish(g *grid.Grid, n int) []SolveStep {
	kind := fishKinds[n]
	var steps []SolveStep
	seen := make(map[string]bool)

	for v := 1; v <= g.N; v++ {
		steps = append(steps, findFishOrientation(g, kind, v, n, true, seen)...)
		steps = append(steps, findFishOrientation(g, kind, v, n, false, seen)...)
	}
	return steps
}

// findFishOrientation runs the base/cover scan for one digit v and one
// orientation. rowsAsBase=true scans rows as base lines (columns as
// the cross axis); false scans columns as base (rows as cross).
func findFishOrientation(g *grid.Grid, kind Kind, v, n int, rowsAsBase bool, seen map[string]bool) []SolveStep {
	var baseLines []int
	lineCells := make(map[int][]geometry.Coord)

	for i := 0; i < g.N; i++ {
		var line []geometry.Coord
		if rowsAsBase {
			line = geometry.TheRow(g.N, i)
		} else {
			line = geometry.TheColumn(g.N, i)
		}
		var cells []geometry.Coord
		for _, cell := range line {
			cc, _ := g.GetCandidates(cell.Row, cell.Col)
			if cc.Has(v) {
				cells = append(cells, cell)
			}
		}
		if len(cells) >= 2 && len(cells) <= n {
			baseLines = append(baseLines, i)
			lineCells[i] = cells
		}
	}
	if len(baseLines) < n {
		return nil
	}

	var steps []SolveStep
	for _, idxs := range combinations(len(baseLines), n) {
		bSet := make(map[geometry.Coord]bool)
		var clues []geometry.Coord
		crossCounts := make(map[int]int)
		for _, idx := range idxs {
			base := baseLines[idx]
			for _, cell := range lineCells[base] {
				if !bSet[cell] {
					bSet[cell] = true
					clues = append(clues, cell)
				}
				cross := cell.Col
				if !rowsAsBase {
					cross = cell.Row
				}
				crossCounts[cross]++
			}
		}
		if len(crossCounts) > n {
			continue
		}
		allAtLeastTwo := true
		for _, cnt := range crossCounts {
			if cnt < 2 {
				allAtLeastTwo = false
				break
			}
		}
		if !allAtLeastTwo {
			continue
		}

		var affected []geometry.Coord
		var actions []Action
		for cross := range crossCounts {
			var coverLine []geometry.Coord
			if rowsAsBase {
				coverLine = geometry.TheColumn(g.N, cross)
			} else {
				coverLine = geometry.TheRow(g.N, cross)
			}
			for _, cell := range coverLine {
				if bSet[cell] {
					continue
				}
				cc, _ := g.GetCandidates(cell.Row, cell.Col)
				if !cc.Has(v) {
					continue
				}
				affected = append(affected, cell)
				actions = append(actions, Action{Kind: RemoveCandidatesAction, Row: cell.Row, Col: cell.Col, Mask: grid.NewCandidates([]int{v})})
			}
		}
		if len(actions) == 0 {
			continue
		}

		step := finish(SolveStep{
			Kind:     kind,
			Clues:    clues,
			Affected: affected,
			Values:   []int{v},
			Actions:  actions,
		})
		key := cluesKey(step.Clues) + string(rune(v))
		if seen[key] {
			continue
		}
		seen[key] = true
		steps = append(steps, step)
	}
	return steps
}

func FindXWing(g *grid.Grid) []SolveStep    { return findBasicFish(g, 2) }
func FindSwordfish(g *grid.Grid) []SolveStep { return findBasicFish(g, 3) }
func FindJellyfish(g *grid.Grid) []SolveStep { return findBasicFish(g, 4) }
