package human

import (
	"testing"

	"sudokuengine/internal/solve"
	"sudokuengine/internal/sudokutest"
)

// Every pointing-tuple step must have n clues and name exactly one
// digit, its clues must all actually hold that candidate, and its
// affected cells must lie outside the clue set.
func TestFindPointingTupleInvariants(t *testing.T) {
	g, _ := sudokutest.Parse9(s1Puzzle)
	solve.InitCandidates(g, false)

	for n := 2; n <= 3; n++ {
		for _, step := range findPointingTuple(g, n) {
			if len(step.Clues) != n {
				t.Errorf("pointing n=%d: clue count = %d, want %d", n, len(step.Clues), n)
			}
			if len(step.Values) != 1 {
				t.Errorf("pointing n=%d: value count = %d, want 1", n, len(step.Values))
			}
			v := step.Values[0]
			for _, c := range step.Clues {
				cc, _ := g.GetCandidates(c.Row, c.Col)
				if !cc.Has(v) {
					t.Errorf("pointing n=%d clue %+v lacks candidate %d", n, c, v)
				}
			}
			clueSet := make(map[[2]int]bool)
			for _, c := range step.Clues {
				clueSet[[2]int{c.Row, c.Col}] = true
			}
			for _, a := range step.Affected {
				if clueSet[[2]int{a.Row, a.Col}] {
					t.Errorf("pointing n=%d affected cell %+v is one of its own clues", n, a)
				}
			}
		}
	}
}
