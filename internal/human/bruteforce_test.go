package human

import (
	"testing"

	"sudokuengine/internal/sudokutest"
)

func TestFindBruteforceFillsEveryEmptyCell(t *testing.T) {
	g, err := sudokutest.Parse9(s1Puzzle)
	if err != nil {
		t.Fatal(err)
	}
	empties := g.Empty()

	steps := FindBruteforce(g)
	if len(steps) != len(empties) {
		t.Errorf("bruteforce produced %d steps, want %d (one per empty cell)", len(steps), len(empties))
	}
	for _, step := range steps {
		if step.Kind != KindBruteforce {
			t.Errorf("wrong kind: %v", step.Kind)
		}
		if len(step.Actions) != 1 || step.Actions[0].Kind != SetNumber {
			t.Errorf("bruteforce step should be a single SetNumber action, got %+v", step.Actions)
		}
	}

	work := g.Copy(true)
	for _, step := range steps {
		if err := step.Apply(work); err != nil {
			t.Fatal(err)
		}
	}
	for _, cell := range work.AllCells() {
		if v, _ := work.Get(cell.Row, cell.Col); v == 0 {
			t.Errorf("cell %+v still empty after applying all bruteforce steps", cell)
		}
	}
}
