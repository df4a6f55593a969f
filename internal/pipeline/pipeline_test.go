package pipeline

import (
	"testing"

	"sudokuengine/internal/human"
	"sudokuengine/internal/solve"
	"sudokuengine/internal/sudokutest"
)

const s1Puzzle = "" +
	"003020600" +
	"900305001" +
	"001806400" +
	"008102900" +
	"700000008" +
	"006708200" +
	"002609500" +
	"800203009" +
	"005010300"

func TestSolveS1ReachesCompletion(t *testing.T) {
	g, err := sudokutest.Parse9(s1Puzzle)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := sudokutest.Parse9(
		"483921657" +
			"967345821" +
			"251876493" +
			"548132976" +
			"729564138" +
			"136798245" +
			"372689514" +
			"814253769" +
			"695417382")

	work, log, err := Solve(g, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !solve.IsSolved(work) {
		t.Fatal("pipeline did not fully solve S1")
	}
	if !work.Equal(want) {
		t.Error("pipeline solution does not match the expected S1 solution")
	}
	if len(log) == 0 {
		t.Error("expected a non-empty step log for S1")
	}
}

// Testable property 5: rate(g) is always in [0, max(Ratings)].
func TestRateWithinBounds(t *testing.T) {
	maxRating := 0
	for _, r := range Ratings {
		if r > maxRating {
			maxRating = r
		}
	}

	g, _ := sudokutest.Parse9(s1Puzzle)
	r, err := Rate(g)
	if err != nil {
		t.Fatal(err)
	}
	if r < 0 || r > maxRating {
		t.Errorf("Rate(S1) = %d, want in [0, %d]", r, maxRating)
	}

	solved, _ := sudokutest.Parse9(
		"483921657" +
			"967345821" +
			"251876493" +
			"548132976" +
			"729564138" +
			"136798245" +
			"372689514" +
			"814253769" +
			"695417382")
	r, err = Rate(solved)
	if err != nil {
		t.Fatal(err)
	}
	if r != 0 {
		t.Errorf("Rate(already-solved grid) = %d, want 0", r)
	}
}

// Testable property 6: score(g) <= |empty(g)| * max(Ratings).
func TestScoreWithinBounds(t *testing.T) {
	maxRating := 0
	for _, r := range Ratings {
		if r > maxRating {
			maxRating = r
		}
	}

	g, _ := sudokutest.Parse9(s1Puzzle)
	empties := len(g.Empty())

	s, err := Score(g)
	if err != nil {
		t.Fatal(err)
	}
	if s < 0 || s > empties*maxRating {
		t.Errorf("Score(S1) = %d, want in [0, %d]", s, empties*maxRating)
	}
}

// Testable property 4: applying any step from the pipeline's log to a
// consistent grid never introduces a conflict and never clears a
// filled cell back to empty.
func TestPipelineStepsNeverBreakConsistency(t *testing.T) {
	g, _ := sudokutest.Parse9(s1Puzzle)
	work := g.Copy(true)
	solve.InitCandidates(work, true)

	var log []human.SolveStep
	_, log, err := Solve(g, func(step human.SolveStep) {
		before := work.Copy(false)
		if err := step.Apply(work); err != nil {
			t.Fatal(err)
		}
		for _, cell := range before.Filled() {
			v, _ := work.Get(cell.Row, cell.Col)
			if v == 0 {
				t.Errorf("step %v cleared filled cell %+v back to empty", step.Kind, cell)
			}
		}
		if conflicts := solve.FindConflicts(work); len(conflicts) > 0 {
			t.Errorf("step %v introduced a conflict: %+v", step.Kind, conflicts)
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(log) == 0 {
		t.Error("expected a non-empty step log")
	}
}
