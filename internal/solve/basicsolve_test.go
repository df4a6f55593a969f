package solve

import (
	"testing"

	"sudokuengine/internal/sudokutest"
)

// S1 from spec.md: the classic puzzle with a unique solution.
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

func TestCalcCandidatesFilledCell(t *testing.T) {
	g, err := sudokutest.Parse9(s1Puzzle)
	if err != nil {
		t.Fatal(err)
	}
	c, err := CalcCandidates(g, 0, 2) // value 3
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := c.Only(); !ok || v != 3 {
		t.Errorf("CalcCandidates of filled cell = %v, want {3}", c)
	}
}

func TestInitCandidatesFilledOnly(t *testing.T) {
	g, _ := sudokutest.Parse9(s1Puzzle)
	if err := InitCandidates(g, true); err != nil {
		t.Fatal(err)
	}
	for _, cell := range g.Empty() {
		c, _ := g.GetCandidates(cell.Row, cell.Col)
		if !c.IsEmpty() {
			t.Fatalf("filled_only=true left candidates on empty cell %+v", cell)
		}
	}
	for _, cell := range g.Filled() {
		c, _ := g.GetCandidates(cell.Row, cell.Col)
		if c.Count() != 1 {
			t.Errorf("filled cell %+v candidates = %v, want singleton", cell, c)
		}
	}
}

func TestIsUniqueS1(t *testing.T) {
	g, _ := sudokutest.Parse9(s1Puzzle)
	if !IsUnique(g) {
		t.Error("IsUnique(S1) = false, want true")
	}
}

// S4 from spec.md: nearly-empty grid with only (2,4)=7 is not unique.
func TestIsUniqueS4NonUnique(t *testing.T) {
	g, _ := sudokutest.Parse9(
		"000000000" +
			"000000000" +
			"000070000" +
			"000000000" +
			"000000000" +
			"000000000" +
			"000000000" +
			"000000000" +
			"000000000")
	if IsUnique(g) {
		t.Error("IsUnique(nearly-empty grid) = true, want false")
	}
}

// S5 from spec.md: mutating a solvable puzzle's (0,0) to a duplicate
// value in its own row makes it non-unique and conflicting.
func TestIsUniqueS5Conflict(t *testing.T) {
	g, _ := sudokutest.Parse9(s1Puzzle)
	// row 0 is "003020600"; (0,4) already holds 2. Force a conflict by
	// setting (0,0) to 2 as well.
	if err := g.Set(0, 0, 2); err != nil {
		t.Fatal(err)
	}
	conflicts := FindConflicts(g)
	if len(conflicts) == 0 {
		t.Fatal("expected at least one conflict")
	}
	if IsUnique(g) {
		t.Error("IsUnique(conflicting grid) = true, want false")
	}
}

func TestIsSolved(t *testing.T) {
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
	if !IsSolved(solved) {
		t.Error("IsSolved(completed S1 solution) = false, want true")
	}

	g, _ := sudokutest.Parse9(s1Puzzle)
	if IsSolved(g) {
		t.Error("IsSolved(incomplete puzzle) = true, want false")
	}
}
