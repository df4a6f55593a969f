// Package human implements the human-style step finders of spec §4.5:
// one finder per technique, each a pure function from a grid (with
// candidates already computed) to a slice of SolveStep values. No
// finder mutates the grid it is given.
package human

import (
	"sort"

	"sudokuengine/internal/geometry"
	"sudokuengine/internal/grid"
)

// ActionKind tags the one atomic mutation an Action performs.
type ActionKind int

const (
	SetNumber ActionKind = iota
	SetCandidatesAction
	RemoveCandidatesAction
)

// Action is a single atomic mutation of one cell.
type Action struct {
	Kind  ActionKind
	Row   int
	Col   int
	Digit int            // for SetNumber
	Mask  grid.Candidates // for SetCandidatesAction / RemoveCandidatesAction
}

// Apply performs the action against g.
func (a Action) Apply(g *grid.Grid) error {
	switch a.Kind {
	case SetNumber:
		return g.Set(a.Row, a.Col, a.Digit)
	case SetCandidatesAction:
		return g.SetCandidates(a.Row, a.Col, a.Mask)
	case RemoveCandidatesAction:
		return g.RemoveCandidates(a.Row, a.Col, a.Mask)
	}
	return nil
}

// Kind identifies which finder produced a SolveStep; the Pipeline's
// Ratings table is keyed on this.
type Kind string

const (
	KindCalculateCandidates Kind = "CalculateCandidates"
	KindNakedSingle         Kind = "NakedSingle"
	KindHiddenSingle        Kind = "HiddenSingle"
	KindNakedPair           Kind = "NakedPair"
	KindHiddenPair          Kind = "HiddenPair"
	KindNakedTriple         Kind = "NakedTriple"
	KindHiddenTriple        Kind = "HiddenTriple"
	KindNakedQuad           Kind = "NakedQuad"
	KindHiddenQuad          Kind = "HiddenQuad"
	KindNakedQuint          Kind = "NakedQuint"
	KindHiddenQuint         Kind = "HiddenQuint"
	KindPointingPair        Kind = "PointingPair"
	KindPointingTriple      Kind = "PointingTriple"
	KindXWing               Kind = "XWing"
	KindSwordfish           Kind = "Swordfish"
	KindJellyfish           Kind = "Jellyfish"
	KindBruteforce          Kind = "Bruteforce"
)

// SolveStep describes a single inference: the cells that justify it
// (Clues), the cells it changes or targets (Affected), the digits
// involved (Values), and the derived, ordered list of atomic
// mutations (Actions).
type SolveStep struct {
	Kind     Kind
	Clues    []geometry.Coord
	Affected []geometry.Coord
	Values   []int
	Actions  []Action
}

// Apply runs every action of the step against g, in order.
func (s SolveStep) Apply(g *grid.Grid) error {
	for _, a := range s.Actions {
		if err := a.Apply(g); err != nil {
			return err
		}
	}
	return nil
}

func sortCoords(cs []geometry.Coord) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Row != cs[j].Row {
			return cs[i].Row < cs[j].Row
		}
		return cs[i].Col < cs[j].Col
	})
}

func sortInts(vs []int) {
	sort.Ints(vs)
}

// finish sorts a step's Clues, Affected and Values per spec §4.5's
// determinism requirement (coordinates and digits are always sorted).
func finish(s SolveStep) SolveStep {
	sortCoords(s.Clues)
	sortCoords(s.Affected)
	sortInts(s.Values)
	return s
}

// Less implements the lexicographic (Clues, Affected, Values) order
// spec §3 defines for deterministic test output.
func Less(a, b SolveStep) bool {
	if c := compareCoordSlices(a.Clues, b.Clues); c != 0 {
		return c < 0
	}
	if c := compareCoordSlices(a.Affected, b.Affected); c != 0 {
		return c < 0
	}
	return compareIntSlices(a.Values, b.Values) < 0
}

func compareCoordSlices(a, b []geometry.Coord) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].Row != b[i].Row {
			return a[i].Row - b[i].Row
		}
		if a[i].Col != b[i].Col {
			return a[i].Col - b[i].Col
		}
	}
	return len(a) - len(b)
}

func compareIntSlices(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] - b[i]
		}
	}
	return len(a) - len(b)
}

// SortSteps orders steps per Less, for deterministic comparison in
// tests (spec §9 leaves hidden-tuple iteration order unspecified but
// expects sorted comparison).
func SortSteps(steps []SolveStep) {
	sort.Slice(steps, func(i, j int) bool { return Less(steps[i], steps[j]) })
}
