// Package pipeline implements spec §4.6: the fixed-priority driver
// that applies step finders repeatedly until closure, plus rating and
// scoring derived from the resulting step log.
package pipeline

import (
	"sudokuengine/internal/grid"
	"sudokuengine/internal/human"
	"sudokuengine/internal/solve"
)

// finder is one entry of the fixed priority list.
type finder struct {
	kind human.Kind
	find func(g *grid.Grid) []human.SolveStep
}

// priority is the ordered finder list of spec §4.6, fixed for every
// call: CalculateCandidates, singles, naked/hidden tuples 2..5,
// pointing tuples, basic fish, then Bruteforce as the final fallback.
var priority = []finder{
	{human.KindCalculateCandidates, human.FindCalculateCandidates},
	{human.KindNakedSingle, human.FindNakedSingle},
	{human.KindHiddenSingle, human.FindHiddenSingle},
	{human.KindNakedPair, human.FindNakedPair},
	{human.KindHiddenPair, human.FindHiddenPair},
	{human.KindNakedTriple, human.FindNakedTriple},
	{human.KindHiddenTriple, human.FindHiddenTriple},
	{human.KindNakedQuad, human.FindNakedQuad},
	{human.KindHiddenQuad, human.FindHiddenQuad},
	{human.KindNakedQuint, human.FindNakedQuint},
	{human.KindHiddenQuint, human.FindHiddenQuint},
	{human.KindPointingPair, human.FindPointingPair},
	{human.KindPointingTriple, human.FindPointingTriple},
	{human.KindXWing, human.FindXWing},
	{human.KindSwordfish, human.FindSwordfish},
	{human.KindJellyfish, human.FindJellyfish},
	{human.KindBruteforce, human.FindBruteforce},
}

// Ratings is the fixed rating table of spec §4.6.
var Ratings = map[human.Kind]int{
	human.KindCalculateCandidates: 0,
	human.KindNakedSingle:         1,
	human.KindHiddenSingle:        1,
	human.KindNakedPair:           2,
	human.KindHiddenPair:          2,
	human.KindNakedTriple:         2,
	human.KindHiddenTriple:        2,
	human.KindNakedQuad:           3,
	human.KindHiddenQuad:          3,
	human.KindNakedQuint:          3,
	human.KindHiddenQuint:         3,
	human.KindPointingPair:        4,
	human.KindPointingTriple:      4,
	human.KindXWing:               5,
	human.KindSwordfish:           6,
	human.KindJellyfish:           7,
	human.KindBruteforce:          10,
}

// Solve copies g, runs InitCandidates(filledOnly=true), then loops:
// for each finder in priority order, apply every step it yields to
// the working grid (invoking report, if supplied, before each
// application); if any step was applied, restart from the first
// finder, otherwise move to the next. Terminates when a full pass
// yields nothing. Returns the working copy and the full step log, in
// application order.
func Solve(g *grid.Grid, report func(human.SolveStep)) (*grid.Grid, []human.SolveStep, error) {
	work := g.Copy(true)
	if err := solve.InitCandidates(work, true); err != nil {
		return nil, nil, err
	}

	var log []human.SolveStep

	for {
		appliedAny := false
		for _, f := range priority {
			steps := f.find(work)
			if len(steps) == 0 {
				continue
			}
			for _, step := range steps {
				if report != nil {
					report(step)
				}
				if err := step.Apply(work); err != nil {
					return work, log, err
				}
				log = append(log, step)
			}
			appliedAny = true
			break
		}
		if !appliedAny {
			break
		}
	}

	return work, log, nil
}

// Rate runs Solve, collecting the step log, and returns the maximum
// rating among the steps applied, or 0 if the log is empty (the grid
// was already fully determined at entry).
func Rate(g *grid.Grid) (int, error) {
	_, log, err := Solve(g, nil)
	if err != nil {
		return 0, err
	}
	max := 0
	for _, step := range log {
		if r := Ratings[step.Kind]; r > max {
			max = r
		}
	}
	return max, nil
}

// Score runs Solve, collecting the step log, and returns the sum of
// ratings over every applied step.
func Score(g *grid.Grid) (int, error) {
	_, log, err := Solve(g, nil)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, step := range log {
		sum += Ratings[step.Kind]
	}
	return sum, nil
}
