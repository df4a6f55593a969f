// Package generator implements the external generator driver contract
// of spec.md §6: fill a complete grid, then dig cells out of it while
// using the core's is_unique to keep the result uniquely solvable,
// subject to a symmetry relation. Grounded on the teacher's
// internal/sudoku/dp/solver.go (GenerateFullGrid, CarveGivens,
// CarveGivensWithSubset, the hand-rolled LCG rng) generalized from
// hardcoded 9×9 to arbitrary W×H, and on
// original_source/sudokutools/generate.py's symmetry-pair approach.
package generator

import (
	"fmt"

	"sudokuengine/internal/geometry"
	"sudokuengine/internal/grid"
	"sudokuengine/internal/solve"
	"sudokuengine/internal/sudokuerr"
)

// Symmetry selects which cell, if any, is removed alongside a given
// one during digging. It is external to the core per spec.md §6 — the
// core only needs to accept whatever coordinates is_unique is run
// against.
type Symmetry int

const (
	SymmetryNone Symmetry = iota
	SymmetryRotate90
	SymmetryRotate180
	SymmetryMirrorX
	SymmetryMirrorY
	SymmetryMirrorXY
)

// rng is the teacher's deterministic LCG, kept so that a given seed
// reproduces the same full grid and digging order across runs; no
// pack repo imports a third-party PRNG and math/rand would not give
// the teacher's reproducible-seed guarantee.
type rng struct {
	state int64
}

func newRNG(seed int64) *rng {
	return &rng{state: seed}
}

func (r *rng) next() int {
	r.state = (r.state*1103515245 + 12345) & 0x7fffffff
	return int(r.state)
}

func (r *rng) shuffle(arr []int) {
	for i := len(arr) - 1; i > 0; i-- {
		j := r.next() % (i + 1)
		arr[i], arr[j] = arr[j], arr[i]
	}
}

// FullGrid generates a complete, conflict-free W×H grid using the
// given seed, by backtracking with a per-cell randomized digit order.
func FullGrid(w, h int, seed int64) (*grid.Grid, error) {
	g, err := grid.New(w, h)
	if err != nil {
		return nil, err
	}
	r := newRNG(seed)
	if !fillGrid(g, r) {
		return nil, fmt.Errorf("%w: no complete grid found for W=%d H=%d", sudokuerr.ErrGenerationFailed, w, h)
	}
	return g, nil
}

func fillGrid(g *grid.Grid, r *rng) bool {
	row, col, ok := firstEmpty(g)
	if !ok {
		return true
	}

	digits := make([]int, g.N)
	for i := range digits {
		digits[i] = i + 1
	}
	r.shuffle(digits)

	for _, d := range digits {
		if !conflictsAt(g, row, col, d) {
			g.Set(row, col, d)
			if fillGrid(g, r) {
				return true
			}
			g.Set(row, col, 0)
		}
	}
	return false
}

func firstEmpty(g *grid.Grid) (row, col int, ok bool) {
	for r := 0; r < g.N; r++ {
		for c := 0; c < g.N; c++ {
			if v, _ := g.Get(r, c); v == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

func conflictsAt(g *grid.Grid, row, col, digit int) bool {
	for _, cell := range g.SurroundingOf(row, col, false) {
		if v, _ := g.Get(cell.Row, cell.Col); v == digit {
			return true
		}
	}
	return false
}

// pair returns the coordinate symmetric to (row,col) under sym, or
// ok=false when sym is SymmetryNone or the pair is the cell itself.
func pair(sym Symmetry, n, row, col int) (pr, pc int, ok bool) {
	last := n - 1
	switch sym {
	case SymmetryRotate90:
		pr, pc = col, last-row
	case SymmetryRotate180:
		pr, pc = last-row, last-col
	case SymmetryMirrorX:
		pr, pc = last-row, col
	case SymmetryMirrorY:
		pr, pc = row, last-col
	case SymmetryMirrorXY:
		pr, pc = last-row, last-col
	default:
		return 0, 0, false
	}
	if pr == row && pc == col {
		return 0, 0, false
	}
	return pr, pc, true
}

// Dig removes cells from a complete grid full, in an order determined
// by seed, stopping once targetGivens clues remain or no further cell
// (or symmetric pair of cells) can be removed without breaking
// uniqueness. Mirrors the teacher's CarveGivens, generalized to W×H
// and extended with the symmetry relation spec.md §6 names.
func Dig(full *grid.Grid, targetGivens int, seed int64, sym Symmetry) (*grid.Grid, error) {
	if targetGivens < 0 || targetGivens > full.N*full.N {
		return nil, fmt.Errorf("%w: target givens %d out of range for N=%d", sudokuerr.ErrInvalidCount, targetGivens, full.N)
	}

	puzzle := full.Copy(false)
	r := newRNG(seed + 1)

	positions := make([]int, 0, full.N*full.N)
	for _, cell := range full.AllCells() {
		positions = append(positions, cell.Row*full.N+cell.Col)
	}
	r.shuffle(positions)

	given := full.N * full.N
	for _, pos := range positions {
		if given <= targetGivens {
			break
		}
		row, col := pos/full.N, pos%full.N
		if v, _ := puzzle.Get(row, col); v == 0 {
			continue
		}

		removed := removeWithPair(puzzle, row, col, sym)
		if solve.IsUnique(puzzle) {
			given -= len(removed)
			continue
		}
		for _, c := range removed {
			puzzle.Set(c.Row, c.Col, c.value)
		}
	}

	return puzzle, nil
}

type restoreCell struct {
	geometry.Coord
	value int
}

// removeWithPair clears (row,col) and, if sym pairs it with a
// different cell, that cell too, returning what was cleared so the
// caller can restore it if the removal breaks uniqueness.
func removeWithPair(g *grid.Grid, row, col int, sym Symmetry) []restoreCell {
	var removed []restoreCell

	v, _ := g.Get(row, col)
	if v != 0 {
		removed = append(removed, restoreCell{geometry.Coord{Row: row, Col: col}, v})
		g.Set(row, col, 0)
	}

	if pr, pc, ok := pair(sym, g.N, row, col); ok {
		if pv, _ := g.Get(pr, pc); pv != 0 {
			removed = append(removed, restoreCell{geometry.Coord{Row: pr, Col: pc}, pv})
			g.Set(pr, pc, 0)
		}
	}

	return removed
}
