// Package backtrack implements spec §4.3's Backtracker: a recursive
// MRV (minimum-remaining-values) search yielding a lazy stream of
// completed, conflict-free grids, with candidate save/restore on
// every recursive step.
package backtrack

import (
	"sudokuengine/internal/grid"
	"sudokuengine/internal/solve"
)

// Stream is a resumable MRV search, realized — like the dlx package's
// Stream — as a goroutine driving the recursive search and a channel
// handing completed grids to the consumer one at a time.
type Stream struct {
	results chan *grid.Grid
	stop    chan struct{}
	closed  bool
}

// Bruteforce returns a lazy stream of conflict-free completions of g.
// If g already has a conflict among its filled cells, the stream
// yields nothing.
func Bruteforce(g *grid.Grid) *Stream {
	s := &Stream{
		results: make(chan *grid.Grid),
		stop:    make(chan struct{}),
	}

	if len(solve.FindConflicts(g)) != 0 {
		close(s.results)
		return s
	}

	work := g.Copy(true)
	solve.InitCandidates(work, false)

	go func() {
		defer close(s.results)
		s.search(work)
	}()

	return s
}

// Advance runs the search forward to the next solution, blocking
// until one is found or the search is exhausted.
func (s *Stream) Advance() (*grid.Grid, bool) {
	g, ok := <-s.results
	if !ok {
		return nil, false
	}
	return g, true
}

// Close abandons the stream, letting its goroutine exit even if not
// every solution was consumed.
func (s *Stream) Close() {
	if s.closed {
		return
	}
	s.closed = true
	close(s.stop)
	for range s.results {
	}
}

// search picks the empty cell with the fewest candidates (ties broken
// by row-major order), tries each candidate in ascending order, and
// recurses, saving and restoring the surrounding cells' candidate
// sets around each recursive call. It reports whether the caller
// should stop (the consumer closed the stream).
func (s *Stream) search(g *grid.Grid) bool {
	row, col, found := pickMRVCell(g)
	if !found {
		select {
		case s.results <- g.Copy(false):
			return false
		case <-s.stop:
			return true
		}
	}

	cands, _ := g.GetCandidates(row, col)
	for _, v := range cands.ToSlice() {
		g.Set(row, col, v)

		surrounding := g.SurroundingOf(row, col, false)
		saved := make([]grid.Candidates, len(surrounding))
		for i, s2 := range surrounding {
			saved[i], _ = g.GetCandidates(s2.Row, s2.Col)
			cur, _ := g.GetCandidates(s2.Row, s2.Col)
			g.SetCandidates(s2.Row, s2.Col, cur.Clear(v))
		}

		if stopped := s.search(g); stopped {
			return true
		}

		for i, s2 := range surrounding {
			g.SetCandidates(s2.Row, s2.Col, saved[i])
		}
		g.Set(row, col, 0)
	}
	return false
}

// pickMRVCell returns the empty cell with the fewest candidates, first
// encountered in row-major order among ties.
func pickMRVCell(g *grid.Grid) (int, int, bool) {
	best := -1
	bestRow, bestCol := 0, 0
	for _, cell := range g.Empty() {
		c, _ := g.GetCandidates(cell.Row, cell.Col)
		n := c.Count()
		if best == -1 || n < best {
			best = n
			bestRow, bestCol = cell.Row, cell.Col
		}
	}
	return bestRow, bestCol, best != -1
}
