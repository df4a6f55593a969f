// Package dlx implements Algorithm X over an exact-cover matrix using
// Knuth's dancing-links technique: an arena of nodes forming circular
// doubly-linked lists in both axes, with a per-column header carrying
// a live size count. The four sudoku constraint families (spec §4.4)
// are RC (cell filled exactly once), RN (row contains digit exactly
// once), CN (column contains digit exactly once) and BN (box contains
// digit exactly once).
package dlx

import "sudokuengine/internal/grid"

// node is one matrix entry, belonging to exactly one row (an
// (r, c, v) triple) and one column (a constraint). Column headers are
// nodes too, distinguished by header==true.
type node struct {
	left, right, up, down *node
	col                   *node // the column header this node belongs to
	size                  int   // live only on headers: nodes remaining in the column
	rowID                 int
	header                bool
}

// matrix is the rooted dancing-links structure for one solve call. It
// is built fresh per call and discarded with the Stream that owns it.
type matrix struct {
	root    *node
	columns []*node
	rowOf   map[int][4]*node
	rowTrip map[int][3]int
}

func newMatrix(numCols int) *matrix {
	root := &node{header: true}
	root.left, root.right = root, root
	m := &matrix{root: root, rowOf: make(map[int][4]*node), rowTrip: make(map[int][3]int)}
	m.columns = make([]*node, numCols)
	for i := 0; i < numCols; i++ {
		h := &node{header: true}
		h.up, h.down = h, h
		h.col = h
		h.left = root.left
		h.right = root
		root.left.right = h
		root.left = h
		m.columns[i] = h
	}
	return m
}

func (m *matrix) appendNode(colIdx, rowID int) *node {
	h := m.columns[colIdx]
	n := &node{col: h, rowID: rowID}
	n.up = h.up
	n.down = h
	h.up.down = n
	h.up = n
	h.size++
	return n
}

// cover removes a column from the header ring and removes every row
// that intersects it from all other columns it touches.
func (m *matrix) cover(h *node) {
	h.right.left = h.left
	h.left.right = h.right
	for i := h.down; i != h; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

// uncover reverses cover, in exactly the reverse order.
func (m *matrix) uncover(h *node) {
	for i := h.up; i != h; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	h.right.left = h
	h.left.right = h
}

// selectRow covers every column the row touches — spec §4.4's
// "select". deselectRow reverses it in reverse order — "deselect".
func (m *matrix) selectRow(rowID int) {
	nodes := m.rowOf[rowID]
	m.cover(nodes[0].col)
	for _, n := range nodes[1:] {
		m.cover(n.col)
	}
}

func (m *matrix) deselectRow(rowID int) {
	nodes := m.rowOf[rowID]
	for i := len(nodes) - 1; i >= 1; i-- {
		m.uncover(nodes[i].col)
	}
	m.uncover(nodes[0].col)
}

type layout struct {
	n                             int
	rcBase, rnBase, cnBase, bnBase int
	numCols                       int
}

func newLayout(n int) layout {
	l := layout{n: n}
	l.rnBase = l.rcBase + n*n
	l.cnBase = l.rnBase + n*n
	l.bnBase = l.cnBase + n*n
	l.numCols = l.bnBase + n*n
	return l
}

func (l layout) rc(r, c int) int { return l.rcBase + r*l.n + c }
func (l layout) rn(r, v int) int { return l.rnBase + r*l.n + (v - 1) }
func (l layout) cn(c, v int) int { return l.cnBase + c*l.n + (v - 1) }
func (l layout) bn(b, v int) int { return l.bnBase + b*l.n + (v - 1) }

func boxAt(w, h, row, col int) int {
	return col/w + (row - row%h)
}

func rowIDFor(n, r, c, v int) int {
	return (r*n+c)*n + (v - 1)
}

// build constructs the exact-cover matrix for an N*N grid of box
// width w and box height h, one row per (r, c, v) triple.
func build(w, h, n int) (*matrix, layout) {
	l := newLayout(n)
	m := newMatrix(l.numCols)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			b := boxAt(w, h, r, c)
			for v := 1; v <= n; v++ {
				rowID := rowIDFor(n, r, c, v)
				cols := [4]int{l.rc(r, c), l.rn(r, v), l.cn(c, v), l.bn(b, v)}
				var nodes [4]*node
				for i, colIdx := range cols {
					nodes[i] = m.appendNode(colIdx, rowID)
				}
				for i := 0; i < 4; i++ {
					nodes[i].left = nodes[(i+3)%4]
					nodes[i].right = nodes[(i+1)%4]
				}
				m.rowOf[rowID] = nodes
				m.rowTrip[rowID] = [3]int{r, c, v}
			}
		}
	}
	return m, l
}

// Stream is a resumable search over one exact-cover matrix, yielding
// one solution at a time from Advance. Internally it runs the
// recursive Algorithm X search on its own goroutine and hands
// solutions across a channel — Go's native idiom for a suspendable
// generator, standing in for the source's Python generator coroutines
// (spec §9's "lazy solution streams" note). A Stream must not be
// advanced concurrently and must not outlive the grid it was built
// from.
type Stream struct {
	w, h, n int
	results chan *grid.Grid
	stop    chan struct{}
	closed  bool
}

// Solve builds the exact-cover matrix for g's shape, selects a row for
// every pre-filled cell, and returns a Stream ready to advance. If a
// pre-filled cell conflicts with another (the exact-cover structure
// cannot select both), the stream yields no solutions — conflicts are
// not errors (spec §7).
func Solve(g *grid.Grid) *Stream {
	m, _ := build(g.W, g.H, g.N)

	s := &Stream{
		w: g.W, h: g.H, n: g.N,
		results: make(chan *grid.Grid),
		stop:    make(chan struct{}),
	}

	preselected := make([]int, 0, g.N*g.N)
	conflict := false
	for r := 0; r < g.N && !conflict; r++ {
		for c := 0; c < g.N; c++ {
			v, _ := g.Get(r, c)
			if v == 0 {
				continue
			}
			rowID := rowIDFor(g.N, r, c, v)
			if !columnsLive(m, rowID) {
				conflict = true
				break
			}
			m.selectRow(rowID)
			preselected = append(preselected, rowID)
		}
	}

	if conflict {
		close(s.results)
		return s
	}

	go func() {
		defer close(s.results)
		solution := append([]int(nil), preselected...)
		s.search(m, solution)
	}()

	return s
}

// columnsLive reports whether every column rowID touches is still
// linked into the header ring (i.e. not already removed by an earlier
// preselected row, which would indicate a conflicting input grid).
func columnsLive(m *matrix, rowID int) bool {
	for _, n := range m.rowOf[rowID] {
		if n.col.left.right != n.col {
			return false
		}
	}
	return true
}

// search is standard recursive Algorithm X: choose the column with
// fewest candidate rows, try each, recurse, backtrack. Each complete
// solution is sent on s.results; search blocks until the consumer
// calls Advance again or the stream is closed.
func (s *Stream) search(m *matrix, solution []int) bool {
	if m.root.right == m.root {
		select {
		case s.results <- s.materialize(m, solution):
			return false
		case <-s.stop:
			return true
		}
	}

	col := chooseColumn(m)
	if col.size == 0 {
		return false
	}

	m.cover(col)
	for r := col.down; r != col; r = r.down {
		solution = append(solution, r.rowID)
		for j := r.right; j != r; j = j.right {
			m.cover(j.col)
		}

		if stopped := s.search(m, solution); stopped {
			return true
		}

		for j := r.left; j != r; j = j.left {
			m.uncover(j.col)
		}
		solution = solution[:len(solution)-1]
	}
	m.uncover(col)
	return false
}

func chooseColumn(m *matrix) *node {
	best := m.root.right
	for h := best.right; h != m.root; h = h.right {
		if h.size < best.size {
			best = h
		}
	}
	return best
}

func (s *Stream) materialize(m *matrix, rowIDs []int) *grid.Grid {
	out, _ := grid.New(s.w, s.h)
	for _, id := range rowIDs {
		t := m.rowTrip[id]
		out.Set(t[0], t[1], t[2])
	}
	return out
}

// Advance runs the search forward to the next solution, blocking
// until one is found or the search is exhausted. It returns the
// completed grid and true, or nil and false once exhausted.
func (s *Stream) Advance() (*grid.Grid, bool) {
	g, ok := <-s.results
	if !ok {
		return nil, false
	}
	return g, true
}

// Close abandons the stream, allowing its search goroutine to exit
// even if not all solutions were consumed.
func (s *Stream) Close() {
	if s.closed {
		return
	}
	s.closed = true
	close(s.stop)
	// drain so the goroutine's blocked send (if any) unblocks via stop
	for range s.results {
	}
}
