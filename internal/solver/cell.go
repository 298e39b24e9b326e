package solver

import "svw.info/gridsolver/internal/domain"

// cell is one position in the search, a plain value with no reference back
// to the board: every operation that touches digits takes the grid
// explicitly and the search loop mediates all reads and writes.
type cell struct {
	row, col int
	fixed    bool
	value    uint8
	// candidates is computed once, from the grid state at construction
	// time, and never refreshed as neighbors change during the search.
	// Full iterative propagation would explore different branches.
	candidates []uint8
	next       int // index of the candidate currently assigned
}

// newCell builds the cell for (r, c). Givens are fixed outright. Open cells
// compute their candidate list from the current row, column, and box; if a
// single candidate remains the cell commits it to the grid immediately and
// becomes fixed.
func newCell(g *domain.Grid, r, c int) *cell {
	cl := &cell{row: r, col: c, value: g[r][c]}
	if cl.value > 0 {
		cl.fixed = true
		return cl
	}
	cl.candidates = g.Candidates(r, c)
	if len(cl.candidates) == 1 {
		cl.fixed = true
		cl.value = cl.candidates[0]
		g[r][c] = cl.value
	}
	return cl
}

// assign takes the candidate under the cursor and mirrors it into the grid.
// Fixed cells and cells with no candidates are left alone.
func (cl *cell) assign(g *domain.Grid) {
	if cl.fixed || len(cl.candidates) == 0 {
		return
	}
	cl.value = cl.candidates[cl.next]
	g[cl.row][cl.col] = cl.value
}

// reset undoes the cell's assignment: cursor back to the first candidate,
// value cleared here and on the grid.
func (cl *cell) reset(g *domain.Grid) {
	cl.next = 0
	cl.value = 0
	g[cl.row][cl.col] = 0
}

// valid reports whether the cell's row, column, and box each hold no
// duplicate nonzero digit.
func (cl *cell) valid(g *domain.Grid) bool {
	return unitOK(g.Row(cl.row)) && unitOK(g.Column(cl.col)) && unitOK(g.Box(cl.row, cl.col))
}

func unitOK(unit [domain.Size]uint8) bool {
	var seen [domain.Size + 1]bool
	for _, v := range unit {
		if v == 0 || v > domain.Size {
			continue
		}
		if seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// advanceWhileInvalid walks the cursor forward while the current assignment
// is invalid and candidates remain, reassigning each time. It exhausts the
// local candidate list only; the cell may still be invalid on return.
// Returns the number of reassignments made.
func (cl *cell) advanceWhileInvalid(g *domain.Grid) int {
	tried := 0
	for !cl.valid(g) && cl.next < len(cl.candidates)-1 {
		cl.next++
		cl.assign(g)
		tried++
	}
	return tried
}

// exhausted reports whether no further candidate remains to try.
func (cl *cell) exhausted() bool {
	return cl.next >= len(cl.candidates)-1
}

// accepted reports whether the search may move past this cell: fixed, or
// holding a nonzero value that keeps its units duplicate-free. An open cell
// with an empty candidate list can never be accepted.
func (cl *cell) accepted(g *domain.Grid) bool {
	if cl.fixed {
		return true
	}
	return cl.value != 0 && cl.valid(g)
}
