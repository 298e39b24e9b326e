package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/gridsolver/internal/domain"
	"svw.info/gridsolver/internal/ports"
)

// ErrUnsolvable reports that the search exhausted every branch without
// completing the grid.
var ErrUnsolvable = errors.New("puzzle is unsolvable")

// BacktrackingSolver runs a chronological depth-first search over the open
// cells in row-major order, trying each cell's candidates in ascending
// order. Candidates come from a single constraint pass at init; there is no
// cell or value ordering heuristic.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	sr := newSearch(&grid)
	err := sr.run(ctx)
	st := ports.Stats{Nodes: sr.nodes, Duration: time.Since(start)}
	if err != nil {
		return nil, st, err
	}
	out := &domain.Board{Values: grid, Fixed: b.Fixed}
	return out, st, nil
}

type searchState int

const (
	inProgress searchState = iota
	stateSolved
	stateUnsolvable
)

// search is the cursor machine over the row-major cell sequence. Cells
// before the cursor are fixed or hold a currently-valid assignment; the
// cursor moves past a cell only once its value is accepted.
type search struct {
	grid   *domain.Grid
	cells  []*cell
	cursor int
	state  searchState
	nodes  int
}

// newSearch creates every cell in row-major order. Construction order
// matters: a cell fixed by single-candidate propagation is visible to the
// candidate computation of every later cell.
func newSearch(g *domain.Grid) *search {
	s := &search{grid: g, cells: make([]*cell, 0, domain.Size*domain.Size)}
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			s.cells = append(s.cells, newCell(g, r, c))
		}
	}
	return s
}

func (s *search) run(ctx context.Context) error {
	for s.state == inProgress && s.cursor < len(s.cells) {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.step()
	}
	if s.state == stateUnsolvable {
		return ErrUnsolvable
	}
	s.state = stateSolved
	return nil
}

// step is one loop iteration: land on the next open cell, assign its
// current candidate, let the cell walk its own candidates past local
// conflicts, then either accept the branch or backtrack.
func (s *search) step() {
	s.advance()
	cl := s.cells[s.cursor]
	cl.assign(s.grid)
	s.nodes++
	s.nodes += cl.advanceWhileInvalid(s.grid)
	if cl.accepted(s.grid) {
		s.cursor++
	} else {
		s.rewind()
	}
}

// advance skips fixed cells. It stops at the last index even when that cell
// is fixed; step accepts fixed cells, so the run loop still terminates.
func (s *search) advance() {
	for s.cursor < len(s.cells)-1 && s.cells[s.cursor].fixed {
		s.cursor++
	}
}

// rewind resets exhausted cells and retreats until a cell with candidates
// left is found, then bumps its cursor to the next option. Running out of
// earlier open cells means every branch was tried.
func (s *search) rewind() {
	cl := s.cells[s.cursor]
	for cl.exhausted() {
		cl.reset(s.grid)
		if !s.retreat() {
			s.state = stateUnsolvable
			return
		}
		cl = s.cells[s.cursor]
	}
	cl.next++
}

// retreat moves the cursor to the previous open cell, reporting false when
// none exists instead of underflowing.
func (s *search) retreat() bool {
	j := s.cursor - 1
	for j >= 0 && s.cells[j].fixed {
		j--
	}
	if j < 0 {
		return false
	}
	s.cursor = j
	return true
}
