package solver

import (
	"context"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"svw.info/gridsolver/internal/domain"
	"svw.info/gridsolver/internal/ports"
)

// SATSolver encodes the grid as a boolean satisfiability problem:
// one variable per (row, col, digit) triple, an at-least-one clause per
// cell, pairwise at-most-one clauses per digit within each row, column,
// and box, and a unit clause per given.
type SATSolver struct{}

func NewSATSolver() *SATSolver { return &SATSolver{} }

func satLit(row, col, num int) z.Lit {
	n := num + col*domain.Size + row*domain.Size*domain.Size
	return z.Var(n + 1).Pos()
}

func (s *SATSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	g := gini.New()

	// every cell holds at least one digit
	for row := 0; row < domain.Size; row++ {
		for col := 0; col < domain.Size; col++ {
			for n := 0; n < domain.Size; n++ {
				g.Add(satLit(row, col, n))
			}
			g.Add(0)
		}
	}

	// a digit appears at most once per row and per column
	for n := 0; n < domain.Size; n++ {
		for i := 0; i < domain.Size; i++ {
			for a := 0; a < domain.Size; a++ {
				for bb := a + 1; bb < domain.Size; bb++ {
					g.Add(satLit(i, a, n).Not())
					g.Add(satLit(i, bb, n).Not())
					g.Add(0)
					g.Add(satLit(a, i, n).Not())
					g.Add(satLit(bb, i, n).Not())
					g.Add(0)
				}
			}
		}
	}

	// a digit appears at most once per box
	for br := 0; br < domain.Size; br += domain.BoxSize {
		for bc := 0; bc < domain.Size; bc += domain.BoxSize {
			addBoxClauses(g, br, bc)
		}
	}

	// givens
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if v := b.Values[r][c]; v > 0 {
				g.Add(satLit(r, c, int(v)-1))
				g.Add(0)
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	if g.Solve() != 1 {
		return nil, ports.Stats{Duration: time.Since(start)}, ErrUnsolvable
	}

	var grid domain.Grid
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			for n := 0; n < domain.Size; n++ {
				if g.Value(satLit(r, c, n)) {
					grid[r][c] = uint8(n + 1)
					break
				}
			}
		}
	}
	out := &domain.Board{Values: grid, Fixed: b.Fixed}
	return out, ports.Stats{Duration: time.Since(start)}, nil
}

func addBoxClauses(g *gini.Gini, br, bc int) {
	offs := make([]domain.CellCoord, 0, domain.Size)
	for dr := 0; dr < domain.BoxSize; dr++ {
		for dc := 0; dc < domain.BoxSize; dc++ {
			offs = append(offs, domain.CellCoord{Row: br + dr, Col: bc + dc})
		}
	}
	for n := 0; n < domain.Size; n++ {
		for i, a := range offs {
			for _, bb := range offs[i+1:] {
				g.Add(satLit(a.Row, a.Col, n).Not())
				g.Add(satLit(bb.Row, bb.Col, n).Not())
				g.Add(0)
			}
		}
	}
}
