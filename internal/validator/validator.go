package validator

import (
	"context"

	"svw.info/gridsolver/internal/domain"
)

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate scans all 27 units and reports the coordinate of every digit
// that repeats an earlier one within its unit. Empty cells never conflict;
// digits outside 1..9 are skipped rather than scanned.
func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	for _, unit := range allUnits() {
		var seen [domain.Size + 1]bool
		for _, cc := range unit {
			val := b.Values[cc.Row][cc.Col]
			if val == 0 || val > domain.Size {
				continue
			}
			if seen[val] {
				conf = append(conf, cc)
			}
			seen[val] = true
		}
	}
	return len(conf) == 0, conf, nil
}

// allUnits enumerates the coordinates of every row, column, and box.
func allUnits() [][]domain.CellCoord {
	units := make([][]domain.CellCoord, 0, 3*domain.Size)
	for r := 0; r < domain.Size; r++ {
		unit := make([]domain.CellCoord, domain.Size)
		for c := 0; c < domain.Size; c++ {
			unit[c] = domain.CellCoord{Row: r, Col: c}
		}
		units = append(units, unit)
	}
	for c := 0; c < domain.Size; c++ {
		unit := make([]domain.CellCoord, domain.Size)
		for r := 0; r < domain.Size; r++ {
			unit[r] = domain.CellCoord{Row: r, Col: c}
		}
		units = append(units, unit)
	}
	for br := 0; br < domain.Size; br += domain.BoxSize {
		for bc := 0; bc < domain.Size; bc += domain.BoxSize {
			unit := make([]domain.CellCoord, 0, domain.Size)
			for dr := 0; dr < domain.BoxSize; dr++ {
				for dc := 0; dc < domain.BoxSize; dc++ {
					unit = append(unit, domain.CellCoord{Row: br + dr, Col: bc + dc})
				}
			}
			units = append(units, unit)
		}
	}
	return units
}
