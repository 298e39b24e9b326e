package domain

import (
	"fmt"
	"strings"
)

// Grid dimensions. BoxSize is the square root of Size; the box accessor
// below only relies on that relationship.
const (
	Size    = 9
	BoxSize = 3
)

// Grid is the raw 9x9 board: digits 1..9, 0 for an empty cell.
// It performs no validation on writes; callers own consistency.
type Grid [Size][Size]uint8

// Row returns a copy of row r.
func (g *Grid) Row(r int) [Size]uint8 {
	return g[r]
}

// Column returns a copy of column c.
func (g *Grid) Column(c int) [Size]uint8 {
	var out [Size]uint8
	for r := 0; r < Size; r++ {
		out[r] = g[r][c]
	}
	return out
}

// Box returns the 3x3 box containing (r, c), flattened row-major.
// The box corner is (r/BoxSize)*BoxSize, (c/BoxSize)*BoxSize.
func (g *Grid) Box(r, c int) [Size]uint8 {
	br, bc := (r/BoxSize)*BoxSize, (c/BoxSize)*BoxSize
	var out [Size]uint8
	i := 0
	for dr := 0; dr < BoxSize; dr++ {
		for dc := 0; dc < BoxSize; dc++ {
			out[i] = g[br+dr][bc+dc]
			i++
		}
	}
	return out
}

// Candidates returns the digits 1..9 not ruled out for (r, c) by its row,
// column, or box, in ascending order. The cell's own current value is not
// special-cased; callers ask about empty cells.
func (g *Grid) Candidates(r, c int) []uint8 {
	var seen [Size + 1]bool
	mark := func(v uint8) {
		if v <= Size {
			seen[v] = true
		}
	}
	for i := 0; i < Size; i++ {
		mark(g[r][i])
		mark(g[i][c])
	}
	br, bc := (r/BoxSize)*BoxSize, (c/BoxSize)*BoxSize
	for dr := 0; dr < BoxSize; dr++ {
		for dc := 0; dc < BoxSize; dc++ {
			mark(g[br+dr][bc+dc])
		}
	}
	out := make([]uint8, 0, Size)
	for v := uint8(1); v <= Size; v++ {
		if !seen[v] {
			out = append(out, v)
		}
	}
	return out
}

// CheckDigits reports the first cell holding a digit outside 0..9.
// A Grid arriving from JSON can carry any uint8 value, so boundaries
// check before scanning units.
func (g *Grid) CheckDigits() error {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] > Size {
				return fmt.Errorf("invalid digit %d at row %d col %d", g[r][c], r, c)
			}
		}
	}
	return nil
}

// Parse reads 81 puzzle runes ('1'..'9', with '0' or '.' for blanks);
// whitespace is ignored so both one-line and 9-line layouts work.
func Parse(s string) (Grid, error) {
	var g Grid
	i := 0
	for _, r := range s {
		switch {
		case r == ' ' || r == '\n' || r == '\r' || r == '\t' || r == '|':
			continue
		case r == '.' || r == '0':
			// blank
		case r >= '1' && r <= '9':
			if i < Size*Size {
				g[i/Size][i%Size] = uint8(r - '0')
			}
		default:
			return Grid{}, fmt.Errorf("invalid puzzle rune %q at cell %d", r, i)
		}
		i++
	}
	if i != Size*Size {
		return Grid{}, fmt.Errorf("puzzle has %d cells, want %d", i, Size*Size)
	}
	return g, nil
}

// String renders the grid as 9 lines of space-separated digits,
// '.' for empty cells.
func (g Grid) String() string {
	var b strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			if g[r][c] == 0 {
				b.WriteByte('.')
			} else {
				b.WriteByte('0' + g[r][c])
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
