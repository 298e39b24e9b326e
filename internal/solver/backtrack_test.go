package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/gridsolver/internal/domain"
	"svw.info/gridsolver/internal/validator"
)

// A classic, solvable Sudoku with 30 clues (0 = empty).
var sample = domain.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

// Its unique completion.
var sampleSolution = domain.Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func requireValidComplete(t *testing.T, b *domain.Board) {
	t.Helper()
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			require.NotZerof(t, b.Values[r][c], "unsolved cell at r=%d c=%d", r, c)
		}
	}
	ok, conf, err := validator.New().Validate(context.Background(), b)
	require.NoError(t, err)
	require.Truef(t, ok, "invalid solution, conflicts=%v", conf)
}

func TestSolveClassicPuzzle(t *testing.T) {
	s := NewBacktrackingSolver()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, st, err := s.Solve(ctx, &domain.Board{Values: sample})
	require.NoError(t, err)
	assert.Equal(t, sampleSolution, out.Values)
	assert.Positive(t, st.Nodes)
	t.Logf("solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestSolvePreservesGivens(t *testing.T) {
	s := NewBacktrackingSolver()
	out, _, err := s.Solve(context.Background(), &domain.Board{Values: sample})
	require.NoError(t, err)
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if sample[r][c] != 0 {
				assert.Equalf(t, sample[r][c], out.Values[r][c], "given mutated at r=%d c=%d", r, c)
			}
		}
	}
}

func TestSolveDoesNotMutateInput(t *testing.T) {
	in := &domain.Board{Values: sample}
	_, _, err := NewBacktrackingSolver().Solve(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, sample, in.Values)
}

func TestSolveAlreadySolvedGrid(t *testing.T) {
	s := NewBacktrackingSolver()
	out, st, err := s.Solve(context.Background(), &domain.Board{Values: sampleSolution})
	require.NoError(t, err)
	assert.Equal(t, sampleSolution, out.Values)
	// every cell is fixed; the scan runs straight through
	assert.Equal(t, 1, st.Nodes)
}

func TestSolveEmptyGrid(t *testing.T) {
	s := NewBacktrackingSolver()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	out, _, err := s.Solve(ctx, &domain.Board{})
	require.NoError(t, err)
	requireValidComplete(t, out)
}

func TestSolveUnsolvableDuplicateGivens(t *testing.T) {
	bad := sample
	bad[0][1] = 5 // second 5 in the first row

	s := NewBacktrackingSolver()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, _, err := s.Solve(ctx, &domain.Board{Values: bad})
	require.ErrorIs(t, err, ErrUnsolvable)
}

func TestSolveZeroCandidateCell(t *testing.T) {
	var bad domain.Grid
	// row 0 needs 9 at (0,8), but column 8 already holds it: the cell
	// starts with an empty candidate list and can never be accepted
	for c := 0; c < 8; c++ {
		bad[0][c] = uint8(c + 1)
	}
	bad[1][8] = 9

	_, _, err := NewBacktrackingSolver().Solve(context.Background(), &domain.Board{Values: bad})
	require.ErrorIs(t, err, ErrUnsolvable)
}

func TestSolveCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewBacktrackingSolver().Solve(ctx, &domain.Board{Values: sample})
	require.ErrorIs(t, err, context.Canceled)
}

// A cell's candidate cursor only ever moves forward; the sole way back is
// a reset to zero when its branch is abandoned. Stepping the search by hand
// and diffing cursors between steps pins that down.
func TestCandidateCursorMonotonicBetweenResets(t *testing.T) {
	grid := sample
	s := newSearch(&grid)
	prev := make([]int, len(s.cells))

	const maxSteps = 1 << 20
	steps := 0
	for s.state == inProgress && s.cursor < len(s.cells) {
		require.Less(t, steps, maxSteps, "search did not terminate")
		s.step()
		steps++
		for i, cl := range s.cells {
			if cl.next < prev[i] {
				require.Zerof(t, cl.next, "cell %d cursor went from %d to %d without a reset", i, prev[i], cl.next)
				require.Zerof(t, cl.value, "cell %d kept value %d through a reset", i, cl.value)
			}
			prev[i] = cl.next
		}
	}
	assert.Equal(t, len(s.cells), s.cursor)
	assert.Equal(t, sampleSolution, grid)
}

func TestSolveKeepsFixedMask(t *testing.T) {
	in := &domain.Board{Values: sample}
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			in.Fixed[r][c] = sample[r][c] != 0
		}
	}
	out, _, err := NewBacktrackingSolver().Solve(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, in.Fixed, out.Fixed)
}
