package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/gridsolver/internal/domain"
)

func TestNewCellGivenIsFixed(t *testing.T) {
	g := sample
	cl := newCell(&g, 0, 0)
	assert.True(t, cl.fixed)
	assert.Equal(t, uint8(5), cl.value)
	assert.Empty(t, cl.candidates)
}

func TestNewCellSingleCandidateCommits(t *testing.T) {
	// leave exactly one blank in an otherwise solved grid
	g := sampleSolution
	g[4][4] = 0

	cl := newCell(&g, 4, 4)
	assert.True(t, cl.fixed)
	assert.Equal(t, uint8(5), cl.value)
	assert.Equal(t, uint8(5), g[4][4], "single candidate must be written back")
}

func TestNewCellZeroCandidatesStaysOpen(t *testing.T) {
	var g domain.Grid
	for c := 0; c < 8; c++ {
		g[0][c] = uint8(c + 1)
	}
	g[1][8] = 9 // blocks the last remaining digit for (0, 8)

	cl := newCell(&g, 0, 8)
	assert.False(t, cl.fixed)
	assert.Empty(t, cl.candidates)

	cl.assign(&g)
	assert.Zero(t, cl.value)
	assert.Zero(t, g[0][8])
	assert.False(t, cl.accepted(&g))
	assert.True(t, cl.exhausted())
}

func TestCellCandidatesAreOneShot(t *testing.T) {
	g := sample
	cl := newCell(&g, 0, 2)
	before := append([]uint8(nil), cl.candidates...)

	// neighboring writes after construction must not refresh the list
	g[0][3] = 6
	assert.Equal(t, before, cl.candidates)
}

func TestCellAdvanceWhileInvalid(t *testing.T) {
	var g domain.Grid
	g[0][0] = 1 // rules out 1 for (0, 1) via the row
	g[5][1] = 3 // rules out 3 via the column

	cl := newCell(&g, 0, 1)
	require.False(t, cl.fixed)
	// candidates exclude 1 (row) and 3 (column): 2,4,5,6,7,8,9
	assert.Equal(t, []uint8{2, 4, 5, 6, 7, 8, 9}, cl.candidates)

	cl.assign(&g)
	assert.Equal(t, uint8(2), cl.value)

	// force a conflict with the current assignment and let the cell walk past it
	g[0][5] = 2
	tried := cl.advanceWhileInvalid(&g)
	assert.Equal(t, 1, tried)
	assert.Equal(t, uint8(4), cl.value)
	assert.True(t, cl.valid(&g))
}

func TestCellResetClearsGrid(t *testing.T) {
	g := sample
	cl := newCell(&g, 0, 2)
	require.False(t, cl.fixed)
	cl.assign(&g)
	require.NotZero(t, g[0][2])

	cl.reset(&g)
	assert.Zero(t, cl.value)
	assert.Zero(t, cl.next)
	assert.Zero(t, g[0][2])
}
