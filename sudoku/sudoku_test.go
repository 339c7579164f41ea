package sudoku_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xcover/sudoku"
)

// easyPuzzle is a well-posed puzzle with a unique completion.
const easyPuzzle = `53..7....
6..195...
.98....6.
8...6...3
4..8.3..1
7...2...6
.6....28.
...419..5
....8..79`

// easySolved is the unique completion of easyPuzzle.
const easySolved = `534678912
672195348
198342567
859761423
426853791
713924856
961537284
287419635
345286179`

// wellFormed checks the sudoku row/column/box constraints on a full grid.
func wellFormed(t *testing.T, g sudoku.Grid) {
	t.Helper()
	for i := 0; i < sudoku.Size; i++ {
		var row, col, box [sudoku.Size + 1]bool
		for j := 0; j < sudoku.Size; j++ {
			require.False(t, row[g[i][j]], "row %d repeats %d", i, g[i][j])
			row[g[i][j]] = true
			require.False(t, col[g[j][i]], "col %d repeats %d", i, g[j][i])
			col[g[j][i]] = true
			r := (i/sudoku.Box)*sudoku.Box + j/sudoku.Box
			c := (i%sudoku.Box)*sudoku.Box + j%sudoku.Box
			require.False(t, box[g[r][c]], "box %d repeats %d", i, g[r][c])
			box[g[r][c]] = true
		}
	}
}

// TestParse_RoundTrip verifies Parse and String are inverse on blanks and
// givens alike.
func TestParse_RoundTrip(t *testing.T) {
	g, err := sudoku.Parse(easyPuzzle)
	require.NoError(t, err)
	assert.Equal(t, 5, g[0][0])
	assert.Equal(t, 0, g[0][2])
	assert.Equal(t, easyPuzzle, g.String())
}

// TestParse_Errors verifies malformed text is rejected.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"TooFewLines", "123456789\n123456789"},
		{"ShortLine", easyPuzzle[:len(easyPuzzle)-1]},
		{"BadRune", "x3..7....\n6..195...\n.98....6.\n8...6...3\n4..8.3..1\n7...2...6\n.6....28.\n...419..5\n....8..79"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sudoku.Parse(tc.in)
			assert.ErrorIs(t, err, sudoku.ErrBadPuzzle)
		})
	}
}

// TestSolve_Easy solves a classic puzzle and checks the known completion.
func TestSolve_Easy(t *testing.T) {
	g, err := sudoku.Parse(easyPuzzle)
	require.NoError(t, err)

	solved, err := sudoku.Solve(g)
	require.NoError(t, err)
	wellFormed(t, solved)
	assert.Equal(t, easySolved, solved.String())

	// Givens survive into the completion.
	for r := 0; r < sudoku.Size; r++ {
		for c := 0; c < sudoku.Size; c++ {
			if g[r][c] != 0 {
				assert.Equal(t, g[r][c], solved[r][c], "given at %d,%d", r, c)
			}
		}
	}
}

// TestSolve_Empty completes the blank grid; any completion must satisfy
// all constraints.
func TestSolve_Empty(t *testing.T) {
	solved, err := sudoku.Solve(sudoku.Grid{})
	require.NoError(t, err)
	wellFormed(t, solved)
}

// TestSolve_NoSolution verifies contradictory givens surface ErrNoSolution.
func TestSolve_NoSolution(t *testing.T) {
	var g sudoku.Grid
	g[0][0] = 5
	g[0][1] = 5 // same digit twice in one row

	_, err := sudoku.Solve(g)
	assert.ErrorIs(t, err, sudoku.ErrNoSolution)
}

// TestSolve_BadDigit verifies out-of-range cells are rejected up front.
func TestSolve_BadDigit(t *testing.T) {
	var g sudoku.Grid
	g[4][4] = 10

	_, err := sudoku.Solve(g)
	assert.ErrorIs(t, err, sudoku.ErrBadDigit)
}

// TestIsUnique distinguishes well-posed, ambiguous, and unsolvable grids.
func TestIsUnique(t *testing.T) {
	g, err := sudoku.Parse(easyPuzzle)
	require.NoError(t, err)

	unique, err := sudoku.IsUnique(g)
	require.NoError(t, err)
	assert.True(t, unique, "classic puzzle must be well-posed")

	unique, err = sudoku.IsUnique(sudoku.Grid{})
	require.NoError(t, err)
	assert.False(t, unique, "blank grid has many completions")

	var bad sudoku.Grid
	bad[0][0], bad[0][1] = 7, 7
	_, err = sudoku.IsUnique(bad)
	assert.ErrorIs(t, err, sudoku.ErrNoSolution)
}

// TestSolutions_Limit verifies the cap on returned completions.
func TestSolutions_Limit(t *testing.T) {
	sols, err := sudoku.Solutions(sudoku.Grid{}, 3)
	require.NoError(t, err)
	assert.Len(t, sols, 3)
	for _, s := range sols {
		wellFormed(t, s)
	}
}
