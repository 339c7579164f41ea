package sudoku

import (
	"errors"
	"strings"

	"github.com/katalvlaran/xcover/dlx"
)

// Size is the board edge length; Box the sub-square edge length.
const (
	Size = 9
	Box  = 3

	nCells = Size * Size // 81
	nCols  = 4 * nCells  // 324: cell, row-digit, col-digit, box-digit

	colCell   = 0
	colRowNum = nCells
	colColNum = 2 * nCells
	colBoxNum = 3 * nCells
)

// Sentinel errors for sudoku operations.
var (
	// ErrBadDigit indicates a cell value outside 0..9.
	ErrBadDigit = errors.New("sudoku: cell value must be 0..9")
	// ErrBadPuzzle indicates text input that is not 9 lines of 9 cells.
	ErrBadPuzzle = errors.New("sudoku: puzzle must be 9 lines of 9 cells")
	// ErrNoSolution indicates the givens admit no completed grid.
	ErrNoSolution = errors.New("sudoku: no solution")
)

// Grid is a sudoku board. Zero means an empty cell.
type Grid [Size][Size]int

// candidate is one (row, column, digit) placement; the reduction keeps a
// slice of these parallel to the exact cover matrix rows for decoding.
type candidate struct {
	r, c, v int // v in 1..9
}

// columns returns the four constraint columns a candidate covers.
func (cd candidate) columns() []int {
	box := (cd.r/Box)*Box + cd.c/Box

	return []int{
		colCell + cd.r*Size + cd.c,
		colRowNum + cd.r*Size + cd.v - 1,
		colColNum + cd.c*Size + cd.v - 1,
		colBoxNum + box*Size + cd.v - 1,
	}
}

// reduce converts g into an exact cover network plus the candidate list
// used to decode solutions. Givens contribute one candidate, blanks nine.
func reduce(g Grid) (*dlx.Network, []candidate, error) {
	cands := make([]candidate, 0, nCells*Size)
	rows := make([][]int, 0, nCells*Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch v := g[r][c]; {
			case v < 0 || v > Size:
				return nil, nil, ErrBadDigit
			case v > 0:
				cd := candidate{r: r, c: c, v: v}
				cands = append(cands, cd)
				rows = append(rows, cd.columns())
			default:
				for v := 1; v <= Size; v++ {
					cd := candidate{r: r, c: c, v: v}
					cands = append(cands, cd)
					rows = append(rows, cd.columns())
				}
			}
		}
	}

	net, err := dlx.NewNetworkFromSets(nCols, rows)
	if err != nil {
		return nil, nil, err
	}

	return net, cands, nil
}

// decode maps an exact cover solution back onto a completed grid.
func decode(sol dlx.Solution, cands []candidate) Grid {
	var g Grid
	for _, row := range sol {
		cd := cands[row.Index]
		g[cd.r][cd.c] = cd.v
	}

	return g
}

// Solve returns a completion of g, or ErrNoSolution. When the puzzle has
// several completions the first one discovered is returned; use IsUnique
// to check well-posedness.
func Solve(g Grid) (Grid, error) {
	sols, err := Solutions(g, 1)
	if err != nil {
		return Grid{}, err
	}
	if len(sols) == 0 {
		return Grid{}, ErrNoSolution
	}

	return sols[0], nil
}

// Solutions returns up to max completions of g (max <= 0 means all).
// An empty slice is a valid outcome for an unsolvable puzzle.
func Solutions(g Grid, max int) ([]Grid, error) {
	net, cands, err := reduce(g)
	if err != nil {
		return nil, err
	}

	opts := []dlx.Option{}
	if max > 0 {
		opts = append(opts, dlx.WithMaxSolutions(max))
	}
	res, err := dlx.Solve(net, opts...)
	if err != nil {
		return nil, err
	}

	grids := make([]Grid, len(res.Solutions))
	for i, sol := range res.Solutions {
		grids[i] = decode(sol, cands)
	}

	return grids, nil
}

// IsUnique reports whether g has exactly one completion.
// Returns ErrNoSolution when it has none.
func IsUnique(g Grid) (bool, error) {
	net, _, err := reduce(g)
	if err != nil {
		return false, err
	}

	res, err := dlx.Solve(net, dlx.WithCountOnly(), dlx.WithMaxSolutions(2))
	if err != nil {
		return false, err
	}
	if res.Count == 0 {
		return false, ErrNoSolution
	}

	return res.Count == 1, nil
}

// Parse reads a grid from 9 newline-separated lines of 9 cells each,
// where digits 1..9 are givens and '0' or '.' mark blanks.
func Parse(s string) (Grid, error) {
	var g Grid
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) != Size {
		return Grid{}, ErrBadPuzzle
	}
	for r, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) != Size {
			return Grid{}, ErrBadPuzzle
		}
		for c := 0; c < Size; c++ {
			switch ch := line[c]; {
			case ch == '.' || ch == '0':
				g[r][c] = 0
			case ch >= '1' && ch <= '9':
				g[r][c] = int(ch - '0')
			default:
				return Grid{}, ErrBadPuzzle
			}
		}
	}

	return g, nil
}

// String renders the grid as 9 lines of 9 characters, '.' for blanks.
func (g Grid) String() string {
	var b strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] == 0 {
				b.WriteByte('.')
			} else {
				b.WriteByte(byte('0' + g[r][c]))
			}
		}
		if r < Size-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
