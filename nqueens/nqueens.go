package nqueens

import (
	"errors"
	"strings"

	"github.com/katalvlaran/xcover/dlx"
)

// ErrBadSize indicates a board size below 1.
var ErrBadSize = errors.New("nqueens: board size must be >= 1")

// candidate is one queen placement: rank i, file j.
type candidate struct {
	i, j int
}

// organPipe returns 0..n-1 reordered center-out: mid, mid-1, mid+1, ...
// Placing the most contended ranks and files first in the column layout
// shrinks the search tree under first-seen tie-breaking.
func organPipe(n int) []int {
	mid := n / 2
	order := make([]int, 0, n)
	order = append(order, mid)
	for d := 1; d <= mid; d++ {
		if mid-d >= 0 {
			order = append(order, mid-d)
		}
		if mid+d < n {
			order = append(order, mid+d)
		}
	}

	return order
}

// reduce builds the exact cover network for size n: 2n primary columns
// (ranks and files, organ-pipe interleaved) and 2(2n-1) secondary columns
// (the two diagonal families), one row per candidate placement.
func reduce(n int) (*dlx.Network, []candidate, error) {
	order := organPipe(n)
	pos := make([]int, n) // pos[i] = organ-pipe position of rank/file i
	for p, i := range order {
		pos[i] = p
	}

	nDiag := 2*n - 1
	width := 2*n + 2*nDiag

	cands := make([]candidate, 0, n*n)
	rows := make([][]int, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cands = append(cands, candidate{i: i, j: j})
			rows = append(rows, []int{
				2 * pos[i],                    // rank i
				2*pos[j] + 1,                  // file j
				2*n + i + j,                   // up-right diagonal
				2*n + nDiag + (n - 1 - i + j), // down-right diagonal
			})
		}
	}

	net, err := dlx.NewNetworkFromSets(width, rows, dlx.WithSecondaryColumns(2*nDiag))
	if err != nil {
		return nil, nil, err
	}

	return net, cands, nil
}

// Count returns the number of distinct n-queens solutions.
func Count(n int) (int, error) {
	if n < 1 {
		return 0, ErrBadSize
	}
	net, _, err := reduce(n)
	if err != nil {
		return 0, err
	}

	res, err := dlx.Solve(net, dlx.WithCountOnly())
	if err != nil {
		return 0, err
	}

	return res.Count, nil
}

// Placements returns every solution for size n. Each placement p maps
// rank to file: p[i] is the file of the queen on rank i. An empty slice
// is the valid outcome for the solution-free sizes 2 and 3.
func Placements(n int) ([][]int, error) {
	if n < 1 {
		return nil, ErrBadSize
	}
	net, cands, err := reduce(n)
	if err != nil {
		return nil, err
	}

	res, err := dlx.Solve(net)
	if err != nil {
		return nil, err
	}

	placements := make([][]int, len(res.Solutions))
	for s, sol := range res.Solutions {
		p := make([]int, n)
		for _, row := range sol {
			cd := cands[row.Index]
			p[cd.i] = cd.j
		}
		placements[s] = p
	}

	return placements, nil
}

// Board renders a placement as an ASCII board, 'Q' for queens, '.' for
// empty squares, one rank per line.
func Board(p []int) string {
	var b strings.Builder
	for i, j := range p {
		for c := 0; c < len(p); c++ {
			if c == j {
				b.WriteByte('Q')
			} else {
				b.WriteByte('.')
			}
		}
		if i < len(p)-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
