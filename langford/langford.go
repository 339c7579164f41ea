package langford

import (
	"errors"

	"github.com/katalvlaran/xcover/dlx"
)

// ErrBadSize indicates a pairing size below 1.
var ErrBadSize = errors.New("langford: size must be >= 1")

// candidate places value k at positions j and j+k+1 of the sequence.
type candidate struct {
	k, j int
}

// candidates returns every feasible placement for size n.
func candidates(n int) []candidate {
	var cands []candidate
	for k := 1; k <= n; k++ {
		for j := 0; j+k+1 < 2*n; j++ {
			cands = append(cands, candidate{k: k, j: j})
		}
	}

	return cands
}

// reduce builds the exact cover network: columns 0..n-1 are "value k
// placed", columns n..3n-1 are the 2n sequence positions.
func reduce(n int, cands []candidate) (*dlx.Network, error) {
	rows := make([][]int, len(cands))
	for r, cd := range cands {
		rows[r] = []int{cd.k - 1, n + cd.j, n + cd.j + cd.k + 1}
	}

	return dlx.NewNetworkFromSets(3*n, rows)
}

// Pairings returns every Langford pairing of size n as sequences of
// length 2n. Mirror-image arrangements are both present. An empty slice
// is the valid outcome for sizes with no pairing.
func Pairings(n int) ([][]int, error) {
	if n < 1 {
		return nil, ErrBadSize
	}
	cands := candidates(n)
	if len(cands) == 0 {
		return nil, nil
	}

	net, err := reduce(n, cands)
	if err != nil {
		return nil, err
	}
	res, err := dlx.Solve(net)
	if err != nil {
		return nil, err
	}

	seqs := make([][]int, len(res.Solutions))
	for s, sol := range res.Solutions {
		seq := make([]int, 2*n)
		for _, row := range sol {
			cd := cands[row.Index]
			seq[cd.j] = cd.k
			seq[cd.j+cd.k+1] = cd.k
		}
		seqs[s] = seq
	}

	return seqs, nil
}

// Count returns the number of pairings of size n up to reversal: every
// arrangement is discovered together with its mirror image, so the raw
// solution count is halved.
func Count(n int) (int, error) {
	if n < 1 {
		return 0, ErrBadSize
	}
	cands := candidates(n)
	if len(cands) == 0 {
		return 0, nil
	}

	net, err := reduce(n, cands)
	if err != nil {
		return 0, err
	}
	res, err := dlx.Solve(net, dlx.WithCountOnly())
	if err != nil {
		return 0, err
	}

	return res.Count / 2, nil
}
