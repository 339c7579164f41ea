package dlx

// MinSize chooses the active column with the fewest live rows, breaking
// ties in favor of the first such column encountered on the header ring
// from the root. Branching on the smallest column minimizes the branching
// factor; a zero-size column is chosen immediately and kills the branch
// with zero iterations, which is the cheapest possible refutation.
//
// MinSize is the default heuristic. Complexity: O(active columns).
func MinSize(net *Network) int {
	best := -1
	bestSize := int(^uint(0) >> 1)
	net.ForEachActiveColumn(func(col, size int) bool {
		if size < bestSize {
			best = col
			bestSize = size
		}

		return true
	})

	return best
}

// FirstActive chooses the first column on the header ring regardless of
// size — Knuth's original "leftmost" rule. Useful when deterministic
// column order matters more than pruning.
func FirstActive(net *Network) int {
	first := -1
	net.ForEachActiveColumn(func(col, _ int) bool {
		first = col

		return false
	})

	return first
}
