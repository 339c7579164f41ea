// Package nqueens counts and enumerates placements of n non-attacking
// queens on an n×n board by reduction to exact cover.
//
// What:
//
//   - Count(n): the number of distinct solutions.
//   - Placements(n): every solution as a column index per rank.
//   - Board(p): ASCII rendering of one placement.
//
// Why:
//
//	Each queen placement (rank i, file j) covers one rank column, one
//	file column, and its two diagonals. Ranks and files must be covered
//	exactly once (primary); diagonals at most once (secondary), which is
//	what the dlx secondary-column mechanism expresses directly.
//
// The 2n primary columns are laid out in organ-pipe order (center ranks
// and files first), which pairs the most contended constraints with the
// column-selection heuristic for a measurably smaller search tree.
//
// Complexity: the reduction is O(n²) rows of 4 entries; the search is
// exponential in n but practical well past n = 12.
//
// Errors: ErrBadSize for n < 1.
package nqueens
