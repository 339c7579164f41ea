// Package dlx solves the exact cover problem with Donald Knuth's
// dancing links technique (Algorithm X / DLX).
//
// What:
//
//   - Network: a toroidal doubly-linked representation of a sparse 0/1
//     matrix — column headers on a circular ring anchored by a root
//     sentinel, matrix entries on circular per-row and per-column lists.
//   - Solve: recursive backtracking search that repeatedly covers the
//     column with the fewest live rows, tries every row that satisfies it,
//     and uncovers in exact reverse order on backtrack.
//   - Secondary columns: optional "at most once" constraints kept out of
//     the header ring, so they constrain row compatibility without ever
//     being branched on.
//
// Why:
//
//   - Exact cover is the common kernel behind sudoku, n-queens, Langford
//     pairings, polyomino tiling, and many scheduling puzzles.
//   - Cover/uncover are O(1) per link splice, and the undo needs no log:
//     a spliced-out node keeps its own links, so re-splicing in reverse
//     LIFO order restores the structure exactly.
//
// Complexity:
//
//   - Build: O(W + E) time and memory for W columns and E one-entries.
//   - Cover/Uncover: O(r·c) for the rows removed by that column.
//   - Solve: exponential in the worst case; the minimum-size column
//     heuristic keeps the branching factor near its practical minimum.
//
// Options:
//
//   - WithColumnNames(names)      label columns for solution reporting.
//   - WithSecondaryColumns(k)     treat the last k columns as secondary.
//   - WithContext(ctx)            allow cancellation via context.Context.
//   - WithOnSolution(fn)          visitor invoked once per solution found;
//     returning ErrStopSearch halts the search without error.
//   - WithMaxSolutions(k)         stop after k solutions.
//   - WithCountOnly()             count solutions without retaining them.
//   - WithHeuristic(h)            plug a custom column-selection strategy.
//
// Errors:
//
//   - ErrEmptyMatrix, ErrRaggedMatrix, ErrEmptyRow, ErrNameCount,
//     ErrColumnIndex, ErrDuplicateColumn, ErrSecondaryCount at build time.
//   - ErrNetworkNil, ErrBadOption at solve time.
//   - context.Canceled / context.DeadlineExceeded if the context is done.
//
// A search that finds no solution is not an error: Solve returns an empty
// result. The Network is restored to its freshly built state whenever
// Solve returns, on every exit path.
package dlx
