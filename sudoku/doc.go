// Package sudoku solves classic 9×9 sudoku by reduction to exact cover.
//
// What:
//
//   - Grid: a 9×9 board of digits 1..9, 0 marking an empty cell.
//   - Solve / Solutions / IsUnique: completion of a partial grid via the
//     dlx exact cover solver.
//   - Parse / Grid.String: plain-text round trip, '.' or '0' for blanks.
//
// Why:
//
//	Sudoku is the canonical exact cover reduction: 324 constraint columns
//	(81 cell-filled, 81 row-digit, 81 column-digit, 81 box-digit) and one
//	candidate row per possible (row, column, digit) placement. Givens
//	contribute a single candidate; blanks contribute nine.
//
// Complexity:
//
//   - Reduction: O(1) — at most 729 rows × 4 columns each.
//   - Search: negligible for well-posed puzzles; the minimum-size column
//     heuristic resolves forced placements without branching.
//
// Errors:
//
//   - ErrBadDigit: a cell outside 0..9.
//   - ErrBadPuzzle: malformed text input to Parse.
//   - ErrNoSolution: the givens admit no completion.
package sudoku
