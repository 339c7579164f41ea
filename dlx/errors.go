package dlx

import "errors"

// Sentinel errors for dlx operations. Tests and callers match them with
// errors.Is; they are never wrapped when returned directly.
var (
	// ErrEmptyMatrix indicates the input matrix has no rows or no columns.
	ErrEmptyMatrix = errors.New("dlx: matrix must have at least one row and one column")
	// ErrRaggedMatrix indicates rows of differing widths.
	ErrRaggedMatrix = errors.New("dlx: all rows must have the same width")
	// ErrEmptyRow indicates a row with no one-entries; such a row could
	// never participate in a cover and is rejected at build time.
	ErrEmptyRow = errors.New("dlx: row has no columns set")
	// ErrNameCount indicates the supplied column names do not match the width.
	ErrNameCount = errors.New("dlx: column name count must equal matrix width")
	// ErrColumnIndex indicates a column index outside [0, width).
	ErrColumnIndex = errors.New("dlx: column index out of range")
	// ErrDuplicateColumn indicates a row listing the same column twice.
	ErrDuplicateColumn = errors.New("dlx: duplicate column in row")
	// ErrSecondaryCount indicates WithSecondaryColumns(k) with k < 0 or
	// k >= width; at least one primary column must remain.
	ErrSecondaryCount = errors.New("dlx: secondary column count out of range")

	// ErrNetworkNil is returned when a nil *Network is passed to Solve.
	ErrNetworkNil = errors.New("dlx: network is nil")
	// ErrBadOption indicates a nonsensical solve option value.
	ErrBadOption = errors.New("dlx: invalid option value")

	// ErrStopSearch halts the search early when returned from an
	// OnSolution hook. Solve treats it as a clean stop, not a failure.
	ErrStopSearch = errors.New("dlx: stop search")
)
