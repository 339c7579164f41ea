// Package dlx types and functional options for network construction and
// the exact cover search.
package dlx

import "context"

// Row is one selected row of a solution: its position in the build input
// and the names of the columns it covers, in original left-to-right order.
type Row struct {
	// Index is the 0-based position of the row in the input matrix.
	Index int
	// Columns lists the names of the columns the row covers.
	Columns []string
}

// Solution is one complete exact cover: a set of rows whose columns
// together cover every primary column exactly once. Row order within a
// Solution is search-discovery order and carries no meaning.
type Solution []Row

// Result holds the outcome of a Solve run.
type Result struct {
	// Solutions contains every solution found, unless WithCountOnly.
	Solutions []Solution
	// Count is the number of solutions found, including discarded ones.
	Count int
	// Decisions counts row choices explored across the whole search tree.
	Decisions int
	// MaxDepth is the deepest recursion level reached.
	MaxDepth int
}

// Heuristic selects the column to branch on next. It receives the live
// network and must return the 0-based index of a currently active primary
// column; it is only consulted while at least one such column remains.
type Heuristic func(net *Network) int

// BuildOption configures network construction.
// Use with NewNetwork / NewNetworkFromSets.
type BuildOption func(*BuildOptions)

// BuildOptions holds configurable parameters for network construction.
type BuildOptions struct {
	// Names labels columns for solution reporting. Optional; when empty,
	// names default to the positional index ("0", "1", ...). When set,
	// its length must equal the matrix width.
	Names []string

	// Secondary marks the last Secondary columns as "at most once"
	// constraints: they join no header ring, are never branched on, and
	// need not be covered for a solution. Default 0 (all primary).
	Secondary int
}

// DefaultBuildOptions returns BuildOptions with positional names and no
// secondary columns.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		Names:     nil,
		Secondary: 0,
	}
}

// WithColumnNames labels the columns. len(names) must equal the width.
func WithColumnNames(names []string) BuildOption {
	return func(o *BuildOptions) { o.Names = names }
}

// WithSecondaryColumns treats the last k columns as secondary constraints.
func WithSecondaryColumns(k int) BuildOption {
	return func(o *BuildOptions) { o.Secondary = k }
}

// Option configures optional behavior of the search.
// Use with Solve(net, opts...).
type Option func(*Options)

// Options holds configurable parameters for Solve.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the search; the network is still
	// restored before Solve returns.
	Ctx context.Context

	// OnSolution, if non-nil, is invoked synchronously for each solution
	// as it is found. Returning ErrStopSearch stops the search cleanly;
	// any other error aborts Solve with that error.
	OnSolution func(Solution) error

	// MaxSolutions, if positive, stops the search after that many
	// solutions. Default 0 (exhaust the search space).
	MaxSolutions int

	// CountOnly, if true, skips materializing solutions; only
	// Result.Count and the diagnostics are maintained.
	CountOnly bool

	// Choose selects the branching column. Defaults to MinSize.
	Choose Heuristic
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No solution hook
//   - No solution limit (MaxSolutions = 0)
//   - Solutions collected into Result.Solutions
//   - MinSize column heuristic
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		OnSolution:   nil,
		MaxSolutions: 0,
		CountOnly:    false,
		Choose:       MinSize,
	}
}

// WithContext sets the context used to cancel the search.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithOnSolution registers a visitor invoked once per solution found.
func WithOnSolution(fn func(Solution) error) Option {
	return func(o *Options) { o.OnSolution = fn }
}

// WithMaxSolutions stops the search after k solutions (k > 0).
func WithMaxSolutions(k int) Option {
	return func(o *Options) { o.MaxSolutions = k }
}

// WithCountOnly counts solutions without retaining them.
func WithCountOnly() Option {
	return func(o *Options) { o.CountOnly = true }
}

// WithHeuristic plugs a custom column-selection strategy.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) { o.Choose = h }
}
