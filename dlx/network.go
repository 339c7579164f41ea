// Package dlx network construction and the cover/uncover splice mechanics.
//
// The toroidal structure lives in a single arena of nodes addressed by
// stable integer indices: left/right/up/down/col are arena indices, never
// pointers. Index 0 is the root sentinel, indices 1..W the column headers,
// and every matrix one-entry occupies one arena slot after that. Splices
// rewrite only up/down on entry nodes and left/right on headers, which is
// what makes every cover reversible by its mirror uncover.
package dlx

import "strconv"

// node is one arena slot: the root, a column header, or a matrix entry.
type node struct {
	left, right int // circular row list (entries) or header ring (headers)
	up, down    int // circular column list
	col         int // arena index of the owning header; headers point to themselves
}

// Network is the dancing links structure over which the search operates.
// It is built once, mutated destructively-but-reversibly during Solve, and
// is not safe for concurrent use.
type Network struct {
	nodes   []node
	sizes   []int    // sizes[h] = live rows in the column at arena index h
	names   []string // names[col] for the 0-based public column index
	rowOf   []int    // rowOf[i] = input row of arena node i; -1 for headers
	rowHead []int    // rowHead[r] = arena index of row r's leftmost node
	width   int
	primary int // columns 0..primary-1 are on the header ring
}

// NewNetwork builds a Network from a dense boolean matrix. Every row must
// have the same width, the width must be positive, and every row must set
// at least one column.
//
// Returns ErrEmptyMatrix, ErrRaggedMatrix, ErrEmptyRow, ErrNameCount or
// ErrSecondaryCount on malformed input.
// Complexity: O(R×W) time, O(W + E) memory for E one-entries.
func NewNetwork(rows [][]bool, opts ...BuildOption) (*Network, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMatrix
	}
	width := len(rows[0])

	// Convert to sparse column-index form, validating rectangularity.
	sets := make([][]int, len(rows))
	for r, row := range rows {
		if len(row) != width {
			return nil, ErrRaggedMatrix
		}
		var set []int
		for c, v := range row {
			if v {
				set = append(set, c)
			}
		}
		sets[r] = set
	}

	return build(width, sets, gatherBuildOptions(opts))
}

// NewNetworkFromSets builds a Network from rows given as sets of 0-based
// column indices — the natural form for puzzle reductions. Each row's
// indices must be unique and within [0, width); rows are canonicalized to
// ascending column order.
//
// Returns ErrEmptyMatrix, ErrEmptyRow, ErrColumnIndex, ErrDuplicateColumn,
// ErrNameCount or ErrSecondaryCount on malformed input.
// Complexity: O(E log E) time, O(W + E) memory.
func NewNetworkFromSets(width int, rows [][]int, opts ...BuildOption) (*Network, error) {
	if width <= 0 || len(rows) == 0 {
		return nil, ErrEmptyMatrix
	}

	// Canonicalize each row: copy, insertion-sort ascending, reject
	// out-of-range and duplicate columns.
	sets := make([][]int, len(rows))
	for r, row := range rows {
		set := make([]int, len(row))
		copy(set, row)
		for i := 1; i < len(set); i++ {
			for j := i; j > 0 && set[j] < set[j-1]; j-- {
				set[j], set[j-1] = set[j-1], set[j]
			}
		}
		for i, c := range set {
			if c < 0 || c >= width {
				return nil, ErrColumnIndex
			}
			if i > 0 && c == set[i-1] {
				return nil, ErrDuplicateColumn
			}
		}
		sets[r] = set
	}

	return build(width, sets, gatherBuildOptions(opts))
}

// gatherBuildOptions folds functional options over the defaults.
func gatherBuildOptions(opts []BuildOption) BuildOptions {
	o := DefaultBuildOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// build assembles the arena from validated-shape sparse rows.
// Each set must already be ascending, unique, and within [0, width).
func build(width int, sets [][]int, o BuildOptions) (*Network, error) {
	// 1. Validate options against the final width.
	if o.Secondary < 0 || o.Secondary >= width {
		return nil, ErrSecondaryCount
	}
	if o.Names != nil && len(o.Names) != width {
		return nil, ErrNameCount
	}

	// 2. Name the columns: caller labels or positional defaults.
	names := o.Names
	if names == nil {
		names = make([]string, width)
		for c := range names {
			names[c] = strconv.Itoa(c)
		}
	}

	// 3. Count entries so the arena is allocated exactly once.
	entries := 0
	for _, set := range sets {
		if len(set) == 0 {
			return nil, ErrEmptyRow
		}
		entries += len(set)
	}

	n := &Network{
		nodes:   make([]node, width+1, width+1+entries),
		sizes:   make([]int, width+1),
		names:   names,
		rowOf:   make([]int, width+1, width+1+entries),
		rowHead: make([]int, len(sets)),
		width:   width,
		primary: width - o.Secondary,
	}

	// 4. Root sentinel and column headers. Primary headers join the ring
	// in column order; secondary headers stay self-linked.
	n.nodes[0] = node{left: 0, right: 0, up: 0, down: 0, col: 0}
	n.rowOf[0] = -1
	prev := 0
	for h := 1; h <= width; h++ {
		n.nodes[h] = node{left: h, right: h, up: h, down: h, col: h}
		n.rowOf[h] = -1
		if h <= n.primary {
			n.nodes[h].left = prev
			n.nodes[h].right = 0
			n.nodes[prev].right = h
			n.nodes[0].left = h
			prev = h
		}
	}

	// 5. One arena node per one-entry: append to the bottom of its column
	// and to the end of its row's circular list.
	for r, set := range sets {
		first := -1
		for _, c := range set {
			h := c + 1
			i := len(n.nodes)
			n.nodes = append(n.nodes, node{col: h})
			n.rowOf = append(n.rowOf, r)
			nd := &n.nodes[i]

			// Vertical: insert above the header, i.e. at the column bottom.
			nd.down = h
			nd.up = n.nodes[h].up
			n.nodes[n.nodes[h].up].down = i
			n.nodes[h].up = i
			n.sizes[h]++

			// Horizontal: sole node, or insert before first = row end.
			if first < 0 {
				first = i
				nd.left = i
				nd.right = i
				n.rowHead[r] = i
			} else {
				nd.left = n.nodes[first].left
				nd.right = first
				n.nodes[nd.left].right = i
				n.nodes[first].left = i
			}
		}
	}

	return n, nil
}

// Width returns the number of columns, primary and secondary.
func (n *Network) Width() int { return n.width }

// Rows returns the number of input rows.
func (n *Network) Rows() int { return len(n.rowHead) }

// Primary returns the number of primary columns.
func (n *Network) Primary() int { return n.primary }

// ColumnName returns the label of the 0-based column col.
func (n *Network) ColumnName(col int) (string, error) {
	if col < 0 || col >= n.width {
		return "", ErrColumnIndex
	}

	return n.names[col], nil
}

// ColumnSize returns the count of rows currently linked into column col.
func (n *Network) ColumnSize(col int) (int, error) {
	if col < 0 || col >= n.width {
		return 0, ErrColumnIndex
	}

	return n.sizes[col+1], nil
}

// ForEachActiveColumn visits every uncovered primary column in header-ring
// order from the root, calling fn with the 0-based column index and its
// live row count. Return false from fn to stop early.
func (n *Network) ForEachActiveColumn(fn func(col, size int) bool) {
	for h := n.nodes[0].right; h != 0; h = n.nodes[h].right {
		if !fn(h-1, n.sizes[h]) {
			return
		}
	}
}

// Cover removes column col and every row that intersects it from the
// active structure. It must be paired with exactly one later Uncover of
// the same column, in strict LIFO order with any covers in between; the
// solver maintains that discipline on every exit path.
func (n *Network) Cover(col int) error {
	if col < 0 || col >= n.width {
		return ErrColumnIndex
	}
	n.cover(col + 1)

	return nil
}

// Uncover restores the most recently covered, not yet uncovered column.
// It is the exact structural inverse of the matching Cover.
func (n *Network) Uncover(col int) error {
	if col < 0 || col >= n.width {
		return ErrColumnIndex
	}
	n.uncover(col + 1)

	return nil
}

// cover unlinks header h from the ring, then unlinks every row in h's
// column from all other columns those rows touch. Only up/down of entry
// nodes and left/right of the header are rewritten; entry left/right
// stay intact, which is what uncover relies on.
func (n *Network) cover(h int) {
	n.nodes[n.nodes[h].left].right = n.nodes[h].right
	n.nodes[n.nodes[h].right].left = n.nodes[h].left

	for i := n.nodes[h].down; i != h; i = n.nodes[i].down {
		for j := n.nodes[i].right; j != i; j = n.nodes[j].right {
			n.nodes[n.nodes[j].up].down = n.nodes[j].down
			n.nodes[n.nodes[j].down].up = n.nodes[j].up
			n.sizes[n.nodes[j].col]--
		}
	}
}

// uncover mirrors cover in reverse enumeration order: bottom-to-top over
// the column, right-to-left within each row, then relinks the header.
func (n *Network) uncover(h int) {
	for i := n.nodes[h].up; i != h; i = n.nodes[i].up {
		for j := n.nodes[i].left; j != i; j = n.nodes[j].left {
			n.sizes[n.nodes[j].col]++
			n.nodes[n.nodes[j].up].down = j
			n.nodes[n.nodes[j].down].up = j
		}
	}

	n.nodes[n.nodes[h].left].right = h
	n.nodes[n.nodes[h].right].left = h
}

// row materializes the Row for the arena node i, walking the intact
// circular row list from its leftmost member.
func (n *Network) row(i int) Row {
	r := n.rowOf[i]
	first := n.rowHead[r]
	cols := []string{n.names[n.nodes[first].col-1]}
	for j := n.nodes[first].right; j != first; j = n.nodes[j].right {
		cols = append(cols, n.names[n.nodes[j].col-1])
	}

	return Row{Index: r, Columns: cols}
}
