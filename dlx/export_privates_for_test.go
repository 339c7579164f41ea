package dlx

// Test-only exports. The structural round-trip property ("a fully
// exhausted search leaves the network byte-for-byte as built") needs to
// observe the raw arena, which the public surface deliberately hides.

// NodeLinks is a copy of one arena slot's link fields.
type NodeLinks struct {
	Left, Right, Up, Down, Col int
}

// Snapshot deep-copies the arena links and column sizes for comparison.
func Snapshot(n *Network) ([]NodeLinks, []int) {
	links := make([]NodeLinks, len(n.nodes))
	for i, nd := range n.nodes {
		links[i] = NodeLinks{Left: nd.left, Right: nd.right, Up: nd.up, Down: nd.down, Col: nd.col}
	}
	sizes := make([]int, len(n.sizes))
	copy(sizes, n.sizes)

	return links, sizes
}
