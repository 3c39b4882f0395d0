package squaremaze

// partition tracks the canonical tree id for every raw tree id painted
// into the grid. It is a disjoint-set structure with path compression but
// with *directed* unions: the merge rule dictates which canonical id
// survives a collision (the collided-into tree), so no rank or size
// heuristic may reorder the attachment.
//
// The mapping is only ever extended — once a root is absorbed it never
// becomes a root again — which is exactly the merge-closure property the
// growth loop relies on.
type partition struct {
	// parent[id] == id marks a root; index 0 is unused (0 means "empty"
	// in the grid).
	parent []int
}

// newPartition creates a partition over raw tree ids 1..n, each initially
// its own canonical id.
func newPartition(n int) *partition {
	parent := make([]int, n+1)
	for i := range parent {
		parent[i] = i
	}
	return &partition{parent: parent}
}

// find resolves a raw tree id to its canonical id, following the chain to
// a fixed point with path compression. Ids outside [1, n] are returned
// unchanged so that grid value 0 (empty) stays 0.
//
// Complexity: amortized near O(1).
func (p *partition) find(id int) int {
	if id < 1 || id >= len(p.parent) {
		return id
	}
	root := id
	for p.parent[root] != root {
		root = p.parent[root]
	}
	for p.parent[id] != root {
		id, p.parent[id] = p.parent[id], root
	}
	return root
}

// absorb remaps the set containing from onto the set containing into, so
// every raw id that previously resolved to from now resolves to into's
// canonical id. Directed on purpose; see the type comment.
// Returns the surviving canonical id.
func (p *partition) absorb(from, into int) int {
	rootFrom := p.find(from)
	rootInto := p.find(into)
	if rootFrom != rootInto {
		p.parent[rootFrom] = rootInto
	}
	return rootInto
}

// count reports the number of distinct canonical ids still present.
func (p *partition) count() int {
	n := 0
	for id := 1; id < len(p.parent); id++ {
		if p.parent[id] == id {
			n++
		}
	}
	return n
}
