// SPDX-License-Identifier: MIT
//
// File: adjacency_list.go
// Role: IndexGraph, the array-of-lists Graph backing with label interning.
//
// Layout:
//   - index:  label → slot (each distinct label is stored exactly once).
//   - labels: slot → label (reverse lookup; the single shared copy of each label).
//   - adj:    slot → neighbor slots, in insertion order.
//
// Determinism:
//   - Vertices() follows first-appearance order of labels.
//   - AdjacentTo(v) follows the order in which v's edges were inserted.
package core

// IndexGraph stores vertices in dense integer slots and adjacency as
// slices of slot indices. Neighbor lists hold ints rather than strings,
// so a label repeated across many adjacency lists is kept in memory once.
//
// HasEdge scans the shorter of the two endpoint lists: O(min(deg(v), deg(w))).
type IndexGraph struct {
	index  map[string]int // label → slot
	labels []string       // slot → label
	adj    [][]int        // slot → neighbor slots
	edges  int            // distinct unordered pairs
}

// compile-time contract check
var _ Graph = (*IndexGraph)(nil)

// NewIndexGraph creates an empty IndexGraph.
// Complexity: O(1)
func NewIndexGraph() *IndexGraph {
	return &IndexGraph{
		index: make(map[string]int),
	}
}

// intern returns the slot of label, allocating a new slot (and thereby a
// new vertex with an empty neighbor list) on first sight.
func (g *IndexGraph) intern(label string) int {
	if i, ok := g.index[label]; ok {
		return i
	}
	i := len(g.labels)
	g.index[label] = i
	g.labels = append(g.labels, label)
	g.adj = append(g.adj, nil)

	return i
}

// linked reports whether slots i and j are adjacent, scanning the shorter list.
func (g *IndexGraph) linked(i, j int) bool {
	if len(g.adj[j]) < len(g.adj[i]) {
		i, j = j, i
	}
	for _, k := range g.adj[i] {
		if k == j {
			return true
		}
	}

	return false
}

// AddEdge inserts the unordered edge {v, w}; see Graph for the contract.
// Self-loops are rejected before any slot is allocated.
// Complexity: O(min(deg(v), deg(w))) for the duplicate check.
func (g *IndexGraph) AddEdge(v, w string) error {
	if v == w {
		return ErrLoopNotAllowed
	}

	i, j := g.intern(v), g.intern(w)
	if g.linked(i, j) {
		return nil
	}

	g.adj[i] = append(g.adj[i], j)
	g.adj[j] = append(g.adj[j], i)
	g.edges++

	return nil
}

// HasEdge reports whether {v, w} exists. Unknown v → ErrVertexNotFound;
// unknown w → false.
func (g *IndexGraph) HasEdge(v, w string) (bool, error) {
	i, ok := g.index[v]
	if !ok {
		return false, ErrVertexNotFound
	}
	j, ok := g.index[w]
	if !ok {
		return false, nil
	}

	return g.linked(i, j), nil
}

// HasVertex reports whether v is a known vertex.
func (g *IndexGraph) HasVertex(v string) bool {
	_, ok := g.index[v]

	return ok
}

// Vertices returns a fresh slice of labels in first-appearance order.
// Complexity: O(V).
func (g *IndexGraph) Vertices() []string {
	out := make([]string, len(g.labels))
	copy(out, g.labels)

	return out
}

// AdjacentTo returns a fresh slice of v's neighbors in insertion order.
// Unknown v → ErrVertexNotFound.
// Complexity: O(d).
func (g *IndexGraph) AdjacentTo(v string) ([]string, error) {
	i, ok := g.index[v]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]string, len(g.adj[i]))
	for k, j := range g.adj[i] {
		out[k] = g.labels[j]
	}

	return out, nil
}

// VertexCount returns the number of allocated slots.
func (g *IndexGraph) VertexCount() int {
	return len(g.labels)
}

// EdgeCount returns the maintained edge counter.
func (g *IndexGraph) EdgeCount() int {
	return g.edges
}

// Degree returns len(adj[slot(v)]), or 0 for an unknown v (total, like MapGraph.Degree).
func (g *IndexGraph) Degree(v string) int {
	i, ok := g.index[v]
	if !ok {
		return 0
	}

	return len(g.adj[i])
}

// Clone returns a deep copy; slot numbering is preserved, so iteration
// order of the clone matches g.
// Complexity: O(V + E).
func (g *IndexGraph) Clone() *IndexGraph {
	clone := &IndexGraph{
		index:  make(map[string]int, len(g.index)),
		labels: make([]string, len(g.labels)),
		adj:    make([][]int, len(g.adj)),
		edges:  g.edges,
	}
	for label, i := range g.index {
		clone.index[label] = i
	}
	copy(clone.labels, g.labels)
	for i, nbrs := range g.adj {
		clone.adj[i] = append([]int(nil), nbrs...)
	}

	return clone
}
