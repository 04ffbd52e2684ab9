// File: methods_edges.go
// Role: Edge insertion and edge queries for MapGraph: AddEdge/HasEdge/EdgeCount.
// Invariants:
//   - Every insertion is mirrored (v→w and w→v) so adjacency stays symmetric.
//   - edges is incremented exactly once per genuinely new unordered pair.
// Concurrency:
//   - None. MapGraph has a single owner; see Graph.

package core

// AddEdge inserts the unordered edge {v, w}.
//
// Steps:
//  1. Reject v == w with ErrLoopNotAllowed before touching any state.
//  2. Create missing endpoints with empty neighbor sets.
//  3. If w is already adjacent to v, return (idempotent; count unchanged).
//  4. Link both directions and increment the edge count.
//
// Repeated calls with either argument order are no-ops after the first.
// Complexity: O(1) amortized.
func (g *MapGraph) AddEdge(v, w string) error {
	if v == w {
		return ErrLoopNotAllowed
	}

	ensureAdjacency(g, v)
	ensureAdjacency(g, w)

	if _, exists := g.adjacency[v][w]; exists {
		return nil
	}

	g.adjacency[v][w] = struct{}{}
	g.adjacency[w][v] = struct{}{}
	g.edges++

	return nil
}

// HasEdge reports whether the edge {v, w} exists.
//
// v must be a known vertex, otherwise ErrVertexNotFound is returned. An
// unknown w is not an error: it simply is not adjacent to v.
// By symmetry HasEdge(v, w) and HasEdge(w, v) agree whenever both are known.
// Complexity: O(1).
func (g *MapGraph) HasEdge(v, w string) (bool, error) {
	nbrs, ok := g.adjacency[v]
	if !ok {
		return false, ErrVertexNotFound
	}
	_, ok = nbrs[w]

	return ok, nil
}

// EdgeCount returns the number of distinct edges.
// Complexity: O(1); the counter is maintained by AddEdge, never recomputed.
func (g *MapGraph) EdgeCount() int {
	return g.edges
}
