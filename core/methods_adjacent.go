// File: methods_adjacent.go
// Role: Neighborhood query (AdjacentTo) and the adjacency bootstrap helper.
// Determinism:
//   - AdjacentTo() returns neighbor labels sorted lexicographically ascending.
// Ownership:
//   - Results are copies; the internal neighbor sets are never handed out.

package core

import "sort"

// AdjacentTo returns the labels adjacent to v, sorted ascending.
//
// Errors:
//   - ErrVertexNotFound: v was never inserted.
//
// The returned slice is freshly allocated on every call.
// Complexity: O(d log d) time, O(d) space, where d = Degree(v).
func (g *MapGraph) AdjacentTo(v string) ([]string, error) {
	nbrs, ok := g.adjacency[v]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]string, 0, len(nbrs))
	for w := range nbrs {
		out = append(out, w)
	}
	sort.Strings(out)

	return out, nil
}

// ensureAdjacency guarantees that adjacency[v] exists, registering v as a
// vertex with an empty neighbor set when it is new. No-op otherwise.
// Complexity: O(1) amortized.
func ensureAdjacency(g *MapGraph, v string) {
	if g.adjacency[v] == nil {
		g.adjacency[v] = make(map[string]struct{})
	}
}
