// File: methods_clone.go
// Role: Copy construction: backing-agnostic Copy/NewMapGraphFrom and the
//       MapGraph.Clone fast path.
// Independence:
//   - The destination never shares a map or slice with the source; mutating
//     either graph afterwards never affects the other.

package core

import "fmt"

// Copy inserts every edge of src into dst.
//
// Implementation:
//   - Stage 1: Reject nil src or dst with ErrNilGraph.
//   - Stage 2: For each v in src.Vertices(), for each w in src.AdjacentTo(v),
//     call dst.AddEdge(v, w). Each undirected edge is discovered twice; the
//     second insertion is a no-op by AddEdge's idempotence.
//
// Only the public contract of src is used, so any pair of backings can be
// combined (MapGraph → IndexGraph and back). If dst is not empty the result
// is the union of both edge sets.
//
// Complexity: O(V + E) contract calls, plus whatever the backings charge per call.
func Copy(dst, src Graph) error {
	if dst == nil || src == nil {
		return ErrNilGraph
	}

	for _, v := range src.Vertices() {
		nbrs, err := src.AdjacentTo(v)
		if err != nil {
			return fmt.Errorf("core: copy AdjacentTo(%q): %w", v, err)
		}
		for _, w := range nbrs {
			if err = dst.AddEdge(v, w); err != nil {
				return fmt.Errorf("core: copy AddEdge(%q, %q): %w", v, w, err)
			}
		}
	}

	return nil
}

// NewMapGraphFrom builds a new, independent MapGraph holding exactly the
// vertices and edges of src.
// Errors: ErrNilGraph, or any error surfaced by src while iterating.
// Complexity: O(V + E).
func NewMapGraphFrom(src Graph) (*MapGraph, error) {
	g := NewMapGraph()
	if err := Copy(g, src); err != nil {
		return nil, err
	}

	return g, nil
}

// Clone returns a deep copy of the MapGraph.
// Neighbor sets are reallocated, so the clone and g evolve independently.
// Complexity: O(V + E).
func (g *MapGraph) Clone() *MapGraph {
	clone := &MapGraph{
		adjacency: make(map[string]map[string]struct{}, len(g.adjacency)),
		edges:     g.edges,
	}
	for v, nbrs := range g.adjacency {
		set := make(map[string]struct{}, len(nbrs))
		for w := range nbrs {
			set[w] = struct{}{}
		}
		clone.adjacency[v] = set
	}

	return clone
}
