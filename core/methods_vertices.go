// File: methods_vertices.go
// Role: Vertex queries for MapGraph.
//
// Determinism:
//   - Vertices() returns labels sorted lexicographically ascending.
//
// Notes:
//   - There is no AddVertex: vertices appear only as edge endpoints.
package core

import "sort"

// HasVertex reports whether v has been inserted as an edge endpoint.
// Total: defined for every input, including the empty label.
// Complexity: O(1).
func (g *MapGraph) HasVertex(v string) bool {
	_, ok := g.adjacency[v]

	return ok
}

// Vertices returns all vertex labels in lexicographic ascending order.
//
// Every call allocates a fresh slice, so the result can be retained,
// reordered or mutated by the caller without affecting the graph.
// Complexity: O(V log V) time, O(V) space.
func (g *MapGraph) Vertices() []string {
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of known vertices.
// Complexity: O(1).
func (g *MapGraph) VertexCount() int {
	return len(g.adjacency)
}

// Degree returns the number of neighbors of v.
//
// Unlike HasEdge and AdjacentTo, Degree is total: an unknown v has
// degree 0 and no error is reported. For a known v the result always
// equals len(AdjacentTo(v)).
// Complexity: O(1).
func (g *MapGraph) Degree(v string) int {
	return len(g.adjacency[v])
}
