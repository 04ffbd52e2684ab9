// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures and invariant checks for core tests.
//
// Purpose:
//   - Run one contract suite against every Graph backing.
//   - Keep vertex labels as named constants (no magic strings in test bodies).

package core_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symgraph/core"
)

// Common vertex labels used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"

	VertexX = "X"
	VertexY = "Y"
)

// backend names a Graph constructor under test.
type backend struct {
	name string
	make func() core.Graph
}

// backends lists every Graph implementation; contract tests iterate it.
var backends = []backend{
	{name: "MapGraph", make: func() core.Graph { return core.NewMapGraph() }},
	{name: "IndexGraph", make: func() core.Graph { return core.NewIndexGraph() }},
}

// forEachBackend runs fn as a subtest once per backing.
func forEachBackend(t *testing.T, fn func(t *testing.T, newGraph func() core.Graph)) {
	t.Helper()
	for _, b := range backends {
		b := b
		t.Run(b.name, func(t *testing.T) {
			fn(t, b.make)
		})
	}
}

// mustAddEdges inserts each pair and fails the test on the first error.
func mustAddEdges(t *testing.T, g core.Graph, pairs ...[2]string) {
	t.Helper()
	for _, p := range pairs {
		require.NoError(t, g.AddEdge(p[0], p[1]), "AddEdge(%q,%q)", p[0], p[1])
	}
}

// sorted returns a sorted copy of ids, so order-agnostic backings compare equal.
func sorted(ids []string) []string {
	out := append([]string(nil), ids...)
	sort.Strings(out)

	return out
}

// adjacencyOf snapshots g as label → sorted neighbor labels.
func adjacencyOf(t *testing.T, g core.Graph) map[string][]string {
	t.Helper()
	out := make(map[string][]string, g.VertexCount())
	for _, v := range g.Vertices() {
		nbrs, err := g.AdjacentTo(v)
		require.NoError(t, err, "AdjacentTo(%q) for listed vertex", v)
		out[v] = sorted(nbrs)
	}

	return out
}

// requireInvariants checks the structural invariants every backing must keep:
//   - symmetry of adjacency,
//   - Degree(v) == len(AdjacentTo(v)),
//   - no self-loops and no duplicate neighbors,
//   - EdgeCount == Σdeg / 2, VertexCount == len(Vertices()).
func requireInvariants(t *testing.T, g core.Graph) {
	t.Helper()

	vertices := g.Vertices()
	require.Len(t, vertices, g.VertexCount(), "VertexCount vs len(Vertices)")

	degreeSum := 0
	for _, v := range vertices {
		nbrs, err := g.AdjacentTo(v)
		require.NoError(t, err)
		require.Equal(t, len(nbrs), g.Degree(v), "Degree(%q)", v)
		degreeSum += len(nbrs)

		seen := make(map[string]struct{}, len(nbrs))
		for _, w := range nbrs {
			require.NotEqual(t, v, w, "self-loop stored at %q", v)
			_, dup := seen[w]
			require.False(t, dup, "duplicate neighbor %q of %q", w, v)
			seen[w] = struct{}{}

			back, err := g.HasEdge(w, v)
			require.NoError(t, err)
			require.True(t, back, "symmetry broken: %q-%q", v, w)
		}
	}
	require.Equal(t, degreeSum/2, g.EdgeCount(), "EdgeCount vs Σdeg/2")
	require.Zero(t, degreeSum%2, "odd degree sum")
}
