// SPDX-License-Identifier: MIT
// Package builder_test exercises every topology constructor against both
// core backings.

package builder_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symgraph/builder"
	"github.com/katalvlaran/symgraph/core"
)

type backend struct {
	name string
	make func() core.Graph
}

var backends = []backend{
	{name: "MapGraph", make: func() core.Graph { return core.NewMapGraph() }},
	{name: "IndexGraph", make: func() core.Graph { return core.NewIndexGraph() }},
}

// adjacencyOf snapshots g as label -> sorted neighbour labels.
func adjacencyOf(t *testing.T, g core.Graph) map[string][]string {
	t.Helper()
	out := make(map[string][]string, g.VertexCount())
	for _, v := range g.Vertices() {
		nbrs, err := g.AdjacentTo(v)
		require.NoError(t, err)
		sort.Strings(nbrs)
		out[v] = nbrs
	}

	return out
}

func build(t *testing.T, b backend, opts []builder.BuilderOption, cons ...builder.Constructor) core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(append([]builder.BuilderOption{builder.WithBackend(b.make)}, opts...), cons...)
	require.NoError(t, err)
	require.NotNil(t, g)

	return g
}

func TestTopologyCounts(t *testing.T) {
	cases := []struct {
		name         string
		cons         builder.Constructor
		wantVertices int
		wantEdges    int
	}{
		{"Path2", builder.Path(2), 2, 1},
		{"Path6", builder.Path(6), 6, 5},
		{"Cycle3", builder.Cycle(3), 3, 3},
		{"Cycle5", builder.Cycle(5), 5, 5},
		{"Star2", builder.Star(2), 2, 1},
		{"Star7", builder.Star(7), 7, 6},
		{"Wheel4", builder.Wheel(4), 4, 6},
		{"Wheel6", builder.Wheel(6), 6, 10},
		{"Complete2", builder.Complete(2), 2, 1},
		{"Complete5", builder.Complete(5), 5, 10},
		{"Bipartite1x1", builder.CompleteBipartite(1, 1), 2, 1},
		{"Bipartite2x3", builder.CompleteBipartite(2, 3), 5, 6},
		{"Grid1x2", builder.Grid(1, 2), 2, 1},
		{"Grid3x4", builder.Grid(3, 4), 12, 17},
	}
	for _, b := range backends {
		for _, tc := range cases {
			t.Run(b.name+"/"+tc.name, func(t *testing.T) {
				g := build(t, b, nil, tc.cons)
				assert.Equal(t, tc.wantVertices, g.VertexCount(), "VertexCount")
				assert.Equal(t, tc.wantEdges, g.EdgeCount(), "EdgeCount")
			})
		}
	}
}

func TestTopologyTooSmall(t *testing.T) {
	cases := []struct {
		name string
		cons builder.Constructor
	}{
		{"Path1", builder.Path(1)},
		{"Cycle2", builder.Cycle(2)},
		{"Star1", builder.Star(1)},
		{"Wheel3", builder.Wheel(3)},
		{"Complete1", builder.Complete(1)},
		{"Complete0", builder.Complete(0)},
		{"BipartiteLeft0", builder.CompleteBipartite(0, 3)},
		{"BipartiteRight0", builder.CompleteBipartite(3, 0)},
		{"GridRows0", builder.Grid(0, 3)},
		{"GridCols0", builder.Grid(3, 0)},
		{"Grid1x1", builder.Grid(1, 1)},
		{"PathNegative", builder.Path(-4)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.cons)
			require.ErrorIs(t, err, builder.ErrTooFewVertices)
			assert.Nil(t, g)
		})
	}
}

func TestTopologyTooSmallLeavesGraphUntouched(t *testing.T) {
	g := core.NewMapGraph()
	require.ErrorIs(t, builder.Apply(g, nil, builder.Wheel(2)), builder.ErrTooFewVertices)
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
}

func TestPathAdjacency(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			g := build(t, b, nil, builder.Path(4))
			want := map[string][]string{
				"0": {"1"},
				"1": {"0", "2"},
				"2": {"1", "3"},
				"3": {"2"},
			}
			if diff := cmp.Diff(want, adjacencyOf(t, g)); diff != "" {
				t.Errorf("Path(4) adjacency mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCycleIsTwoRegular(t *testing.T) {
	g := build(t, backends[0], nil, builder.Cycle(6))
	for _, v := range g.Vertices() {
		assert.Equal(t, 2, g.Degree(v), "Degree(%q)", v)
	}
	ok, err := g.HasEdge("5", "0")
	require.NoError(t, err)
	assert.True(t, ok, "closing edge 5-0")
}

func TestStarAndWheelHub(t *testing.T) {
	star := build(t, backends[1], nil, builder.Star(5))
	assert.Equal(t, 4, star.Degree(builder.CenterVertexID))
	assert.False(t, star.HasVertex("0"), "Star leaves start at index 1")
	for i := 1; i < 5; i++ {
		assert.Equal(t, 1, star.Degree(builder.DefaultIDFn(i)))
	}

	wheel := build(t, backends[0], nil, builder.Wheel(5))
	assert.Equal(t, 4, wheel.Degree(builder.CenterVertexID))
	for i := 0; i < 4; i++ {
		assert.Equal(t, 3, wheel.Degree(builder.DefaultIDFn(i)), "rim vertex %d", i)
	}
}

func TestCompleteEveryPairLinked(t *testing.T) {
	g := build(t, backends[1], []builder.BuilderOption{builder.WithExcelColumnIDs()}, builder.Complete(4))
	labels := []string{"A", "B", "C", "D"}
	assert.ElementsMatch(t, labels, g.Vertices())
	for _, u := range labels {
		for _, v := range labels {
			if u == v {
				continue
			}
			ok, err := g.HasEdge(u, v)
			require.NoError(t, err)
			assert.True(t, ok, "HasEdge(%q,%q)", u, v)
		}
	}
}

func TestCompleteBipartiteSides(t *testing.T) {
	g := build(t, backends[0], []builder.BuilderOption{builder.WithPartitionPrefix("u", "w")},
		builder.CompleteBipartite(2, 2))
	want := map[string][]string{
		"u0": {"w0", "w1"},
		"u1": {"w0", "w1"},
		"w0": {"u0", "u1"},
		"w1": {"u0", "u1"},
	}
	if diff := cmp.Diff(want, adjacencyOf(t, g)); diff != "" {
		t.Errorf("K(2,2) adjacency mismatch (-want +got):\n%s", diff)
	}
}

func TestGridDegrees(t *testing.T) {
	g := build(t, backends[0], nil, builder.Grid(3, 3))
	cases := map[string]int{
		"0,0": 2, "0,2": 2, "2,0": 2, "2,2": 2,
		"0,1": 3, "1,0": 3, "1,2": 3, "2,1": 3,
		"1,1": 4,
	}
	for v, want := range cases {
		assert.Equal(t, want, g.Degree(v), "Degree(%q)", v)
	}
}

func TestBuildGraphComposesConstructors(t *testing.T) {
	// Path(3) covers 0-1-2; Star(3) adds Center-1 and Center-2.
	g := build(t, backends[0], nil, builder.Path(3), builder.Star(3))
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
}

func TestApplyIsIdempotent(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			g := b.make()
			require.NoError(t, builder.Apply(g, nil, builder.Cycle(4)))
			before := adjacencyOf(t, g)
			require.NoError(t, builder.Apply(g, nil, builder.Cycle(4)))
			assert.Equal(t, 4, g.EdgeCount())
			if diff := cmp.Diff(before, adjacencyOf(t, g)); diff != "" {
				t.Errorf("re-apply changed adjacency (-before +after):\n%s", diff)
			}
		})
	}
}

func TestApplyExtendsExistingGraph(t *testing.T) {
	g := core.NewMapGraph()
	require.NoError(t, g.AddEdge("x", "0"))
	require.NoError(t, builder.Apply(g, nil, builder.Path(2)))
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.Degree("0"))
}

func TestApplyNilGraph(t *testing.T) {
	require.ErrorIs(t, builder.Apply(nil, nil, builder.Path(2)), builder.ErrNilGraph)
}

func TestNilConstructor(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(2), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.Nil(t, g)
	assert.Contains(t, err.Error(), "index 1")
}

func TestErrorNamesMethod(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Wheel(3))
	require.Error(t, err)
	assert.Contains(t, err.Error(), builder.MethodWheel)
	assert.Contains(t, err.Error(), "n=3")
}

func TestSelfLoopFromCollidingIDsSurfaces(t *testing.T) {
	constant := func(int) string { return "same" }
	_, err := builder.BuildGraph([]builder.BuilderOption{builder.WithIDScheme(constant)}, builder.Path(2))
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	assert.Contains(t, err.Error(), builder.MethodPath)
}
