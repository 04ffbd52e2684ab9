// Package symgraph is an in-memory undirected graph over string-labelled
// vertices.
//
// Vertices come into existence as edge endpoints; edges are unordered pairs
// with no self-loops and no duplicates. The structure only grows: there is no
// removal.
//
// Layout:
//
//	core/                  Graph contract, MapGraph and IndexGraph backings,
//	                       copy construction, bulk load from delimited text
//	builder/               path, cycle, star, wheel, complete, bipartite and
//	                       grid constructors that emit edges into any core.Graph
//	cmd/symgraph/          command-line inspector (show, stats, adj, degree,
//	                       has-edge, gen)
//	internal/config/       YAML file + SYMGRAPH_* environment settings
//	internal/logging/      slog logger construction
//	examples/              runnable programs
//
// Quick start:
//
//	g, err := core.Load(strings.NewReader("A B C\nB C\n"), " ")
//	if err != nil { ... }
//	fmt.Print(g) // A: B C / B: A C / C: A B
//
// Traversals, shortest paths and other algorithms are left to consumers of
// core.Graph.
package symgraph
