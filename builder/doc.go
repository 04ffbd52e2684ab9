// Package builder populates a core.Graph with well-known deterministic
// topologies. Every constructor emits edges through core.Graph.AddEdge only,
// so it works against any backing (MapGraph, IndexGraph, or a caller's own).
//
// The package offers:
//
//   - Constructor: a func(core.Graph, builderConfig) error closure.
//   - BuildGraph and Apply: resolve options and run constructors in order.
//   - Topologies: Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid.
//   - Vertex-ID schemes (IDFn): DefaultIDFn, ExcelColumnIDFn, PrefixIDFn.
//   - FromName: resolves a topology by name for command-line callers.
//
// Vertices exist only as edge endpoints, so every topology requires at least
// one edge; sizes that would produce an isolated vertex fail with
// ErrTooFewVertices.
//
// Re-running a constructor on the same graph is a no-op: AddEdge is
// idempotent.
package builder
