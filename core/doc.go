// Package core provides an in-memory undirected graph of string-labeled
// vertices behind a small abstract contract, Graph.
//
// A Graph G = (V, E) is a simple undirected graph:
//
//   - Vertices are opaque string labels, created implicitly the first time
//     they appear as an edge endpoint (there is no AddVertex).
//   - Edges are unordered pairs {v, w} with v ≠ w. Self-loops are rejected
//     with ErrLoopNotAllowed; re-inserting an existing pair (in either
//     order) is a no-op.
//   - There is no removal: the graph only grows.
//
// Backings:
//
//	MapGraph   – hash map of neighbor sets; sorted, deterministic enumeration.
//	IndexGraph – interned labels in dense slots, adjacency as [][]int;
//	             enumeration in first-appearance / insertion order.
//
// Both satisfy the identical contract, so call sites depend on Graph only.
//
// Core Methods:
//
//	AddEdge(v, w string) error                 // O(1) amortized (MapGraph)
//	HasEdge(v, w string) (bool, error)         // ErrVertexNotFound if v unknown
//	HasVertex(v string) bool                   // total
//	Vertices() []string                        // fresh copy per call
//	AdjacentTo(v string) ([]string, error)     // fresh copy; ErrVertexNotFound if v unknown
//	VertexCount() int                          // O(1)
//	EdgeCount() int                            // O(1), maintained counter
//	Degree(v string) int                       // total: unknown → 0
//	String() string                            // diagnostic rendering (Format)
//
// Construction:
//
//	NewMapGraph(), NewIndexGraph()             // empty
//	NewMapGraphFrom(src), Copy(dst, src)       // copy through the contract
//	(*MapGraph).Clone(), (*IndexGraph).Clone() // same-backing deep copy
//	Load(r, delim, opts...), LoadFile(...)     // bulk load of hub/neighbor records
//
// Bulk load reads one record per line; field 0 is the hub and every other
// field becomes a neighbor of it:
//
//	A B C      →  A-B, A-C
//	B C        →  B-C
//
// Errors:
//
//	ErrInvalidArgument – class of ErrLoopNotAllowed, ErrEmptyDelimiter, ErrNilGraph
//	ErrVertexNotFound  – unknown vertex passed to HasEdge/AdjacentTo
//	ErrSourceRead      – bulk load source could not be opened or read
//
// Concurrency: none. A Graph has a single owner; concurrent mutation must be
// serialized by the caller.
package core
