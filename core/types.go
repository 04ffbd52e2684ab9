// SPDX-License-Identifier: MIT
//
// Package core defines the Graph contract, its conforming backings
// (MapGraph, IndexGraph), and the construction paths shared by both.
//
// This file declares sentinel errors, the Graph interface, and the
// hash-based MapGraph type with its constructor.
//
// Errors:
//
//	ErrInvalidArgument - parent class for argument validation failures.
//	ErrLoopNotAllowed  - AddEdge(v, v); self-loops are not representable.
//	ErrEmptyDelimiter  - bulk load with an empty field delimiter.
//	ErrVertexNotFound  - HasEdge/AdjacentTo on an unknown vertex.
//	ErrSourceRead      - bulk load source could not be opened or read.
//	ErrNilGraph        - copy construction with a nil source or destination.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidArgument is the parent of every argument validation error.
	// Callers that only care about the class can test errors.Is(err, ErrInvalidArgument).
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrLoopNotAllowed indicates an attempt to insert a self-loop (v == w).
	ErrLoopNotAllowed = fmt.Errorf("%w: self-loop not allowed", ErrInvalidArgument)

	// ErrEmptyDelimiter indicates a bulk load was requested with an empty delimiter.
	ErrEmptyDelimiter = fmt.Errorf("%w: delimiter is empty", ErrInvalidArgument)

	// ErrNilGraph indicates a nil Graph was passed where an instance is required.
	ErrNilGraph = fmt.Errorf("%w: graph is nil", ErrInvalidArgument)

	// ErrVertexNotFound indicates a query referenced a vertex that was never inserted.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrSourceRead indicates the bulk load source could not be opened or read.
	ErrSourceRead = errors.New("core: source read failed")
)

// Graph is the contract shared by every backing representation of an
// undirected, unweighted simple graph with string-labeled vertices.
//
// Invariants (hold after every call, for every implementation):
//   - Symmetry: w ∈ AdjacentTo(v) ⇔ v ∈ AdjacentTo(w).
//   - EdgeCount equals the number of distinct unordered pairs inserted.
//   - VertexCount equals the number of distinct labels seen as endpoints.
//   - No self-loops, no parallel edges.
//
// Precondition policy:
//   - HasEdge and AdjacentTo return ErrVertexNotFound when v is unknown.
//   - Degree is total and returns 0 for an unknown vertex.
//
// Implementations are not safe for concurrent mutation; callers that share
// a Graph across goroutines must serialize access themselves.
type Graph interface {
	// HasEdge reports whether the edge {v, w} exists.
	HasEdge(v, w string) (bool, error)
	// HasVertex reports whether v has been inserted as an edge endpoint.
	HasVertex(v string) bool
	// AddEdge inserts the unordered edge {v, w}, creating missing endpoints.
	AddEdge(v, w string) error
	// Vertices returns a fresh slice of all vertex labels.
	Vertices() []string
	// AdjacentTo returns a fresh slice of the labels adjacent to v.
	AdjacentTo(v string) ([]string, error)
	// VertexCount returns the number of known vertices.
	VertexCount() int
	// EdgeCount returns the number of distinct edges.
	EdgeCount() int
	// Degree returns the size of v's adjacency set, or 0 if v is unknown.
	Degree(v string) int
	// String renders the graph for diagnostics (see Format).
	String() string
}

// MapGraph is the hash-based Graph backing.
//
// adjacency maps each vertex label to the set of its neighbors; a vertex
// exists iff it is a key of adjacency. edges is the maintained count of
// distinct unordered pairs, so EdgeCount is O(1).
type MapGraph struct {
	adjacency map[string]map[string]struct{} // label → neighbor set
	edges     int                            // distinct unordered pairs
}

// compile-time contract check
var _ Graph = (*MapGraph)(nil)

// NewMapGraph creates an empty MapGraph with zero vertices and zero edges.
// Complexity: O(1)
func NewMapGraph() *MapGraph {
	return &MapGraph{
		adjacency: make(map[string]map[string]struct{}),
	}
}
