// SPDX-License-Identifier: MIT
// Package: symgraph/builder
//
// api.go - entry points for the builder package.
//
// Contract:
//   - BuildGraph allocates a graph, resolves options, runs constructors in order.
//   - Apply does the same against a caller-supplied graph.
//   - Determinism: same options and constructor order give identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/symgraph/core"
)

// Constructor adds one topology's edges to g. Implementations validate their
// parameters before touching g and return sentinel errors wrapped with the
// method name.
type Constructor func(g core.Graph, cfg builderConfig) error

// BuildGraph allocates a new graph (MapGraph unless WithBackend says
// otherwise) and applies cons in order. On error the partial graph is
// discarded and nil is returned.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	g := cfg.newGraph()
	if err := run(g, cfg, cons); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply runs cons in order against an existing graph. Edges added before a
// failing constructor stay in g; the graph has no removal operation.
func Apply(g core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: %w", ErrNilGraph)
	}
	if err := run(g, newBuilderConfig(bopts...), cons); err != nil {
		return fmt.Errorf("Apply: %w", err)
	}

	return nil
}

func run(g core.Graph, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}

// addEdge wraps g.AddEdge failures with the constructor name.
func addEdge(g core.Graph, method, u, v string) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s, %s): %w", method, u, v, err)
	}

	return nil
}

// tooFew reports a size below its minimum.
func tooFew(method, name string, got, minimum int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, minimum, ErrTooFewVertices)
}
