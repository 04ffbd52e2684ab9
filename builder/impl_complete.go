// SPDX-License-Identifier: MIT
// Package: symgraph/builder
//
// impl_complete.go - Complete(n): K_n over labels idFn(0..n-1).
//
// Edges are emitted in lexicographic index order (i < j).

package builder

import "github.com/katalvlaran/symgraph/core"

// Complete returns a Constructor for the complete graph K_n (n >= 2).
// K_1 is rejected: a lone vertex cannot exist without an edge.
func Complete(n int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return tooFew(MethodComplete, "n", n, MinCompleteNodes)
		}
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, MethodComplete, u, cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
