// SPDX-License-Identifier: MIT
// Package: symgraph/builder
//
// impl_path.go - Path(n): P_n over labels idFn(0..n-1).
//
// Edges are emitted in ascending order: {0,1}, {1,2}, ..., {n-2,n-1}.

package builder

import "github.com/katalvlaran/symgraph/core"

// Path returns a Constructor for the simple path P_n (n >= 2).
func Path(n int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return tooFew(MethodPath, "n", n, MinPathNodes)
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, MethodPath, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}
