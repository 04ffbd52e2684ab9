// SPDX-License-Identifier: MIT
// Package: symgraph/builder
//
// impl_cycle.go - Cycle(n): C_n over labels idFn(0..n-1).
//
// Edges: the path {0,1} ... {n-2,n-1}, then the closing edge {n-1,0}.

package builder

import "github.com/katalvlaran/symgraph/core"

// Cycle returns a Constructor for the simple cycle C_n (n >= 3).
func Cycle(n int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return tooFew(MethodCycle, "n", n, MinCycleNodes)
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, MethodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
