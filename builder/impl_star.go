// SPDX-License-Identifier: MIT
// Package: symgraph/builder
//
// impl_star.go - Star(n): hub "Center" plus leaves idFn(1..n-1).
//
// Spokes are emitted in ascending leaf order.

package builder

import "github.com/katalvlaran/symgraph/core"

// Star returns a Constructor for a star with n vertices: CenterVertexID and
// n-1 leaves (n >= 2).
func Star(n int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return tooFew(MethodStar, "n", n, MinStarNodes)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, MethodStar, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
