// SPDX-License-Identifier: MIT
// Package: symgraph/builder
//
// impl_bipartite.go - CompleteBipartite(n1, n2): K_{n1,n2}.
//
// Left labels are leftPrefix+"0".., right labels rightPrefix+"0"..
// (defaults "L" and "R"). Edges are emitted left-major.

package builder

import (
	"strconv"

	"github.com/katalvlaran/symgraph/core"
)

// CompleteBipartite returns a Constructor for K_{n1,n2} (n1, n2 >= 1).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if n1 < MinPartition {
			return tooFew(MethodCompleteBipartite, "n1", n1, MinPartition)
		}
		if n2 < MinPartition {
			return tooFew(MethodCompleteBipartite, "n2", n2, MinPartition)
		}
		right := make([]string, n2)
		for j := range right {
			right[j] = cfg.rightPrefix + strconv.Itoa(j)
		}
		for i := 0; i < n1; i++ {
			u := cfg.leftPrefix + strconv.Itoa(i)
			for _, v := range right {
				if err := addEdge(g, MethodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
