// SPDX-License-Identifier: MIT
// Package: symgraph/builder
//
// impl_wheel.go - Wheel(n): W_n = C_{n-1} rim plus hub "Center".
//
// The rim is built by Cycle(n-1) over idFn(0..n-2); spokes follow in
// ascending rim order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/symgraph/core"
)

// Wheel returns a Constructor for the wheel graph with n vertices (n >= 4).
func Wheel(n int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return tooFew(MethodWheel, "n", n, MinWheelNodes)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", MethodWheel, n-1, err)
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, MethodWheel, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
