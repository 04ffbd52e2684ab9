// SPDX-License-Identifier: MIT
// Package: symgraph/builder
//
// impl_grid.go - Grid(rows, cols): 4-neighbourhood lattice.
//
// Cells are labelled "r,c". Each cell links to its right then its bottom
// neighbour, visiting cells in row-major order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/symgraph/core"
)

// Grid returns a Constructor for a rows x cols grid. Both dimensions must be
// >= 1 and the grid must hold at least two cells.
func Grid(rows, cols int) Constructor {
	return func(g core.Graph, _ builderConfig) error {
		if rows < MinGridDim {
			return tooFew(MethodGrid, "rows", rows, MinGridDim)
		}
		if cols < MinGridDim {
			return tooFew(MethodGrid, "cols", cols, MinGridDim)
		}
		if rows*cols < MinGridCells {
			return tooFew(MethodGrid, "rows*cols", rows*cols, MinGridCells)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					if err := addEdge(g, MethodGrid, u, fmt.Sprintf(gridIDFmt, r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, MethodGrid, u, fmt.Sprintf(gridIDFmt, r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
