// SPDX-License-Identifier: MIT
// Package: sparseprim/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • Vertex ids are row-major: cell (r,c) is r*cols + c.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each (r,c) emits Right (r,c+1) then Bottom (r+1,c) where they exist.
//
// Complexity:
//   • Time: O(rows*cols) edges.
//   • Space: O(rows*cols) for the edge list.
//
// Determinism:
//   • Stable edge order: r asc, then c asc, Right before Bottom.

package builder

import (
	"github.com/katalvlaran/sparseprim/loader"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(cfg builderConfig) (EdgeSet, error) {
		// 1) Validate both dimensions.
		if err := validateMin(MethodGrid, rows, MinGridDim); err != nil {
			return EdgeSet{}, err
		}
		if err := validateMin(MethodGrid, cols, MinGridDim); err != nil {
			return EdgeSet{}, err
		}

		// 2) Emit edges in row-major order.
		edges := make([]loader.Edge, 0, 2*rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := r*cols + c
				if c+1 < cols {
					edges = append(edges, loader.Edge{U: id, V: id + 1, W: cfg.weight()})
				}
				if r+1 < rows {
					edges = append(edges, loader.Edge{U: id, V: id + cols, W: cfg.weight()})
				}
			}
		}

		return EdgeSet{N: rows * cols, Edges: edges}, nil
	}
}
