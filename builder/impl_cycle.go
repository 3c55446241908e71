// SPDX-License-Identifier: MIT
// Package: sparseprim/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits ring edges (i, i+1) for i=0..n-2, then the closing edge (0, n-1).
//   • Weight policy: cfg.weightFn(cfg.rng) per edge, in emission order.
//
// Complexity:
//   • Time: O(n) edges.
//   • Space: O(n) for the edge list.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sparseprim/loader"
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(cfg builderConfig) (EdgeSet, error) {
		if n < MinCycleNodes {
			return EdgeSet{}, fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		edges := make([]loader.Edge, 0, n)
		for i := 0; i+1 < n; i++ {
			edges = append(edges, loader.Edge{U: i, V: i + 1, W: cfg.weight()})
		}
		// Close the ring; stored with the smaller id first like every other edge.
		edges = append(edges, loader.Edge{U: 0, V: n - 1, W: cfg.weight()})

		return EdgeSet{N: n, Edges: edges}, nil
	}
}
