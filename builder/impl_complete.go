// SPDX-License-Identifier: MIT
// Package: sparseprim/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). K_1 has one vertex and no edges.
//   - Emits every unordered pair (i, j), i < j, in lexicographic order.
//
// Complexity:
//   - Time: O(n²) edges.
//   - Space: O(n²) for the edge list.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sparseprim/loader"
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(cfg builderConfig) (EdgeSet, error) {
		if n < MinCompleteNodes {
			return EdgeSet{}, fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}

		edges := make([]loader.Edge, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				edges = append(edges, loader.Edge{U: i, V: j, W: cfg.weight()})
			}
		}

		return EdgeSet{N: n, Edges: edges}, nil
	}
}
