// SPDX-License-Identifier: MIT
// Package: sparseprim/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - CenterVertex (0) is the hub; leaves are 1..n-1.
//   - Emits edges (0, i) for i=1..n-1 in increasing order.
//
// Complexity:
//   - Time: O(n-1) edges.
//   - Space: O(n) for the edge list.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sparseprim/loader"
)

// Star returns a Constructor that builds a star with n-1 leaves around CenterVertex.
func Star(n int) Constructor {
	return func(cfg builderConfig) (EdgeSet, error) {
		if n < MinStarNodes {
			return EdgeSet{}, fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		edges := make([]loader.Edge, 0, n-1)
		for leaf := 1; leaf < n; leaf++ {
			edges = append(edges, loader.Edge{U: CenterVertex, V: leaf, W: cfg.weight()})
		}

		return EdgeSet{N: n, Edges: edges}, nil
	}
}
