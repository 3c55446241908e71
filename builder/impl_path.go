// SPDX-License-Identifier: MIT
// Package: sparseprim/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1, i) for i=1..n-1 in stable increasing order.
//   - Weight policy: cfg.weightFn(cfg.rng) per edge.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n-1) edges.
//   - Space: O(n) for the edge list.
//
// Determinism:
//   - Deterministic edge emission order by increasing i.
//   - Deterministic weights given fixed cfg.rng/weightFn.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sparseprim/loader"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(cfg builderConfig) (EdgeSet, error) {
		if n < MinPathNodes {
			return EdgeSet{}, fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		edges := make([]loader.Edge, 0, n-1)
		// Emit path edges 0-1-2-...-(n-1) in stable order.
		for i := 1; i < n; i++ {
			edges = append(edges, loader.Edge{U: i - 1, V: i, W: cfg.weight()})
		}

		return EdgeSet{N: n, Edges: edges}, nil
	}
}
