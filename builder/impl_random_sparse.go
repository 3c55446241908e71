// SPDX-License-Identifier: MIT
// Package: sparseprim/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - The weight of a kept edge is drawn right after its Bernoulli trial.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(kept edges).
//
// Determinism:
//   - Stable trial order: for each i asc, j asc (j>i).
//   - Deterministic outcomes for fixed seed/options due to fixed trial order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sparseprim/loader"
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) (EdgeSet, error) {
		// 1) Validate parameters early (fail fast).
		if n < MinRandomSparseNodes {
			return EdgeSet{}, fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomSparse, n, MinRandomSparseNodes, ErrTooFewVertices)
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return EdgeSet{}, err
		}
		// RNG is only required when 0 < p < 1 (true stochastic sampling).
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return EdgeSet{}, fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		// 2) Run the trials in fixed order.
		var edges []loader.Edge
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !keepEdge(cfg, p) {
					continue
				}
				edges = append(edges, loader.Edge{U: i, V: j, W: cfg.weight()})
			}
		}

		return EdgeSet{N: n, Edges: edges}, nil
	}
}

// keepEdge decides one Bernoulli trial. p=0 and p=1 never consume the RNG.
func keepEdge(cfg builderConfig, p float64) bool {
	switch {
	case p <= MinProbability:
		return false
	case p >= MaxProbability:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
