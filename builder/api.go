// SPDX-License-Identifier: MIT
// Package: sparseprim/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildEdges(bopts, cons...). Resolves cfg, runs cons in order.
//   - BuildGraph forwards the merged edge list to loader.BuildGraph.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical edge lists.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sparseprim/loader"
	"github.com/katalvlaran/sparseprim/sparse"
)

// EdgeSet is the output of a Constructor: a vertex count and the undirected
// edges over ids 0..N-1, each listed once (u < v).
type EdgeSet struct {
	N     int
	Edges []loader.Edge
}

// Constructor produces a deterministic EdgeSet from the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit edges in a stable, documented order.
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(cfg builderConfig) (EdgeSet, error)

// BuildEdges resolves the builder configuration from bopts and runs all
// constructors in order against the same config (and therefore the same RNG
// stream). The result is the concatenation of every edge list, with N the
// largest vertex count reported. Constructors share the id space, so combining
// Path(4) and Star(4) overlays both on vertices 0..3.
//
// Any constructor error is wrapped with the context "BuildEdges: %w" and
// returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
func BuildEdges(bopts []BuilderOption, cons ...Constructor) (EdgeSet, error) {
	cfg := newBuilderConfig(bopts...)

	var out EdgeSet
	for i, fn := range cons {
		if fn == nil {
			return EdgeSet{}, fmt.Errorf("BuildEdges: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		set, err := fn(cfg)
		if err != nil {
			return EdgeSet{}, fmt.Errorf("BuildEdges: %w", err)
		}
		if set.N > out.N {
			out.N = set.N
		}
		out.Edges = append(out.Edges, set.Edges...)
	}

	return out, nil
}

// BuildGraph runs BuildEdges and materializes the result as a symmetric
// sparse adjacency matrix sized to exactly N vertices. Loader options (limits,
// logger) are passed through; WithVertexCount is set from N and must not be
// overridden by the caller.
func BuildGraph(bopts []BuilderOption, lopts []loader.Option, cons ...Constructor) (*sparse.Matrix[float64], error) {
	set, err := BuildEdges(bopts, cons...)
	if err != nil {
		return nil, err
	}
	if set.N == 0 {
		return nil, fmt.Errorf("BuildGraph: no vertices: %w", ErrConstructFailed)
	}

	opts := make([]loader.Option, 0, len(lopts)+1)
	opts = append(opts, loader.WithVertexCount(set.N))
	opts = append(opts, lopts...)

	g, err := loader.BuildGraph(set.Edges, opts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Cycle(n)            n ≥ 3, edges (i, i+1) then closing (0, n-1).
// Path(n)             n ≥ 2, edges (i, i+1).
// Star(n)             n ≥ 2, hub CenterVertex, edges (0, i).
// Complete(n)         n ≥ 1, all pairs i < j.
// Grid(rows, cols)    rows, cols ≥ 1, ids r*cols+c, right then bottom neighbors.
// RandomSparse(n, p)  n ≥ 1, 0 ≤ p ≤ 1, each pair i < j kept with probability p.
