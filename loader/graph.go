// SPDX-License-Identifier: MIT

// Package loader turns edge lists into square sparse adjacency matrices.
package loader

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sparseprim/sparse"
	"github.com/sirupsen/logrus"
)

// Edge is one weighted edge between 0-based vertex ids.
type Edge struct {
	U, V int
	W    float64
}

// BuildGraph constructs the adjacency matrix for edges.
//
// Steps:
//  1. Validate every edge: ids ≥ 0 (ErrInvalidVertex), finite weight (ErrInvalidWeight).
//  2. Drop edges touching ids ≥ WithVertexLimit.
//  3. Size the matrix: WithVertexCount, else max(id)+1; capped by the limit.
//     Ids outside a fixed count are ErrInvalidVertex; no vertex at all is ErrEmptyGraph.
//  4. Drop self-loops; emit (u,v) and, unless directed, (v,u).
//  5. Bulk-build with sparse.First so the first-listed duplicate wins.
//
// Complexity: O(E log E).
func BuildGraph(edges []Edge, opts ...Option) (*sparse.Matrix[float64], error) {
	return buildGraph(edges, newLoaderConfig(opts...), false)
}

// buildGraph is BuildGraph with a resolved config; forceMirror overrides
// cfg.directed (symmetric MatrixMarket input).
func buildGraph(edges []Edge, cfg loaderConfig, forceMirror bool) (*sparse.Matrix[float64], error) {
	// 1–2. Validate, apply the vertex limit and track the largest id.
	kept := make([]Edge, 0, len(edges))
	maxID := -1
	for k, e := range edges {
		if e.U < 0 || e.V < 0 {
			return nil, fmt.Errorf("BuildGraph: edge %d (%d,%d): %w", k, e.U, e.V, ErrInvalidVertex)
		}
		if math.IsNaN(e.W) || math.IsInf(e.W, 0) {
			return nil, fmt.Errorf("BuildGraph: edge %d weight %v: %w", k, e.W, ErrInvalidWeight)
		}
		if cfg.vertexLimit > 0 && (e.U >= cfg.vertexLimit || e.V >= cfg.vertexLimit) {
			continue
		}
		if cfg.vertexCount > 0 && (e.U >= cfg.vertexCount || e.V >= cfg.vertexCount) {
			return nil, fmt.Errorf("BuildGraph: edge %d (%d,%d) outside %d vertices: %w",
				k, e.U, e.V, cfg.vertexCount, ErrInvalidVertex)
		}
		maxID = max(maxID, e.U, e.V)
		kept = append(kept, e)
	}

	// 3. Size.
	n := maxID + 1
	if cfg.vertexCount > 0 {
		n = cfg.vertexCount
	}
	if cfg.vertexLimit > 0 && n > cfg.vertexLimit {
		n = cfg.vertexLimit
	}
	if n <= 0 {
		return nil, fmt.Errorf("BuildGraph: %d edges in, none kept: %w", len(edges), ErrEmptyGraph)
	}

	// 4. Emit tuples.
	mirror := forceMirror || !cfg.directed
	I := make([]int, 0, 2*len(kept))
	J := make([]int, 0, 2*len(kept))
	X := make([]float64, 0, 2*len(kept))
	loops := 0
	for _, e := range kept {
		if e.U == e.V {
			loops++
			continue
		}
		I, J, X = append(I, e.U), append(J, e.V), append(X, e.W)
		if mirror {
			I, J, X = append(I, e.V), append(J, e.U), append(X, e.W)
		}
	}

	// 5. Build.
	g, err := sparse.Build(n, n, I, J, X, sparse.First[float64])
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg.logger.WithFields(logrus.Fields{
		"vertices":   n,
		"edges_in":   len(edges),
		"dropped":    len(edges) - len(kept),
		"self_loops": loops,
		"stored":     g.Nvals(),
		"mirrored":   mirror,
	}).Debug("loader: graph built")

	return g, nil
}
