// SPDX-License-Identifier: MIT
// Package: mst
//
// Purpose:
//   - Helpers that interpret a parent vector against its source matrix:
//     edge listing, root discovery and structural validation.

package mst

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/sparseprim/sparse"
)

// ErrInvalidForest indicates a parent vector that is not a spanning forest of
// its graph: a missing edge, a cycle, two roots in one component, or a total
// weight that disagrees with the edges.
var ErrInvalidForest = errors.New("mst: parent vector is not a spanning forest of the graph")

// weightTolerance is the relative tolerance ValidateForest allows between the
// reported total and the recomputed sum of forest edge weights.
const weightTolerance = 1e-9

// Edge is one oriented forest edge: From is the parent, To the child.
type Edge struct {
	From, To int
	Weight   float64
}

// ForestEdges lists (parents[x], x, A(parents[x], x)) in increasing x.
// Returns ErrInvalidForest if parents does not match g in size or refers to an
// edge g does not store.
// Complexity: O(nnz(parents) · log deg).
func ForestEdges(g *sparse.Matrix[float64], parents *sparse.Vector[int]) ([]Edge, error) {
	if err := sparse.ValidateSquare(g); err != nil {
		return nil, fmt.Errorf("ForestEdges: %w: %w", ErrInvalidGraph, err)
	}
	if parents == nil || parents.Size() != g.Rows() {
		return nil, fmt.Errorf("ForestEdges: parent vector does not match graph size %d: %w", g.Rows(), ErrInvalidForest)
	}

	out := make([]Edge, 0, parents.Nvals())
	var err error
	parents.Each(func(x, p int) bool {
		var w float64
		w, err = g.ExtractElement(p, x)
		if err != nil {
			err = fmt.Errorf("ForestEdges: edge (%d,%d): %w: %w", p, x, ErrInvalidForest, err)
			return false
		}
		out = append(out, Edge{From: p, To: x, Weight: w})
		return true
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Roots returns the vertices with no parent entry in increasing order.
// Complexity: O(n).
func Roots(parents *sparse.Vector[int]) []int {
	if parents == nil {
		return nil
	}
	roots := make([]int, 0)
	for i := 0; i < parents.Size(); i++ {
		if !parents.Has(i) {
			roots = append(roots, i)
		}
	}

	return roots
}

// ValidateForest checks that parents is a spanning forest of g with weight total.
//
// Steps:
//  1. Every parent edge exists in g (ForestEdges).
//  2. Following parents from any vertex reaches a root within n steps (no cycles).
//  3. No stored entry of g connects two different trees (one root per component).
//  4. The edge weights sum to total within a relative tolerance.
//
// Minimality is not checked.
// Complexity: O(n + nnz(g)) with memoized roots.
func ValidateForest(g *sparse.Matrix[float64], parents *sparse.Vector[int], total float64) error {
	// 1. Edge existence.
	edges, err := ForestEdges(g, parents)
	if err != nil {
		return fmt.Errorf("ValidateForest: %w", err)
	}
	n := g.Rows()

	// 2. Resolve every vertex to its root; -1 means unresolved.
	root := make([]int, n)
	for i := range root {
		root[i] = -1
	}
	path := make([]int, 0, n)
	for x := 0; x < n; x++ {
		path = path[:0]
		cur := x
		for root[cur] < 0 {
			if len(path) > n {
				return fmt.Errorf("ValidateForest: cycle through vertex %d: %w", x, ErrInvalidForest)
			}
			path = append(path, cur)
			p, perr := parents.ExtractElement(cur)
			if perr != nil {
				// cur has no parent: it is a root.
				root[cur] = cur
				break
			}
			cur = p
		}
		for _, v := range path {
			root[v] = root[cur]
		}
	}

	// 3. One tree per component.
	for i := 0; i < n; i++ {
		var bad error
		_ = g.EachInRow(i, func(j int, _ float64) bool {
			if root[i] != root[j] {
				bad = fmt.Errorf("ValidateForest: edge (%d,%d) joins roots %d and %d: %w",
					i, j, root[i], root[j], ErrInvalidForest)
				return false
			}
			return true
		})
		if bad != nil {
			return bad
		}
	}

	// 4. Weight agreement.
	var sum float64
	for _, e := range edges {
		sum += e.Weight
	}
	if math.Abs(sum-total) > weightTolerance*math.Max(1, math.Abs(total)) {
		return fmt.Errorf("ValidateForest: edges sum to %v, reported %v: %w", sum, total, ErrInvalidForest)
	}

	return nil
}
