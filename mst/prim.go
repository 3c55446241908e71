// Package mst provides the algebraic formulation of Prim's algorithm.
// It grows one tree per connected component by relaxing a sparse frontier
// vector with bulk sparse operations instead of a heap.
package mst

import (
	"context"
	"fmt"

	"github.com/katalvlaran/sparseprim/sparse"
	"github.com/sirupsen/logrus"
)

// Prim computes a Minimum Spanning Forest of g with a background context.
// See PrimContext.
func Prim(g *sparse.Matrix[float64], opts ...Option) (*sparse.Vector[int], float64, error) {
	return PrimContext(context.Background(), g, opts...)
}

// PrimContext computes a Minimum Spanning Forest of the weighted adjacency
// matrix g. For undirected graphs g must store both (u,v) and (v,u); the
// engine itself does not symmetrize.
//
// Error Conditions:
//   - ErrInvalidGraph    : g is nil, non-square, empty, or stores NaN/±Inf.
//   - ErrNumericOverflow : the running total became ±Inf.
//   - ctx.Err()          : cancellation observed between rounds.
//
// Steps:
//  1. Validate g and build the candidate matrix C with C(i,j) = (i, A(i,j)).
//  2. Scan roots 0..n-1 in increasing order, skipping visited vertices.
//  3. For each root: mark it visited and seed d with row(C, root).
//  4. Repeat until the component is exhausted:
//     a. weights<¬visited, replace> = ProjectWeight(d); empty → next root.
//     b. u = ArgMin(weights); read d[u] = (parent, w).
//     c. total += w; parents[u] = parent; mark u visited.
//     d. d<¬visited> = CombineMin(d, row(C, u)).
//  5. Return parents and total.
//
// Visited keys may linger in d after step 4d; the complemented mask in step 4a
// filters them out, so they are never read again.
//
// Complexity: O(n) rounds of O(nnz(d) + nnz(row u)); O(n + nnz(A)) memory.
func PrimContext(ctx context.Context, g *sparse.Matrix[float64], opts ...Option) (*sparse.Vector[int], float64, error) {
	o := resolve(opts)

	// 1. Validate and build the candidate matrix.
	if err := validateGraph(g); err != nil {
		return nil, 0, fmt.Errorf("Prim: %w", err)
	}
	c, err := candidateMatrix(g)
	if err != nil {
		return nil, 0, fmt.Errorf("Prim: %w", err)
	}

	run, err := newPrimRun(c)
	if err != nil {
		return nil, 0, fmt.Errorf("Prim: %w", err)
	}

	// 2. Scan roots in increasing id order.
	components := 0
	for root, ok := run.visited.NextUnset(0); ok; root, ok = run.visited.NextUnset(root + 1) {
		before := run.total
		admitted, err := run.grow(ctx, root)
		if err != nil {
			return nil, 0, fmt.Errorf("Prim: root %d: %w", root, err)
		}
		components++
		o.Logger.WithFields(logrus.Fields{
			"root":     root,
			"vertices": admitted,
			"weight":   run.total - before,
		}).Debug("mst: component spanned")
	}

	o.Logger.WithFields(logrus.Fields{
		"vertices":   c.Rows(),
		"components": components,
		"total":      run.total,
	}).Debug("mst: prim finished")

	return run.parents, run.total, nil
}

// candidateMatrix lifts every stored A(i,j) = w to C(i,j) = Candidate{i, w}.
// Duplicates cannot occur in a Matrix, but Build still needs a resolver;
// SelectFirst keeps the first-listed one.
func candidateMatrix(g *sparse.Matrix[float64]) (*sparse.Matrix[Candidate], error) {
	I, J, X := g.Tuples()
	vals := make([]Candidate, len(X))
	for k := range X {
		vals[k] = Candidate{Parent: I[k], Weight: X[k]}
	}

	return sparse.Build(g.Rows(), g.Cols(), I, J, vals, selectFirstOp)
}

// primRun is the state owned by one PrimContext call.
type primRun struct {
	c       *sparse.Matrix[Candidate]
	visited *sparse.Mask
	parents *sparse.Vector[int]
	d       *sparse.Vector[Candidate] // best candidate per unvisited vertex
	weights *sparse.Vector[float64]   // projection of d restricted to ¬visited
	row     *sparse.Vector[Candidate] // scratch for row(C, u)
	total   float64
}

func newPrimRun(c *sparse.Matrix[Candidate]) (*primRun, error) {
	n := c.Rows()
	visited, err := sparse.NewMask(n)
	if err != nil {
		return nil, err
	}
	// Sizes are already validated; these cannot fail.
	parents, _ := sparse.NewVector[int](n)
	d, _ := sparse.NewVector[Candidate](n)
	weights, _ := sparse.NewVector[float64](n)
	row, _ := sparse.NewVector[Candidate](n)

	return &primRun{c: c, visited: visited, parents: parents, d: d, weights: weights, row: row}, nil
}

// grow spans the component containing root and returns how many vertices it
// admitted, root included.
func (r *primRun) grow(ctx context.Context, root int) (int, error) {
	// 3. The root enters with no parent and contributes 0; d starts as its row.
	if err := r.visited.Set(root); err != nil {
		return 0, err
	}
	if err := sparse.ExtractRow(r.d, r.c, root); err != nil {
		return 0, err
	}
	admitted := 1

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		// 4a. Restrict to unvisited vertices and project to weights.
		if err := sparse.Apply(r.weights, r.visited, sparse.DescRC, projectWeightOp, r.d); err != nil {
			return 0, err
		}
		if r.weights.Nvals() == 0 {
			return admitted, nil
		}

		// 4b. Select the global minimum.
		u, err := ArgMin(r.weights)
		if err != nil {
			return 0, err
		}
		cand, err := r.d.ExtractElement(u)
		if err != nil {
			return 0, err
		}

		// 4c. Admit u.
		if err = addWeight(&r.total, cand.Weight); err != nil {
			return 0, err
		}
		if err = r.parents.SetElement(u, cand.Parent); err != nil {
			return 0, err
		}
		if err = r.visited.Set(u); err != nil {
			return 0, err
		}
		admitted++

		// 4d. Relax the frontier with u's outgoing edges.
		if err = sparse.ExtractRow(r.row, r.c, u); err != nil {
			return 0, err
		}
		if err = sparse.EWiseAdd(r.d, r.visited, sparse.DescC, combineMinOp, r.d, r.row); err != nil {
			return 0, err
		}
	}
}
