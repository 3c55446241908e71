// SPDX-License-Identifier: MIT

package mst

import "github.com/katalvlaran/sparseprim/sparse"

// Candidate is the best known edge connecting an unvisited vertex to the
// growing tree. It is always stored in a vector indexed by that unvisited
// vertex: Parent is the tree-side endpoint and Weight the edge weight.
type Candidate struct {
	Parent int
	Weight float64
}

// SelectFirst returns lhs unconditionally. It resolves duplicate coordinates
// when the candidate matrix is bulk-built, so the first-listed edge wins.
func SelectFirst(lhs, _ Candidate) Candidate { return lhs }

// ProjectWeight extracts the scalar weight used for ranking.
func ProjectWeight(c Candidate) float64 { return c.Weight }

// CombineMin returns rhs if rhs.Weight < lhs.Weight, else lhs.
// Equal weights keep lhs, the previously retained candidate.
func CombineMin(lhs, rhs Candidate) Candidate {
	if rhs.Weight < lhs.Weight {
		return rhs
	}

	return lhs
}

// Operator values in the form the sparse kernels accept.
var (
	selectFirstOp   sparse.BinaryOp[Candidate, Candidate, Candidate] = SelectFirst
	projectWeightOp sparse.UnaryOp[Candidate, float64]               = ProjectWeight
	combineMinOp    sparse.BinaryOp[Candidate, Candidate, Candidate] = CombineMin
)
