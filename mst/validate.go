// SPDX-License-Identifier: MIT

package mst

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sparseprim/sparse"
)

// validateGraph checks that g is a non-nil, non-empty square matrix whose
// stored weights are all finite.
// Complexity: O(n + nnz(g)).
func validateGraph(g *sparse.Matrix[float64]) error {
	if err := sparse.ValidateSquare(g); err != nil {
		return fmt.Errorf("validateGraph: %w: %w", ErrInvalidGraph, err)
	}
	if g.Rows() == 0 {
		return fmt.Errorf("validateGraph: no vertices: %w", ErrInvalidGraph)
	}
	for i := 0; i < g.Rows(); i++ {
		var bad error
		_ = g.EachInRow(i, func(j int, w float64) bool {
			if math.IsNaN(w) || math.IsInf(w, 0) {
				bad = fmt.Errorf("validateGraph: weight %v at (%d,%d): %w", w, i, j, ErrInvalidGraph)
				return false
			}
			return true
		})
		if bad != nil {
			return bad
		}
	}

	return nil
}

// addWeight accumulates w into *total and reports overflow once the sum
// leaves the finite float64 range.
func addWeight(total *float64, w float64) error {
	*total += w
	if math.IsInf(*total, 0) {
		return fmt.Errorf("addWeight(%v): %w", w, ErrNumericOverflow)
	}

	return nil
}
