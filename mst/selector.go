// SPDX-License-Identifier: MIT

package mst

import (
	"fmt"

	"github.com/katalvlaran/sparseprim/sparse"
)

// ArgMin returns the index of the smallest stored value in v.
//
// The scan walks stored entries in increasing index order and replaces the
// incumbent only on a strictly smaller value, so ties go to the smallest index.
// An empty or nil vector is an invariant breach and yields ErrPreconditionViolation.
//
// Complexity: O(nnz(v)).
func ArgMin(v *sparse.Vector[float64]) (int, error) {
	if v == nil || v.Nvals() == 0 {
		return 0, fmt.Errorf("ArgMin: %w", ErrPreconditionViolation)
	}

	best, bestW := -1, 0.0
	v.Each(func(i int, w float64) bool {
		if best < 0 || w < bestW {
			best, bestW = i, w
		}
		return true
	})

	return best, nil
}
