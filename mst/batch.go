// SPDX-License-Identifier: MIT

package mst

import (
	"context"
	"fmt"
	"runtime"

	"github.com/katalvlaran/sparseprim/sparse"
	"golang.org/x/sync/errgroup"
)

// Result is the forest computed for one graph of a batch.
type Result struct {
	Parents     *sparse.Vector[int]
	TotalWeight float64
}

// ComputeBatch runs Compute on every graph with at most workers computations
// in flight (workers <= 0 means GOMAXPROCS). Results are returned in input
// order. The first failure cancels the remaining computations and no results
// are returned.
//
// Graphs are only read, so the same matrix may appear several times.
func ComputeBatch(ctx context.Context, graphs []*sparse.Matrix[float64], workers int, opts ...Option) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(graphs))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, g := range graphs {
		eg.Go(func() error {
			parents, total, err := Compute(egCtx, g, opts...)
			if err != nil {
				return fmt.Errorf("ComputeBatch: graph %d: %w", i, err)
			}
			results[i] = Result{Parents: parents, TotalWeight: total}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
