// Package mst provides an implementation of Kruskal's algorithm over the
// sparse adjacency matrix, returning the same parent-vector shape as Prim.
package mst

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/sparseprim/sparse"
	"github.com/sirupsen/logrus"
)

// ctxCheckEvery is how many edges Kruskal scans between cancellation checks.
const ctxCheckEvery = 1024

// Kruskal computes a Minimum Spanning Forest of g with a background context.
// See KruskalContext.
func Kruskal(g *sparse.Matrix[float64], opts ...Option) (*sparse.Vector[int], float64, error) {
	return KruskalContext(context.Background(), g, opts...)
}

// KruskalContext computes a Minimum Spanning Forest of g using a disjoint-set
// (union-find) structure with path compression and union by rank.
// Every stored entry (i,j) with i != j is treated as an undirected edge.
//
// Error Conditions:
//   - ErrInvalidGraph    : g is nil, non-square, empty, or stores NaN/±Inf.
//   - ErrNumericOverflow : the running total became ±Inf.
//   - ctx.Err()          : cancellation observed while scanning edges.
//
// Steps:
//  1. Validate g.
//  2. Collect stored entries, skipping self-loops (i == j).
//  3. Sort edges by ascending Weight (sort.SliceStable keeps row-major order on ties).
//  4. Initialize DSU slices parent[] and rank[].
//  5. For each edge (u,v): if find(u) != find(v), union and keep the edge.
//  6. Orient the kept edges: BFS from the smallest id of every component, so
//     roots match those Prim reports.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func KruskalContext(ctx context.Context, g *sparse.Matrix[float64], opts ...Option) (*sparse.Vector[int], float64, error) {
	o := resolve(opts)

	// 1. Validate.
	if err := validateGraph(g); err != nil {
		return nil, 0, fmt.Errorf("Kruskal: %w", err)
	}
	n := g.Rows()

	// 2. Collect edges, skipping self-loops entirely.
	I, J, X := g.Tuples()
	edges := make([]Edge, 0, len(I))
	for k := range I {
		if I[k] == J[k] {
			continue
		}
		edges = append(edges, Edge{From: I[k], To: J[k], Weight: X[k]})
	}

	// 3. Stable sort by weight.
	sort.SliceStable(edges, func(a, b int) bool {
		return edges[a].Weight < edges[b].Weight
	})

	// 4. Disjoint-set forest; parent[v] == v marks a set root.
	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}
	find := func(u int) int {
		for parent[u] != u {
			// Path compression: point u at its grandparent.
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(ru, rv int) {
		if rank[ru] < rank[rv] {
			parent[ru] = rv
			return
		}
		parent[rv] = ru
		if rank[ru] == rank[rv] {
			rank[ru]++
		}
	}

	// 5. Keep every edge joining two different sets.
	adj := make([][]Edge, n)
	var (
		total float64
		kept  int
	)
	for k, e := range edges {
		if k%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, 0, fmt.Errorf("Kruskal: %w", err)
			}
		}
		ru, rv := find(e.From), find(e.To)
		if ru == rv {
			continue
		}
		union(ru, rv)
		adj[e.From] = append(adj[e.From], e)
		adj[e.To] = append(adj[e.To], Edge{From: e.To, To: e.From, Weight: e.Weight})
		if err := addWeight(&total, e.Weight); err != nil {
			return nil, 0, fmt.Errorf("Kruskal: %w", err)
		}
		kept++
		if kept == n-1 {
			break
		}
	}

	// 6. Orient from the smallest id of each component.
	parents, err := orientForest(n, adj)
	if err != nil {
		return nil, 0, fmt.Errorf("Kruskal: %w", err)
	}

	o.Logger.WithFields(logrus.Fields{
		"vertices":   n,
		"components": n - kept,
		"total":      total,
	}).Debug("mst: kruskal finished")

	return parents, total, nil
}

// orientForest turns an undirected forest (adjacency lists) into a parent
// vector by breadth-first search from every unvisited vertex in id order.
func orientForest(n int, adj [][]Edge) (*sparse.Vector[int], error) {
	parents, err := sparse.NewVector[int](n)
	if err != nil {
		return nil, err
	}
	seen := make([]bool, n)
	queue := make([]int, 0, n)
	for root := 0; root < n; root++ {
		if seen[root] {
			continue
		}
		seen[root] = true
		queue = append(queue[:0], root)
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, e := range adj[cur] {
				if seen[e.To] {
					continue
				}
				seen[e.To] = true
				if err = parents.SetElement(e.To, cur); err != nil {
					return nil, err
				}
				queue = append(queue, e.To)
			}
		}
	}

	return parents, nil
}
