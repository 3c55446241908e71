// Package mst computes Minimum Spanning Forests over weighted undirected graphs
// stored as square sparse matrices (*sparse.Matrix[float64]).
//
// What & Why
//
//   - A Minimum Spanning Forest is the union of a Minimum Spanning Tree per
//     connected component. Disconnected input is not an error here: every
//     component simply gets its own root.
//
//   - The forest is reported as a parent vector (*sparse.Vector[int]): parents[x]
//     is the tree-side endpoint of the edge that admitted x. Component roots have
//     no entry. A total weight accompanies it.
//
// Algorithms Provided
//
//   - Prim(g, opts...) / PrimContext(ctx, g, opts...)
//
//   - Strategy: "algebraic Prim". Instead of a heap, the frontier is a sparse
//     vector d of Candidate{Parent, Weight} values indexed by the unvisited
//     endpoint. Each round projects d to weights under the complement of the
//     visited mask, admits the arg-min vertex u, extracts row u of the
//     candidate matrix, and merges it into d with CombineMin under the same
//     complemented mask. Roots are scanned in increasing id order.
//
//   - Complexity: O(n) rounds, each O(nnz(d) + nnz(row u)). No heap.
//
//   - Kruskal(g, opts...) / KruskalContext(ctx, g, opts...)
//
//   - Strategy: stable sort of stored edges by weight, union-find with path
//     compression and union by rank, then orientation of the chosen edges from
//     the smallest id of every component. Same return shape as Prim.
//
//   - Complexity: O(E log E + α(V)·E).
//
//   - Compute(ctx, g, opts...) dispatches on Options.Method; ComputeBatch runs
//     many graphs concurrently with bounded parallelism.
//
// Determinism
//
//   - CombineMin keeps the incumbent on equal weights and ArgMin keeps the
//     smallest index on equal weights, so repeated runs on the same matrix yield
//     identical parents and totals.
//
// Error Conditions
//
//   - ErrInvalidGraph: nil, non-square or empty matrix, or a NaN/±Inf weight.
//   - ErrPreconditionViolation: ArgMin called on an empty vector.
//   - ErrNumericOverflow: the float64 accumulator left the finite range.
//   - ErrUnknownMethod: Compute with a method other than prim or kruskal.
//   - ctx.Err(): cancellation observed between rounds.
//
// On any error no partial parent vector is returned.
package mst
