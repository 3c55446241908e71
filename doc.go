// Package sparseprim computes minimum spanning forests of weighted undirected
// graphs stored as sparse adjacency matrices, using Prim's algorithm phrased in
// sparse linear-algebra primitives.
//
// What is inside?
//
//	A small, deterministic engine plus the plumbing to feed it:
//		• Sparse store: vectors, matrices, masks, masked Apply and EWiseAdd
//		• MST engine: algebraic Prim with a (parent, weight) candidate monoid
//		• Reference Kruskal, forest validation and concurrent batch runs
//		• Loaders: edge lists, DIMACS .gr, MatrixMarket coordinate files
//		• Builders: paths, cycles, stars, complete graphs, grids, random graphs
//
// Under the hood, everything is organized under these subpackages:
//
//	sparse/  - Vector, Matrix, Mask, Descriptor, ExtractRow, Apply, EWiseAdd
//	mst/     - Candidate monoid, ArgMin, Prim, Kruskal, ComputeBatch, ValidateForest
//	loader/  - BuildGraph, ReadDIMACS, ReadMatrixMarket, WriteDIMACS, LoadFile
//	builder/ - deterministic edge-list generators for tests and benchmarks
//	cmd/sparseprim/ - the command line front end (mst, generate)
//
// Quick ASCII example:
//
//	    0 ──2── 1 ──3── 2
//
//	Prim from root 0 gives parents {1:0, 2:1} and total weight 5.
//
//	go get github.com/katalvlaran/sparseprim
package sparseprim
