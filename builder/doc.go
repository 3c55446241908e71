// Package builder generates deterministic edge lists for well-known graph
// topologies and turns them into sparse adjacency matrices through the loader
// package. It supplies fixtures for tests and benchmarks and backs the
// "generate" command of the sparseprim CLI.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds the RNG and the weight function.
//   - Constructors (Constructor implementations):
//     – Path, Cycle, Star, Complete, Grid, RandomSparse.
//   - Edge‐weight distributions (WeightFn implementations):
//     – DefaultWeightFn:     constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:    fixed user-provided value.
//     – UniformWeightFn:     uniform ∼U[min,max).
//     – IntegerWeightFn:     integers in [min,max]; small ranges force ties.
//     – ExponentialWeightFn: exponential ∼Exp(rate).
//   - Entry points:
//     – BuildEdges:  run constructors and merge their edge lists.
//     – BuildGraph:  BuildEdges followed by loader.BuildGraph.
//
// Guarantees:
//
//   - Vertex ids are 0-based ints; every edge is emitted once with U < V.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Structured runtime errors wrapping sentinel values for errors.Is.
//   - Documented algorithmic complexity per constructor.
//   - Same options, seed and constructor order ⇒ identical output.
package builder
