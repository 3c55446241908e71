// SPDX-License-Identifier: MIT

// Package sparse is the sparse matrix/vector store behind sparseprim's
// algebraic graph algorithms.
//
// What & Why:
//
//	Graph algorithms written "the GraphBLAS way" never walk pointers: they
//	extract rows of an adjacency matrix, merge vectors element-wise under a
//	mask and apply unary operators to every stored entry. This package offers
//	exactly that small surface, generic over the stored value type so a
//	caller can keep composite values (for example a (parent, weight) pair)
//	inside matrices and vectors without boxing.
//
// Containers:
//
//   - Vector[T]  - length-n vector storing only present entries, sorted by index.
//   - Matrix[T]  - n×m matrix stored as one sorted sparse row per row index.
//   - Mask       - boolean structure (bitset-backed) used as a write mask.
//
// Operations:
//
//   - Build(nrows, ncols, I, J, X, dup)  - bulk construction; duplicates are
//     folded left-to-right with dup(earlier, later).
//   - ExtractRow(w, A, i)                - w = A(i, :).
//   - Apply(w, mask, desc, op, u)        - w<mask> = op(u).
//   - EWiseAdd(w, mask, desc, op, u, v)  - w<mask> = u ⊕ v over the union of
//     the two structures; op resolves positions present in both.
//
// Write semantics (GraphBLAS-compatible):
//
//	Where the (possibly complemented) mask allows a position, w receives the
//	computed value, or loses its entry when the computation produced none.
//	Where the mask forbids a position, w keeps its previous entry unless the
//	descriptor requests Replace, in which case the entry is dropped.
//	A nil mask allows every position. The output may alias any input.
//
// Determinism:
//
//	Every operation visits indices in increasing order; no goroutines are
//	started. Given equal inputs the output structure and values are identical.
//
// Complexity:
//
//	SetElement/ExtractElement are O(log k) lookups plus O(k) for an insert in
//	the middle of a row; bulk operations are linear in the number of stored
//	entries they touch.
package sparse
