// SPDX-License-Identifier: MIT

// Package sparse: Matrix is a row-compressed sparse matrix. Each row is a
// sorted sparse vector, which makes row extraction (the only access pattern
// the frontier algorithms need) a straight copy.
package sparse

import (
	"fmt"
	"sort"
)

// Matrix stores the present entries of an nrows×ncols matrix, row by row.
type Matrix[T any] struct {
	nrows, ncols int
	rows         []Vector[T] // rows[i] has length ncols
}

// NewMatrix creates an empty nrows×ncols matrix.
// Returns ErrInvalidDimensions if either dimension is not positive.
// Complexity: O(nrows) for the row headers.
func NewMatrix[T any](nrows, ncols int) (*Matrix[T], error) {
	if nrows <= 0 || ncols <= 0 {
		return nil, sparseErrorf(fmt.Sprintf("NewMatrix(%d,%d)", nrows, ncols), ErrInvalidDimensions)
	}
	rows := make([]Vector[T], nrows)
	for i := range rows {
		rows[i].n = ncols
	}

	return &Matrix[T]{nrows: nrows, ncols: ncols, rows: rows}, nil
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.nrows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.ncols }

// Nvals returns the number of stored entries.
// Complexity: O(nrows).
func (m *Matrix[T]) Nvals() int {
	total := 0
	for i := range m.rows {
		total += len(m.rows[i].idx)
	}

	return total
}

// RowNvals returns the number of stored entries in row i (0 for a bad index).
func (m *Matrix[T]) RowNvals(i int) int {
	if i < 0 || i >= m.nrows {
		return 0
	}

	return len(m.rows[i].idx)
}

// checkRow validates 0 ≤ i < nrows.
func (m *Matrix[T]) checkRow(method string, i, j int) error {
	if i < 0 || i >= m.nrows || j < 0 || j >= m.ncols {
		return sparseErrorf(fmt.Sprintf("Matrix.%s(%d,%d)", method, i, j), ErrOutOfRange)
	}

	return nil
}

// SetElement stores x at (i, j), overwriting any previous entry.
func (m *Matrix[T]) SetElement(i, j int, x T) error {
	if err := m.checkRow("SetElement", i, j); err != nil {
		return err
	}

	return m.rows[i].SetElement(j, x)
}

// ExtractElement returns the entry at (i, j), or ErrNoValue when absent.
func (m *Matrix[T]) ExtractElement(i, j int) (T, error) {
	var zero T
	if err := m.checkRow("ExtractElement", i, j); err != nil {
		return zero, err
	}
	x, err := m.rows[i].ExtractElement(j)
	if err != nil {
		return zero, sparseErrorf(fmt.Sprintf("Matrix.ExtractElement(%d,%d)", i, j), ErrNoValue)
	}

	return x, nil
}

// Tuples returns all stored entries as parallel (I, J, X) slices in
// row-major order.
// Complexity: O(nrows + nvals).
func (m *Matrix[T]) Tuples() ([]int, []int, []T) {
	nv := m.Nvals()
	I := make([]int, 0, nv)
	J := make([]int, 0, nv)
	X := make([]T, 0, nv)
	for i := range m.rows {
		r := &m.rows[i]
		for k := range r.idx {
			I = append(I, i)
			J = append(J, r.idx[k])
			X = append(X, r.val[k])
		}
	}

	return I, J, X
}

// EachInRow calls fn for every stored entry of row i in increasing column
// order, stopping early when fn returns false.
func (m *Matrix[T]) EachInRow(i int, fn func(j int, x T) bool) error {
	if err := m.checkRow("EachInRow", i, 0); err != nil {
		return err
	}
	m.rows[i].Each(fn)

	return nil
}

// Build constructs an nrows×ncols matrix from parallel tuple slices.
// Duplicate (i, j) pairs are folded in input order with dup(earlier, later),
// so First keeps the first-listed value and Second the last one.
//
// Steps:
//  1. Validate dimensions, tuple lengths and every index.
//  2. Stable-sort the tuple permutation by (i, j).
//  3. Walk the sorted permutation, folding equal keys through dup.
//
// Complexity: O(t log t) for t tuples; O(nrows + t) memory.
func Build[T any](nrows, ncols int, I, J []int, X []T, dup BinaryOp[T, T, T]) (*Matrix[T], error) {
	m, err := NewMatrix[T](nrows, ncols)
	if err != nil {
		return nil, sparseErrorf("Build", err)
	}
	if len(I) != len(J) || len(J) != len(X) {
		return nil, sparseErrorf("Build", ErrTupleLength)
	}
	if dup == nil {
		return nil, sparseErrorf("Build", ErrNilOperand)
	}
	for k := range I {
		if I[k] < 0 || I[k] >= nrows || J[k] < 0 || J[k] >= ncols {
			return nil, sparseErrorf(fmt.Sprintf("Build: tuple %d (%d,%d)", k, I[k], J[k]), ErrOutOfRange)
		}
	}

	// Sort a permutation instead of the caller's slices; stability keeps
	// duplicates in input order for dup.
	perm := make([]int, len(I))
	for k := range perm {
		perm[k] = k
	}
	sort.SliceStable(perm, func(a, b int) bool {
		pa, pb := perm[a], perm[b]
		if I[pa] != I[pb] {
			return I[pa] < I[pb]
		}
		return J[pa] < J[pb]
	})

	var row *Vector[T]
	for _, p := range perm {
		row = &m.rows[I[p]]
		last := len(row.idx) - 1
		if last >= 0 && row.idx[last] == J[p] {
			row.val[last] = dup(row.val[last], X[p])
			continue
		}
		row.idx = append(row.idx, J[p])
		row.val = append(row.val, X[p])
	}

	return m, nil
}
