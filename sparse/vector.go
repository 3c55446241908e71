// SPDX-License-Identifier: MIT

// Package sparse: Vector is a length-n sparse vector with entries kept in
// increasing index order, so every scan is deterministic and merges are linear.
package sparse

import (
	"fmt"
	"sort"
)

// Vector stores only present entries of a length-n vector.
// idx is strictly increasing; val[k] is the value stored at idx[k].
type Vector[T any] struct {
	n   int
	idx []int
	val []T
}

// NewVector creates an empty vector of length n.
// Returns ErrInvalidDimensions if n <= 0.
// Complexity: O(1).
func NewVector[T any](n int) (*Vector[T], error) {
	if n <= 0 {
		return nil, sparseErrorf(fmt.Sprintf("NewVector(%d)", n), ErrInvalidDimensions)
	}

	return &Vector[T]{n: n}, nil
}

// Size returns the vector length n.
func (v *Vector[T]) Size() int { return v.n }

// Nvals returns the number of stored entries.
func (v *Vector[T]) Nvals() int { return len(v.idx) }

// checkIndex validates 0 ≤ i < n.
func (v *Vector[T]) checkIndex(method string, i int) error {
	if i < 0 || i >= v.n {
		return sparseErrorf(fmt.Sprintf("Vector.%s(%d)", method, i), ErrOutOfRange)
	}

	return nil
}

// search returns the position of i in idx and whether it is present.
// Complexity: O(log k).
func (v *Vector[T]) search(i int) (int, bool) {
	pos := sort.SearchInts(v.idx, i)

	return pos, pos < len(v.idx) && v.idx[pos] == i
}

// SetElement stores x at index i, overwriting any previous entry.
// Complexity: O(log k) lookup plus O(k) shift on insertion.
func (v *Vector[T]) SetElement(i int, x T) error {
	if err := v.checkIndex("SetElement", i); err != nil {
		return err
	}
	pos, ok := v.search(i)
	if ok {
		v.val[pos] = x
		return nil
	}
	// Fast path: appending past the last index keeps the slices sorted.
	if pos == len(v.idx) {
		v.idx = append(v.idx, i)
		v.val = append(v.val, x)
		return nil
	}
	var zero T
	v.idx = append(v.idx, 0)
	v.val = append(v.val, zero)
	copy(v.idx[pos+1:], v.idx[pos:])
	copy(v.val[pos+1:], v.val[pos:])
	v.idx[pos] = i
	v.val[pos] = x

	return nil
}

// ExtractElement returns the entry at index i.
// Returns ErrOutOfRange for a bad index and ErrNoValue when nothing is stored.
func (v *Vector[T]) ExtractElement(i int) (T, error) {
	var zero T
	if err := v.checkIndex("ExtractElement", i); err != nil {
		return zero, err
	}
	pos, ok := v.search(i)
	if !ok {
		return zero, sparseErrorf(fmt.Sprintf("Vector.ExtractElement(%d)", i), ErrNoValue)
	}

	return v.val[pos], nil
}

// Has reports whether an entry is stored at i. Out-of-range indices report false.
func (v *Vector[T]) Has(i int) bool {
	if i < 0 || i >= v.n {
		return false
	}
	_, ok := v.search(i)

	return ok
}

// RemoveElement deletes the entry at i if present.
func (v *Vector[T]) RemoveElement(i int) error {
	if err := v.checkIndex("RemoveElement", i); err != nil {
		return err
	}
	pos, ok := v.search(i)
	if !ok {
		return nil
	}
	v.idx = append(v.idx[:pos], v.idx[pos+1:]...)
	v.val = append(v.val[:pos], v.val[pos+1:]...)

	return nil
}

// Clear removes all entries but keeps the length and the backing capacity.
func (v *Vector[T]) Clear() {
	v.idx = v.idx[:0]
	v.val = v.val[:0]
}

// Tuples returns copies of the stored indices and values in increasing index order.
// Complexity: O(k).
func (v *Vector[T]) Tuples() ([]int, []T) {
	idx := make([]int, len(v.idx))
	val := make([]T, len(v.val))
	copy(idx, v.idx)
	copy(val, v.val)

	return idx, val
}

// Each calls fn for every stored entry in increasing index order and stops
// early when fn returns false.
func (v *Vector[T]) Each(fn func(i int, x T) bool) {
	for k := range v.idx {
		if !fn(v.idx[k], v.val[k]) {
			return
		}
	}
}

// Clone returns a deep copy of the vector structure (values are copied by assignment).
func (v *Vector[T]) Clone() *Vector[T] {
	idx, val := v.Tuples()

	return &Vector[T]{n: v.n, idx: idx, val: val}
}

// String renders the vector as "{i:x, ...}" for debugging and examples.
func (v *Vector[T]) String() string {
	s := "{"
	for k := range v.idx {
		if k > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%d:%v", v.idx[k], v.val[k])
	}

	return s + "}"
}

// replaceContents swaps in freshly built slices (used by bulk writes).
func (v *Vector[T]) replaceContents(idx []int, val []T) {
	v.idx = idx
	v.val = val
}
