// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Bulk vector kernels (ExtractRow, Apply, EWiseAdd) with GraphBLAS
//     masked-write semantics.
//   - Every kernel first computes its result into fresh slices and only then
//     merges it into the output, so the output may alias an input.
//
// Determinism & Performance:
//   - Single increasing-index pass per kernel; O(nnz(u) + nnz(v) + nnz(w)).

package sparse

import "fmt"

// validateMaskedOutput checks w and the optional mask against length n.
func validateMaskedOutput[T any](tag string, w *Vector[T], mask *Mask, n int) error {
	if w == nil {
		return sparseErrorf(tag, ErrNilOperand)
	}
	if w.n != n {
		return sparseErrorf(tag, ErrDimensionMismatch)
	}
	if mask != nil && mask.n != n {
		return sparseErrorf(tag, ErrDimensionMismatch)
	}

	return nil
}

// maskedWrite merges the computed entries (tIdx, tVal) into w under mask/desc.
//
//	mask allows i:  w(i) = t(i) if t has i, otherwise w loses i.
//	mask forbids i: w keeps its entry unless desc.Replace.
//
// Complexity: O(nnz(w) + nnz(t)).
func maskedWrite[T any](w *Vector[T], mask *Mask, desc Descriptor, tIdx []int, tVal []T) {
	// Unmasked, no-replace write: the result is exactly t.
	if mask == nil {
		w.replaceContents(tIdx, tVal)
		return
	}

	outIdx := make([]int, 0, len(tIdx)+len(w.idx))
	outVal := make([]T, 0, len(tIdx)+len(w.idx))

	a, b := 0, 0 // a walks w, b walks t
	var i int
	for a < len(w.idx) || b < len(tIdx) {
		switch {
		case b >= len(tIdx) || (a < len(w.idx) && w.idx[a] < tIdx[b]):
			// Only w has this index.
			i = w.idx[a]
			if !mask.allows(i, desc) && !desc.Replace {
				outIdx = append(outIdx, i)
				outVal = append(outVal, w.val[a])
			}
			a++
		case a >= len(w.idx) || tIdx[b] < w.idx[a]:
			// Only t has this index.
			i = tIdx[b]
			if mask.allows(i, desc) {
				outIdx = append(outIdx, i)
				outVal = append(outVal, tVal[b])
			}
			b++
		default:
			// Both have it.
			i = tIdx[b]
			if mask.allows(i, desc) {
				outIdx = append(outIdx, i)
				outVal = append(outVal, tVal[b])
			} else if !desc.Replace {
				outIdx = append(outIdx, i)
				outVal = append(outVal, w.val[a])
			}
			a++
			b++
		}
	}
	w.replaceContents(outIdx, outVal)
}

// ExtractRow overwrites w with row i of a: w = A(i, :).
// Returns ErrDimensionMismatch if w.Size() != a.Cols(), ErrOutOfRange for a bad row.
// Complexity: O(nnz(A(i,:))).
func ExtractRow[T any](w *Vector[T], a *Matrix[T], i int) error {
	tag := fmt.Sprintf("ExtractRow(%d)", i)
	if a == nil {
		return sparseErrorf(tag, ErrNilOperand)
	}
	if err := validateMaskedOutput(tag, w, nil, a.ncols); err != nil {
		return err
	}
	if i < 0 || i >= a.nrows {
		return sparseErrorf(tag, ErrOutOfRange)
	}
	idx, val := a.rows[i].Tuples()
	w.replaceContents(idx, val)

	return nil
}

// Apply computes w<mask> = op(u) over the stored entries of u.
// Returns ErrNilOperand for nil u/op/w and ErrDimensionMismatch on length differences.
// Complexity: O(nnz(u) + nnz(w)).
func Apply[X, Z any](w *Vector[Z], mask *Mask, desc Descriptor, op UnaryOp[X, Z], u *Vector[X]) error {
	const tag = "Apply"
	if u == nil || op == nil {
		return sparseErrorf(tag, ErrNilOperand)
	}
	if err := validateMaskedOutput(tag, w, mask, u.n); err != nil {
		return err
	}

	tIdx := make([]int, 0, len(u.idx))
	tVal := make([]Z, 0, len(u.idx))
	for k, i := range u.idx {
		// Skip positions the mask will discard anyway.
		if mask != nil && !mask.allows(i, desc) {
			continue
		}
		tIdx = append(tIdx, i)
		tVal = append(tVal, op(u.val[k]))
	}
	maskedWrite(w, mask, desc, tIdx, tVal)

	return nil
}

// EWiseAdd computes w<mask> = u ⊕ v over the union of both structures.
// Positions stored in only one operand copy that value; positions stored in
// both are resolved with op(u(i), v(i)).
// Complexity: O(nnz(u) + nnz(v) + nnz(w)).
func EWiseAdd[T any](w *Vector[T], mask *Mask, desc Descriptor, op BinaryOp[T, T, T], u, v *Vector[T]) error {
	const tag = "EWiseAdd"
	if u == nil || v == nil || op == nil {
		return sparseErrorf(tag, ErrNilOperand)
	}
	if u.n != v.n {
		return sparseErrorf(tag, ErrDimensionMismatch)
	}
	if err := validateMaskedOutput(tag, w, mask, u.n); err != nil {
		return err
	}

	tIdx := make([]int, 0, len(u.idx)+len(v.idx))
	tVal := make([]T, 0, len(u.idx)+len(v.idx))
	a, b := 0, 0
	for a < len(u.idx) || b < len(v.idx) {
		switch {
		case b >= len(v.idx) || (a < len(u.idx) && u.idx[a] < v.idx[b]):
			tIdx = append(tIdx, u.idx[a])
			tVal = append(tVal, u.val[a])
			a++
		case a >= len(u.idx) || v.idx[b] < u.idx[a]:
			tIdx = append(tIdx, v.idx[b])
			tVal = append(tVal, v.val[b])
			b++
		default:
			tIdx = append(tIdx, u.idx[a])
			tVal = append(tVal, op(u.val[a], v.val[b]))
			a++
			b++
		}
	}
	maskedWrite(w, mask, desc, tIdx, tVal)

	return nil
}
