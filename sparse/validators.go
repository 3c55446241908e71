// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Single source of truth for shape checks used by algorithm packages.
//   - Return plain sentinels wrapped with the validator tag so callers can
//     wrap once more with their own context and still match via errors.Is.

package sparse

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil[T any](m *Matrix[T]) error {
	if m == nil {
		return sparseErrorf("ValidateNotNil", ErrNilOperand)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and Rows == Cols.
// Complexity: O(1).
func ValidateSquare[T any](m *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return sparseErrorf("ValidateSquare", err)
	}
	if m.nrows != m.ncols {
		return sparseErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSameSize checks that two vectors are non-nil and have equal length.
// Complexity: O(1).
func ValidateSameSize[X, Y any](a *Vector[X], b *Vector[Y]) error {
	if a == nil || b == nil {
		return sparseErrorf("ValidateSameSize", ErrNilOperand)
	}
	if a.n != b.n {
		return sparseErrorf("ValidateSameSize", ErrDimensionMismatch)
	}

	return nil
}
