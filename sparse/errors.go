// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// All operations return these sentinels (optionally wrapped with a method tag
// via %w) and tests match them with errors.Is. Nothing here panics on
// user-triggered input.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a requested size is not positive.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be > 0")

	// ErrOutOfRange indicates that a row, column or vector index is outside bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand sizes, e.g. EWiseAdd
	// on vectors of different length or ExtractRow into a vector whose length
	// differs from the column count.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("sparse: matrix is not square")

	// ErrNoValue is returned by ExtractElement when the position holds no entry.
	ErrNoValue = errors.New("sparse: no value stored at index")

	// ErrNilOperand indicates a nil container or operator was passed in.
	ErrNilOperand = errors.New("sparse: nil operand")

	// ErrTupleLength indicates that Build received I, J and X of different lengths.
	ErrTupleLength = errors.New("sparse: tuple slices differ in length")
)

// sparseErrorf wraps err with an operation tag ("Vector.SetElement(7)").
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
