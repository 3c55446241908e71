// SPDX-License-Identifier: MIT

// Package sparse: operator and descriptor types shared by the bulk operations.
package sparse

import "cmp"

// UnaryOp maps a stored value of type X to a value of type Z (GrB_UnaryOp).
type UnaryOp[X, Z any] func(x X) Z

// BinaryOp combines two stored values into one (GrB_BinaryOp).
// For EWiseAdd the left operand comes from u and the right one from v;
// for Build the left operand is the earlier tuple.
type BinaryOp[X, Y, Z any] func(x X, y Y) Z

// Identity returns its argument unchanged.
func Identity[T any](x T) T { return x }

// First keeps the left operand.
func First[T any](x, _ T) T { return x }

// Second keeps the right operand.
func Second[T any](_, y T) T { return y }

// Min keeps the smaller operand; ties keep the left one.
func Min[T cmp.Ordered](x, y T) T {
	if y < x {
		return y
	}

	return x
}

// Descriptor modifies how a mask is interpreted and how the output is written.
//
//	Complement – use the complement of the mask structure.
//	Replace    – drop output entries the (effective) mask forbids.
type Descriptor struct {
	Complement bool
	Replace    bool
}

// Predefined descriptors, named after their GraphBLAS counterparts.
var (
	DescNone = Descriptor{}
	DescC    = Descriptor{Complement: true}
	DescR    = Descriptor{Replace: true}
	DescRC   = Descriptor{Complement: true, Replace: true}
)
