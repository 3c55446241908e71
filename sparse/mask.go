// SPDX-License-Identifier: MIT

// Package sparse: Mask is the boolean structure used to guard writes.
package sparse

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Mask is a length-n structural mask: position i is "in" the mask iff its bit
// is set. It doubles as a visited set for frontier algorithms because bits are
// only ever added.
type Mask struct {
	n    int
	bits *bitset.BitSet
}

// NewMask creates an empty mask of length n.
// Returns ErrInvalidDimensions if n <= 0.
func NewMask(n int) (*Mask, error) {
	if n <= 0 {
		return nil, sparseErrorf(fmt.Sprintf("NewMask(%d)", n), ErrInvalidDimensions)
	}

	return &Mask{n: n, bits: bitset.New(uint(n))}, nil
}

// Size returns the mask length.
func (m *Mask) Size() int { return m.n }

// Set adds i to the mask.
func (m *Mask) Set(i int) error {
	if i < 0 || i >= m.n {
		return sparseErrorf(fmt.Sprintf("Mask.Set(%d)", i), ErrOutOfRange)
	}
	m.bits.Set(uint(i))

	return nil
}

// Test reports whether i is in the mask; out-of-range indices report false.
func (m *Mask) Test(i int) bool {
	if i < 0 || i >= m.n {
		return false
	}

	return m.bits.Test(uint(i))
}

// Count returns the number of positions in the mask.
func (m *Mask) Count() int { return int(m.bits.Count()) }

// NextUnset returns the smallest index ≥ from that is not in the mask.
// The bitset is word-aligned, so hits at or past n are reported as "none".
func (m *Mask) NextUnset(from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	if from >= m.n {
		return 0, false
	}
	i, ok := m.bits.NextClear(uint(from))
	if !ok || int(i) >= m.n {
		return 0, false
	}

	return int(i), true
}

// allows reports whether a write to position i is permitted under desc.
// A nil mask permits every position regardless of desc.
func (m *Mask) allows(i int, desc Descriptor) bool {
	if m == nil {
		return true
	}

	return m.Test(i) != desc.Complement
}
