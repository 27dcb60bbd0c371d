// SPDX-License-Identifier: MIT
// Package: lvclique/clique
//
// assignment.go - the 0/1 node-subset vector and its integer encoding.

package clique

import (
	"fmt"
	"strings"
)

// Assignment marks node i as selected when a[i] == 1.
type Assignment []uint8

// FromIndex returns the n-bit, most-significant-bit-first representation of
// idx: a[0] is bit n-1 of idx and a[n-1] is bit 0. Bits of idx above n-1 are
// ignored.
// Complexity: O(n).
func FromIndex(idx uint64, n int) Assignment {
	a := make(Assignment, n)
	fillFromIndex(a, idx)

	return a
}

// fillFromIndex overwrites a in place; used by the enumeration hot loop.
func fillFromIndex(a Assignment, idx uint64) {
	n := len(a)
	for j := 0; j < n; j++ {
		a[j] = uint8(idx >> uint(n-1-j) & 1)
	}
}

// Index is the inverse of FromIndex for len(a) ≤ 64.
func (a Assignment) Index() uint64 {
	var idx uint64
	for _, b := range a {
		idx = idx<<1 | uint64(b&1)
	}

	return idx
}

// Size returns |S|, the number of selected nodes.
func (a Assignment) Size() int {
	s := 0
	for _, b := range a {
		if b == 1 {
			s++
		}
	}

	return s
}

// Members returns the selected node indices in ascending order.
func (a Assignment) Members() []int {
	out := make([]int, 0, len(a))
	for i, b := range a {
		if b == 1 {
			out = append(out, i)
		}
	}

	return out
}

// Clone returns an independent copy.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	copy(out, a)

	return out
}

// String renders the assignment as a bitstring, e.g. "10110".
func (a Assignment) String() string {
	var sb strings.Builder
	sb.Grow(len(a))
	for _, b := range a {
		sb.WriteByte('0' + b)
	}

	return sb.String()
}

// ParseAssignment reads a bitstring such as "10110". Separators are not
// accepted; whitespace around the string is trimmed.
func ParseAssignment(s string) (Assignment, error) {
	s = strings.TrimSpace(s)
	a := make(Assignment, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			a[i] = 0
		case '1':
			a[i] = 1
		default:
			return nil, fmt.Errorf("ParseAssignment: %q at %d: %w", s[i], i, ErrBadBitstring)
		}
	}

	return a, nil
}

// Ones returns the all-ones assignment of length n.
func Ones(n int) Assignment {
	a := make(Assignment, n)
	for i := range a {
		a[i] = 1
	}

	return a
}
