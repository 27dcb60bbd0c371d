// SPDX-License-Identifier: MIT
// Package: lvclique/decode
//
// decode.go - most-likely basis state extraction.

package decode

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/katalvlaran/lvclique/clique"
)

// BitOrder selects which end of a basis index is variable x[0].
type BitOrder int

const (
	// LittleEndian maps bit i of the index (rightmost character of a
	// bitstring) to x[i].
	LittleEndian BitOrder = iota
	// BigEndian maps the most significant bit (leftmost character) to x[0].
	BigEndian
)

// String implements fmt.Stringer.
func (o BitOrder) String() string {
	switch o {
	case LittleEndian:
		return "little-endian"
	case BigEndian:
		return "big-endian"
	default:
		return fmt.Sprintf("BitOrder(%d)", int(o))
	}
}

// Mapping relates decoded variables to node selection.
type Mapping int

const (
	// Identity selects node i when x[i] == 1.
	Identity Mapping = iota
	// Complement selects node i when x[i] == 0.
	Complement
)

// String implements fmt.Stringer.
func (m Mapping) String() string {
	switch m {
	case Identity:
		return "identity"
	case Complement:
		return "complement"
	default:
		return fmt.Sprintf("Mapping(%d)", int(m))
	}
}

const (
	methodMostLikely      = "MostLikely"
	methodMostLikelyProbs = "MostLikelyProbabilities"
	methodMostLikelyCount = "MostLikelyCounts"
)

// MostLikely returns the variables of the basis state with the largest
// |amplitude|². Ties go to the lowest index.
//
// Errors: ErrEmptyDistribution, ErrNotPowerOfTwo, ErrBadOrder.
// Complexity: O(2^n).
func MostLikely(amplitudes []complex128, order BitOrder) ([]uint8, error) {
	n, err := qubits(methodMostLikely, len(amplitudes), order)
	if err != nil {
		return nil, err
	}

	best, bestP := 0, -1.0
	for i, a := range amplitudes {
		p := real(a)*real(a) + imag(a)*imag(a)
		if p > bestP {
			best, bestP = i, p
		}
	}

	return fromIndex(uint64(best), n, order), nil
}

// MostLikelyProbabilities is MostLikely over an already squared vector.
// NaN entries never win.
func MostLikelyProbabilities(probs []float64, order BitOrder) ([]uint8, error) {
	n, err := qubits(methodMostLikelyProbs, len(probs), order)
	if err != nil {
		return nil, err
	}

	best, bestP := 0, math.Inf(-1)
	for i, p := range probs {
		if p > bestP {
			best, bestP = i, p
		}
	}

	return fromIndex(uint64(best), n, order), nil
}

// MostLikelyCounts returns the variables of the most frequent bitstring.
// Ties go to the lexicographically smallest bitstring so the result does not
// depend on map iteration order.
//
// Errors: ErrEmptyDistribution, ErrBadBitstring, ErrBadOrder.
func MostLikelyCounts(counts map[string]int, order BitOrder) ([]uint8, error) {
	if len(counts) == 0 {
		return nil, fmt.Errorf("%s: %w", methodMostLikelyCount, ErrEmptyDistribution)
	}
	if err := checkOrder(methodMostLikelyCount, order); err != nil {
		return nil, err
	}

	var (
		best  string
		bestC int
		width = -1
		first = true
	)
	for s, c := range counts {
		if err := checkBitstring(s); err != nil {
			return nil, fmt.Errorf("%s: %q: %w", methodMostLikelyCount, s, err)
		}
		if width >= 0 && len(s) != width {
			return nil, fmt.Errorf("%s: %q has %d bits, want %d: %w",
				methodMostLikelyCount, s, len(s), width, ErrBadBitstring)
		}
		width = len(s)
		if first || c > bestC || (c == bestC && s < best) {
			best, bestC, first = s, c, false
		}
	}

	out := make([]uint8, len(best))
	for i := range out {
		switch order {
		case LittleEndian:
			out[i] = best[len(best)-1-i] - '0'
		case BigEndian:
			out[i] = best[i] - '0'
		}
	}

	return out, nil
}

// ToGraphAssignment applies m to decoded variables. An unknown Mapping is
// treated as Identity.
func ToGraphAssignment(x []uint8, m Mapping) clique.Assignment {
	a := make(clique.Assignment, len(x))
	for i, v := range x {
		if m == Complement {
			a[i] = 1 - v&1
		} else {
			a[i] = v & 1
		}
	}

	return a
}

// qubits returns log2(size) after validating size and order.
func qubits(method string, size int, order BitOrder) (int, error) {
	if size == 0 {
		return 0, fmt.Errorf("%s: %w", method, ErrEmptyDistribution)
	}
	if size&(size-1) != 0 {
		return 0, fmt.Errorf("%s: length %d: %w", method, size, ErrNotPowerOfTwo)
	}
	if err := checkOrder(method, order); err != nil {
		return 0, err
	}

	return bits.TrailingZeros(uint(size)), nil
}

func checkOrder(method string, order BitOrder) error {
	if order != LittleEndian && order != BigEndian {
		return fmt.Errorf("%s: %v: %w", method, order, ErrBadOrder)
	}

	return nil
}

func checkBitstring(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return ErrBadBitstring
		}
	}

	return nil
}

func fromIndex(idx uint64, n int, order BitOrder) []uint8 {
	out := make([]uint8, n)
	for i := 0; i < n; i++ {
		shift := i
		if order == BigEndian {
			shift = n - 1 - i
		}
		out[i] = uint8(idx >> uint(shift) & 1)
	}

	return out
}
