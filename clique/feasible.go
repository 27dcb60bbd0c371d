// SPDX-License-Identifier: MIT
// Package: lvclique/clique
//
// feasible.go - the k-clique feasibility predicate.
//
// Rule (exact):
//   S = {i : a[i] == 1};  feasible ⇔ |S| == k  ∧  ∀ i<j ∈ S: W[i][j] > 0.
//
// Validation order: nil graph → length → binary entries. Only after the input
// is well-formed does the predicate run; |S| ≠ k is a plain false.

package clique

import (
	"fmt"

	"github.com/katalvlaran/lvclique/graph"
)

const methodIsFeasible = "IsFeasible"

// IsFeasible reports whether a selects a k-clique of g.
//
// Edge cases:
//   - k < 0 or k > n: always false.
//   - k == 0: true exactly for the all-zero assignment.
//   - k == 1: true for any single selected node.
//
// Errors: ErrNilGraph, ErrShapeMismatch, ErrNonBinary.
// Complexity: O(n + k²).
func IsFeasible(a Assignment, g *graph.Graph, k int) (bool, error) {
	if err := validate(methodIsFeasible, a, g); err != nil {
		return false, err
	}

	return isFeasible(a, g, k, nil), nil
}

// validate enforces the input contract shared by IsFeasible and Instance.
func validate(method string, a Assignment, g *graph.Graph) error {
	if g == nil {
		return fmt.Errorf("%s: %w", method, ErrNilGraph)
	}
	if len(a) != g.N() {
		return fmt.Errorf("%s: len(assignment)=%d, nodes=%d: %w",
			method, len(a), g.N(), ErrShapeMismatch)
	}
	for i, b := range a {
		if b > 1 {
			return fmt.Errorf("%s: assignment[%d]=%d: %w", method, i, b, ErrNonBinary)
		}
	}

	return nil
}

// isFeasible is the unchecked predicate. members is optional scratch space
// (capacity ≥ n avoids allocation in enumeration loops).
func isFeasible(a Assignment, g *graph.Graph, k int, members []int) bool {
	if k < 0 || k > len(a) {
		return false
	}

	members = members[:0]
	for i, b := range a {
		if b == 1 {
			members = append(members, i)
			if len(members) > k {
				return false // early exit: already too many
			}
		}
	}
	if len(members) != k {
		return false
	}

	// Every unordered pair of selected nodes must be joined by an edge.
	var x, y int
	for x = 0; x < len(members); x++ {
		for y = x + 1; y < len(members); y++ {
			if !g.Adjacent(members[x], members[y]) {
				return false
			}
		}
	}

	return true
}
