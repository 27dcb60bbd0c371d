// SPDX-License-Identifier: MIT
// Package: lvclique/clique
//
// search.go - exhaustive ground-truth search.
//
// BruteForceSearch(g, k) ≡ any(IsFeasible(a, g, k) for a in Assignments(n)).
// The result is order independent; the fixed enumeration order only makes
// FindFirst and FeasibleAssignments reproducible.

package clique

import (
	"fmt"

	"github.com/katalvlaran/lvclique/graph"
)

const (
	methodBruteForce = "BruteForceSearch"
	methodFindFirst  = "FindFirst"
	methodFeasible   = "FeasibleAssignments"
)

// checkSearchable validates inputs shared by all exhaustive searches.
func checkSearchable(method string, g *graph.Graph) error {
	if g == nil {
		return fmt.Errorf("%s: %w", method, ErrNilGraph)
	}
	if g.N() > MaxBruteForceNodes {
		return fmt.Errorf("%s: n=%d > max=%d: %w", method, g.N(), MaxBruteForceNodes, ErrTooManyNodes)
	}

	return nil
}

// BruteForceSearch reports whether g contains a k-clique by trying every
// assignment, stopping at the first feasible one.
//
// Errors: ErrNilGraph, ErrTooManyNodes.
// Complexity: O(2^n · (n + k²)) worst case.
func BruteForceSearch(g *graph.Graph, k int) (bool, error) {
	_, found, err := findFirst(methodBruteForce, g, k)

	return found, err
}

// FindFirst returns the first feasible assignment in enumeration order.
func FindFirst(g *graph.Graph, k int) (Assignment, bool, error) {
	return findFirst(methodFindFirst, g, k)
}

func findFirst(method string, g *graph.Graph, k int) (Assignment, bool, error) {
	if err := checkSearchable(method, g); err != nil {
		return nil, false, err
	}
	// No assignment can have |S| == k outside [0, n]; skip the 2^n walk.
	if k < 0 || k > g.N() {
		return nil, false, nil
	}

	var first Assignment
	scan(g, k, 0, uint64(1)<<uint(g.N()), nil, func(a Assignment) bool {
		first = a.Clone()
		return false
	})

	return first, first != nil, nil
}

// FeasibleAssignments returns every feasible assignment in enumeration order.
// Useful to assert uniqueness of a solution in tests.
func FeasibleAssignments(g *graph.Graph, k int) ([]Assignment, error) {
	if err := checkSearchable(methodFeasible, g); err != nil {
		return nil, err
	}
	if k < 0 || k > g.N() {
		return nil, nil
	}

	var out []Assignment
	scan(g, k, 0, uint64(1)<<uint(g.N()), nil, func(a Assignment) bool {
		out = append(out, a.Clone())
		return true
	})

	return out, nil
}

// CountCliques returns the number of k-cliques in g.
func CountCliques(g *graph.Graph, k int) (int, error) {
	all, err := FeasibleAssignments(g, k)
	if err != nil {
		return 0, err
	}

	return len(all), nil
}
