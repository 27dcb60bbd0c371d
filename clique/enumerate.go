// SPDX-License-Identifier: MIT
// Package: lvclique/clique
//
// enumerate.go - the lazy sequence of all n-bit assignments.

package clique

import (
	"iter"

	"github.com/katalvlaran/lvclique/graph"
)

// MaxBruteForceNodes bounds exhaustive enumeration (2^30 ≈ 1e9 assignments).
const MaxBruteForceNodes = 30

// Assignments yields all 2^n assignments in increasing integer order,
// most significant bit first. The sequence is lazy and restartable: each
// range over the returned iter.Seq starts again from 00…0. Every yielded
// Assignment is a fresh slice the consumer may keep.
//
// n ≤ 0 yields the single empty assignment for n == 0 and nothing for
// n < 0; n > 63 yields nothing (the index would overflow).
func Assignments(n int) iter.Seq[Assignment] {
	return func(yield func(Assignment) bool) {
		if n < 0 || n > 63 {
			return
		}
		total := uint64(1) << uint(n)
		for idx := uint64(0); idx < total; idx++ {
			if !yield(FromIndex(idx, n)) {
				return
			}
		}
	}
}

// scan walks the index range [lo, hi) with a reused buffer and calls visit
// for each feasible assignment; visit returning false stops the scan.
// stop is polled every pollEvery indices (nil means never). The result is
// true when stop interrupted the scan.
func scan(g *graph.Graph, k int, lo, hi uint64, stop func() bool, visit func(Assignment) bool) (interrupted bool) {
	n := g.N()
	buf := make(Assignment, n)
	members := make([]int, 0, n)
	for idx := lo; idx < hi; idx++ {
		if stop != nil && idx%pollEvery == 0 && stop() {
			return true
		}
		fillFromIndex(buf, idx)
		if isFeasible(buf, g, k, members) && !visit(buf) {
			return false
		}
	}

	return false
}

// pollEvery is how often long scans check for cancellation.
const pollEvery = 1 << 12
