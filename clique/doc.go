// Package clique is the classical ground-truth oracle for the k-clique
// decision problem on weighted undirected graphs.
//
// It answers two questions:
//
//   - IsFeasible: does this 0/1 node assignment select exactly k nodes that
//     are pairwise connected (weight > 0)?
//   - BruteForceSearch: does any of the 2^n assignments do so?
//
// The search is exhaustive and exponential on purpose. It exists to
// cross-check heuristic or quantum solvers (Ising encodings, variational
// eigensolvers) on small instances, never as a production path; n is capped
// at MaxBruteForceNodes.
//
// Assignments are enumerated in increasing integer order with the most
// significant bit first, so index 0 of an Assignment is the top bit:
//
//	n=3:  000 001 010 011 100 101 110 111
//
// The empty clique is feasible for k == 0: the empty set vacuously satisfies
// "every pair is connected".
package clique
