// Package lvclique is a classical ground-truth oracle for the k-clique
// decision problem, built for differential testing of external solvers.
//
// What is in the box?
//
//	matrix/   dense row-major float64 storage + structural validators
//	graph/    immutable weighted undirected Graph + YAML instance codec
//	sampler/  seeded random graphs (edge iff u < p, weight in (0, WR])
//	clique/   Assignment, IsFeasible, lazy Assignments, BruteForceSearch,
//	          FindFirst, FeasibleAssignments, ParallelSearch
//	decode/   most-likely state of a solver output → Assignment
//	verify/   Harness comparing any Solver against the oracle
//	cmd/      the lvclique command-line tool
//
// Quick example:
//
//	g, _ := sampler.Sample(sampler.Params{Nodes: 5, EdgeProb: 0.8, WeightRange: 10, Seed: 100})
//	ok, _ := clique.BruteForceSearch(g, 5) // true iff g is complete
//
// Exhaustive search is O(2^n · k²) and refuses graphs above
// clique.MaxBruteForceNodes nodes.
package lvclique
