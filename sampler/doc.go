// Package sampler generates seeded random weighted undirected graphs for
// clique-oracle fixtures.
//
// Model: every unordered pair {i,j} (i<j) becomes an edge independently with
// probability EdgeProb; an edge's weight is drawn uniformly from
// (0, WeightRange]. Pairs are visited i asc, j asc, and the weight draw only
// happens for pairs that became edges, so the random stream, and therefore
// the graph, is fully determined by (Nodes, EdgeProb, WeightRange, Seed).
//
// There is no global random state: each Sample call builds its own
// *rand.Rand from Params.Seed unless WithRand supplies one.
//
//	g, err := sampler.Sample(sampler.Params{Nodes: 5, EdgeProb: 0.8, WeightRange: 10, Seed: 100})
package sampler
