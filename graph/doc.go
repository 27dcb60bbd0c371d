// Package graph defines the immutable weighted undirected graph used by the
// sampler and the clique oracle.
//
// A Graph over n nodes is an n×n weight matrix W with
//
//	W[i][j] == W[j][i] ≥ 0,  W[i][i] == 0,  all entries finite,
//
// where W[i][j] == 0 means "no edge". Constructors validate these invariants
// and clone their input, so a *Graph is safe to share across goroutines.
//
// Instances round-trip through YAML (Encode/Decode):
//
//	nodes: 3
//	weights:
//	  - [0, 4.5, 1]
//	  - [4.5, 0, 0]
//	  - [1, 0, 0]
package graph
