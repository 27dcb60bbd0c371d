// SPDX-License-Identifier: MIT
// Package: lvclique/clique

package clique

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvclique/graph"
)

// Instance is the immutable problem pair (Graph, K) handed to solvers and
// to the oracle.
type Instance struct {
	g *graph.Graph
	k int
}

// NewInstance pairs g with clique size k. Any k is accepted; sizes outside
// [0, n] are simply infeasible.
func NewInstance(g *graph.Graph, k int) (Instance, error) {
	if g == nil {
		return Instance{}, fmt.Errorf("NewInstance: %w", ErrNilGraph)
	}

	return Instance{g: g, k: k}, nil
}

// Graph returns the instance graph.
func (in Instance) Graph() *graph.Graph { return in.g }

// K returns the requested clique size.
func (in Instance) K() int { return in.k }

// N returns the node count (0 for the zero Instance).
func (in Instance) N() int {
	if in.g == nil {
		return 0
	}
	return in.g.N()
}

// IsFeasible is IsFeasible(a, in.Graph(), in.K()).
func (in Instance) IsFeasible(a Assignment) (bool, error) {
	return IsFeasible(a, in.g, in.k)
}

// BruteForceSearch is BruteForceSearch(in.Graph(), in.K()).
func (in Instance) BruteForceSearch() (bool, error) {
	return BruteForceSearch(in.g, in.k)
}

// ParallelSearch is ParallelSearch(ctx, in.Graph(), in.K(), workers).
func (in Instance) ParallelSearch(ctx context.Context, workers int) (bool, error) {
	return ParallelSearch(ctx, in.g, in.k, workers)
}

// String renders "k=<k> n=<n>".
func (in Instance) String() string {
	return fmt.Sprintf("k=%d n=%d", in.k, in.N())
}
