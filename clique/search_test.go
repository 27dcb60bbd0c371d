// SPDX-License-Identifier: MIT
package clique_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvclique/clique"
	"github.com/katalvlaran/lvclique/graph"
	"github.com/katalvlaran/lvclique/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallGraphs returns seeded random graphs with n ≤ 5 at several densities,
// plus the hand-built fixtures.
func smallGraphs(t testing.TB) []*graph.Graph {
	t.Helper()
	out := []*graph.Graph{missingEdge01(t)}
	for n := 0; n <= 5; n++ {
		for seed := int64(1); seed <= 6; seed++ {
			for _, p := range []float64{0.3, 0.6, 0.9} {
				g, err := sampler.Sample(sampler.Params{Nodes: n, EdgeProb: p, WeightRange: 10, Seed: seed})
				require.NoError(t, err)
				out = append(out, g)
			}
		}
	}
	return out
}

// hasCliqueByCombinations is an independent reference: recursive k-subset
// construction that only extends with nodes adjacent to all chosen ones.
func hasCliqueByCombinations(g *graph.Graph, k int) bool {
	if k < 0 || k > g.N() {
		return false
	}
	var extend func(start int, chosen []int) bool
	extend = func(start int, chosen []int) bool {
		if len(chosen) == k {
			return true
		}
		for v := start; v < g.N(); v++ {
			ok := true
			for _, u := range chosen {
				if !g.Adjacent(u, v) {
					ok = false
					break
				}
			}
			if ok && extend(v+1, append(chosen, v)) {
				return true
			}
		}
		return false
	}
	return extend(0, nil)
}

// TestBruteForce_Completeness compares the oracle with manual enumeration
// and the independent combination search for every k.
func TestBruteForce_Completeness(t *testing.T) {
	for _, g := range smallGraphs(t) {
		for k := -1; k <= g.N()+1; k++ {
			got, err := clique.BruteForceSearch(g, k)
			require.NoError(t, err)

			manual := false
			for a := range clique.Assignments(g.N()) {
				ok, err := clique.IsFeasible(a, g, k)
				require.NoError(t, err)
				if ok {
					manual = true
					break
				}
			}
			require.Equal(t, manual, got, "n=%d k=%d\n%s", g.N(), k, g)
			require.Equal(t, hasCliqueByCombinations(g, k), got, "n=%d k=%d\n%s", g.N(), k, g)
		}
	}
}

// TestBruteForce_SeededFixture replays the classic n=5, p=0.8, seed=100, k=5
// instance. A 5-clique on 5 nodes exists iff the graph is complete, and then
// the only witness is 11111.
func TestBruteForce_SeededFixture(t *testing.T) {
	g, err := sampler.Sample(sampler.Params{Nodes: 5, EdgeProb: 0.8, WeightRange: 10, Seed: 100})
	require.NoError(t, err)

	found, err := clique.BruteForceSearch(g, 5)
	require.NoError(t, err)
	require.Equal(t, g.IsComplete(), found)

	all, err := clique.FeasibleAssignments(g, 5)
	require.NoError(t, err)
	if g.IsComplete() {
		require.Equal(t, []clique.Assignment{clique.Ones(5)}, all)
	} else {
		require.Empty(t, all)
	}
}

// TestBruteForce_CompleteGraph uses EdgeProb 1 so the fixture is certainly
// complete: the search succeeds and 11111 is the unique witness.
func TestBruteForce_CompleteGraph(t *testing.T) {
	g, err := sampler.Sample(sampler.Params{Nodes: 5, EdgeProb: 1, WeightRange: 10, Seed: 100})
	require.NoError(t, err)

	found, err := clique.BruteForceSearch(g, 5)
	require.NoError(t, err)
	assert.True(t, found)

	all, err := clique.FeasibleAssignments(g, 5)
	require.NoError(t, err)
	assert.Equal(t, []clique.Assignment{{1, 1, 1, 1, 1}}, all)

	ok, err := clique.IsFeasible(clique.Ones(5), g, 5)
	require.NoError(t, err)
	assert.True(t, ok)

	// K5 has C(5,3) = 10 triangles.
	count, err := clique.CountCliques(g, 3)
	require.NoError(t, err)
	assert.Equal(t, 10, count)
}

// TestBruteForce_ZeroK: the all-zero assignment witnesses k=0 on any graph,
// including the empty one.
func TestBruteForce_ZeroK(t *testing.T) {
	for _, g := range []*graph.Graph{missingEdge01(t), mustGraph(t, nil)} {
		first, found, err := clique.FindFirst(g, 0)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, make(clique.Assignment, g.N()), first)
	}
}

// TestFindFirst returns the lowest-index witness.
func TestFindFirst(t *testing.T) {
	g := missingEdge01(t)

	first, found, err := clique.FindFirst(g, 2)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "011", first.String())

	_, found, err = clique.FindFirst(g, 3)
	require.NoError(t, err)
	assert.False(t, found)
}

// TestSearch_Errors covers nil and oversized graphs.
func TestSearch_Errors(t *testing.T) {
	_, err := clique.BruteForceSearch(nil, 1)
	require.ErrorIs(t, err, clique.ErrNilGraph)

	big := make([][]float64, clique.MaxBruteForceNodes+1)
	for i := range big {
		big[i] = make([]float64, len(big))
	}
	g := mustGraph(t, big)

	_, err = clique.BruteForceSearch(g, 2)
	require.ErrorIs(t, err, clique.ErrTooManyNodes)
	_, err = clique.FeasibleAssignments(g, 2)
	require.ErrorIs(t, err, clique.ErrTooManyNodes)
	_, err = clique.ParallelSearch(context.Background(), g, 2, 2)
	require.ErrorIs(t, err, clique.ErrTooManyNodes)
}

// TestParallelSearch_AgreesWithBruteForce checks the optional parallel path.
func TestParallelSearch_AgreesWithBruteForce(t *testing.T) {
	graphs := smallGraphs(t)
	dense, err := sampler.Sample(sampler.Params{Nodes: 14, EdgeProb: 0.7, WeightRange: 1, Seed: 9})
	require.NoError(t, err)
	graphs = append(graphs, dense)

	for _, g := range graphs {
		for k := 0; k <= g.N(); k++ {
			want, err := clique.BruteForceSearch(g, k)
			require.NoError(t, err)
			for _, workers := range []int{0, 1, 3, 64} {
				got, err := clique.ParallelSearch(context.Background(), g, k, workers)
				require.NoError(t, err)
				require.Equal(t, want, got, "n=%d k=%d workers=%d", g.N(), k, workers)
			}
		}
	}
}

// TestParallelSearch_Canceled reports the caller's cancellation.
func TestParallelSearch_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := clique.ParallelSearch(ctx, missingEdge01(t), 2, 2)
	require.ErrorIs(t, err, context.Canceled)
}
