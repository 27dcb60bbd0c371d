package clique_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvclique/clique"
	"github.com/katalvlaran/lvclique/sampler"
)

// benchK is larger than any clique a sparse 18-node graph has, forcing the
// full 2^18 walk.
const benchK = 9

func BenchmarkBruteForceSearch(b *testing.B) {
	g, err := sampler.Sample(sampler.Params{Nodes: 18, EdgeProb: 0.3, WeightRange: 10, Seed: 1})
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = clique.BruteForceSearch(g, benchK)
	}
}

func BenchmarkParallelSearch(b *testing.B) {
	g, err := sampler.Sample(sampler.Params{Nodes: 18, EdgeProb: 0.3, WeightRange: 10, Seed: 1})
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = clique.ParallelSearch(ctx, g, benchK, 0)
	}
}
