// SPDX-License-Identifier: MIT
// Package: lvclique/sampler
//
// sample.go - implementation of Sample(Params, ...Option).
//
// Contract:
//   - Nodes ≥ 0 (else ErrNegativeNodes); Nodes == 0 yields the empty graph.
//   - 0 ≤ EdgeProb ≤ 1 (else ErrInvalidProbability).
//   - WeightRange > 0 and finite (else ErrInvalidWeightRange).
//   - Every validation error also wraps ErrInvalidParameter.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials; Space: O(n²) for the weight matrix.
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc with j>i.
//   - One Float64 per trial, plus one WeightFn call per accepted edge.

package sampler

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvclique/graph"
	"github.com/katalvlaran/lvclique/matrix"
)

// File-local constants (stable method tag and domains).
const (
	methodSample = "Sample"
	minNodes     = 0
	probMin      = 0.0
	probMax      = 1.0
)

// Params describes one random graph draw.
type Params struct {
	Nodes       int     // number of nodes n ≥ 0
	EdgeProb    float64 // independent edge probability in [0,1]
	WeightRange float64 // weights are drawn from (0, WeightRange]
	Seed        int64   // RNG seed; ignored when WithRand is given
}

// Validate checks Params against the sampler contract.
func (p Params) Validate() error {
	if p.Nodes < minNodes {
		return fmt.Errorf("%s: n=%d < min=%d: %w: %w",
			methodSample, p.Nodes, minNodes, ErrNegativeNodes, ErrInvalidParameter)
	}
	// NaN fails both comparisons, so test the accepted interval positively.
	if !(p.EdgeProb >= probMin && p.EdgeProb <= probMax) {
		return fmt.Errorf("%s: p=%g not in [%.1f,%.1f]: %w: %w",
			methodSample, p.EdgeProb, probMin, probMax, ErrInvalidProbability, ErrInvalidParameter)
	}
	if !(p.WeightRange > 0) || math.IsInf(p.WeightRange, 0) {
		return fmt.Errorf("%s: weight range=%g: %w: %w",
			methodSample, p.WeightRange, ErrInvalidWeightRange, ErrInvalidParameter)
	}

	return nil
}

// Sample draws a random weighted undirected graph.
//
// Edge (i,j) exists iff rng.Float64() < EdgeProb, which makes EdgeProb == 0
// produce no edges and EdgeProb == 1 produce the complete graph.
func Sample(p Params, opts ...Option) (*graph.Graph, error) {
	// 1) Validate parameters early (fail fast, nothing allocated on invalid input).
	if err := p.Validate(); err != nil {
		return nil, err
	}

	// 2) Resolve RNG and weight policy.
	cfg := newConfig(opts...)
	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(p.Seed))
	}
	weightFn := cfg.weightFn
	if weightFn == nil {
		weightFn = UniformPositiveWeightFn(p.WeightRange)
	}

	w, err := matrix.NewDense(p.Nodes, p.Nodes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSample, err)
	}

	// 3) Bernoulli trial per unordered pair, mirrored into both triangles.
	var (
		i, j   int
		weight float64
	)
	for i = 0; i < p.Nodes; i++ {
		for j = i + 1; j < p.Nodes; j++ {
			if rng.Float64() >= p.EdgeProb {
				continue
			}
			weight = weightFn(rng)
			if !(weight > 0) || math.IsInf(weight, 0) {
				return nil, fmt.Errorf("%s: edge (%d,%d) weight=%g: %w",
					methodSample, i, j, weight, ErrInvalidWeight)
			}
			_ = w.Set(i, j, weight) // in range and finite
			_ = w.Set(j, i, weight)
		}
	}

	// 4) graph.New re-validates and takes its own copy.
	g, err := graph.New(w)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSample, err)
	}

	return g, nil
}
