// SPDX-License-Identifier: MIT
// Package: lvclique/sampler
//
// options.go - functional options for Sample.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors PANIC on meaningless inputs (nil rng / nil fn).
//     Sample itself never panics.
//   • Determinism is explicit: the default RNG is seeded from Params.Seed.

package sampler

import (
	"math/rand"
)

// Option customizes a single Sample call.
type Option func(*config)

// config holds the knobs resolved for one Sample call.
type config struct {
	// rng overrides the Params.Seed-derived source when non-nil.
	rng *rand.Rand
	// weightFn overrides the uniform (0, WeightRange] distribution when non-nil.
	weightFn WeightFn
}

// newConfig applies options in order (last wins).
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG; Params.Seed is then ignored.
// The caller owns the stream: sharing one *rand.Rand across calls yields
// different graphs per call, still reproducible as a whole.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sampler: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithWeightFn overrides the edge weight distribution. The function must
// return values in (0, +Inf); anything else makes Sample fail with
// ErrInvalidWeight. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("sampler: WithWeightFn(nil)")
	}
	return func(c *config) {
		c.weightFn = fn
	}
}

// WithConstantWeight makes every sampled edge carry weight w (> 0).
func WithConstantWeight(w float64) Option {
	return WithWeightFn(ConstantWeightFn(w))
}
