// SPDX-License-Identifier: MIT
// Package: lvclique/sampler
//
// weight_fn.go - edge weight distributions.

package sampler

import (
	"fmt"
	"math"
	"math/rand"
)

// WeightFn produces an edge weight from the sampling RNG. It must be a pure
// function of the RNG state to preserve determinism.
type WeightFn func(rng *rand.Rand) float64

// UniformPositiveWeightFn samples uniformly from (0, upper].
// rng.Float64 is in [0,1), so upper*(1-u) is in (0, upper].
// Panics if upper is not a positive finite number.
// Complexity: O(1).
func UniformPositiveWeightFn(upper float64) WeightFn {
	if !(upper > 0) || math.IsInf(upper, 0) {
		panic(fmt.Sprintf("UniformPositiveWeightFn: upper must be > 0 and finite, got %g", upper))
	}

	return func(rng *rand.Rand) float64 {
		return upper * (1 - rng.Float64())
	}
}

// ConstantWeightFn always yields value. It does not consume the RNG.
// Panics if value is not a positive finite number.
func ConstantWeightFn(value float64) WeightFn {
	if !(value > 0) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be > 0 and finite, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// IntegerWeightFn samples integers uniformly from [1, upper], the integral
// weight model used by classic random-graph fixtures. Panics if upper < 1.
func IntegerWeightFn(upper int) WeightFn {
	if upper < 1 {
		panic(fmt.Sprintf("IntegerWeightFn: upper must be >= 1, got %d", upper))
	}

	return func(rng *rand.Rand) float64 {
		return float64(1 + rng.Intn(upper))
	}
}
