// SPDX-License-Identifier: MIT
// Package: lvclique/sampler
//
// errors.go - sentinel errors for the sampler package.
//
// Error policy:
//   - Every parameter violation wraps BOTH its specific sentinel and
//     ErrInvalidParameter, so callers may branch coarsely or precisely.
//   - Sample never panics; option constructors panic on nil (programmer error).
//
// Priority when several parameters are wrong:
//   ErrNegativeNodes → ErrInvalidProbability → ErrInvalidWeightRange.

package sampler

import "errors"

// ErrInvalidParameter is the umbrella class for malformed sampler inputs.
var ErrInvalidParameter = errors.New("sampler: invalid parameter")

// ErrNegativeNodes indicates Params.Nodes < 0.
var ErrNegativeNodes = errors.New("sampler: node count must be >= 0")

// ErrInvalidProbability indicates EdgeProb outside [0,1] (or NaN).
var ErrInvalidProbability = errors.New("sampler: probability out of range")

// ErrInvalidWeightRange indicates WeightRange <= 0, NaN or Inf.
var ErrInvalidWeightRange = errors.New("sampler: weight range must be a positive finite number")

// ErrInvalidWeight indicates that a custom WeightFn produced a value outside
// (0, +Inf). Such a weight would silently erase the edge or break the
// finite-weights invariant.
var ErrInvalidWeight = errors.New("sampler: weight function returned a non-positive or non-finite value")
