// SPDX-License-Identifier: MIT
// Package: lvclique/verify
//
// errors.go - sentinel errors for the verify package.

package verify

import "errors"

// ErrSolver wraps any error returned by the Solver under test.
var ErrSolver = errors.New("verify: solver failed")

// ErrOracle wraps errors from the exhaustive oracle (oversized graph,
// malformed solver assignment).
var ErrOracle = errors.New("verify: oracle failed")

// ErrNilSolver indicates a Harness built without a Solver.
var ErrNilSolver = errors.New("verify: nil solver")
