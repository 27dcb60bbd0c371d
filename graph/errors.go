// SPDX-License-Identifier: MIT
// Package: lvclique/graph
//
// errors.go - sentinel errors for the graph package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Structural violations also wrap the underlying matrix sentinel
//     (ErrAsymmetry, ErrNonZeroDiagonal, ...) so both levels match.

package graph

import "errors"

// ErrInvalidGraph indicates that a weight matrix violates the undirected
// weighted graph invariants (square, finite, zero diagonal, symmetric,
// non-negative). The concrete matrix sentinel is wrapped alongside.
var ErrInvalidGraph = errors.New("graph: invalid weight matrix")

// ErrNodeOutOfRange indicates a node index outside [0, N).
var ErrNodeOutOfRange = errors.New("graph: node index out of range")

// ErrMalformedInstance indicates an instance file whose declared node count
// does not match its weight rows, or that could not be parsed at all.
var ErrMalformedInstance = errors.New("graph: malformed instance")
