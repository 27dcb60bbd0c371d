// SPDX-License-Identifier: MIT
// Package: lvclique/clique
//
// errors.go - sentinel errors for the clique oracle.
//
// All errors are fail-fast programmer/integration errors. A feasibility
// "no" is a false result, never an error.

package clique

import "errors"

// ErrShapeMismatch indicates an assignment whose length differs from the
// graph's node count.
var ErrShapeMismatch = errors.New("clique: assignment length does not match node count")

// ErrNonBinary indicates an assignment entry other than 0 or 1.
var ErrNonBinary = errors.New("clique: assignment entry is not 0 or 1")

// ErrNilGraph indicates a nil *graph.Graph.
var ErrNilGraph = errors.New("clique: graph is nil")

// ErrTooManyNodes indicates a graph too large for exhaustive enumeration.
var ErrTooManyNodes = errors.New("clique: too many nodes for exhaustive search")

// ErrBadBitstring indicates a textual assignment with characters other than
// '0' and '1'.
var ErrBadBitstring = errors.New("clique: malformed bitstring")
