// SPDX-License-Identifier: MIT
// Package: lvclique/graph
//
// graph.go - immutable weighted undirected graph over a dense weight matrix.
//
// Contract:
//   - Construction validates via matrix.ValidateWeightMatrix (tolerance 0).
//   - The stored matrix is a private clone; accessors never leak it.
//   - Node indices are 0..N-1; the index order is the bit order used by
//     clique.Assignment.

package graph

import (
	"fmt"

	"github.com/katalvlaran/lvclique/matrix"
)

const (
	methodNew      = "graph.New"
	methodFromRows = "graph.FromRows"
	methodWeight   = "Graph.Weight"

	// structuralTol is the tolerance for symmetry/diagonal checks. Weights are
	// copied verbatim, so exact equality is the right policy.
	structuralTol = 0.0
)

// Edge is one undirected edge {I,J} with I<J and Weight>0.
type Edge struct {
	I, J   int
	Weight float64
}

// Graph is a read-only weighted undirected graph.
type Graph struct {
	w *matrix.Dense
}

// New validates m and returns a Graph backed by a private copy of it.
//
// Errors:
//   - ErrInvalidGraph wrapping the matrix sentinel that failed
//     (ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrNonZeroDiagonal,
//     ErrAsymmetry, ErrNegativeEntry).
//
// Complexity: O(n²).
func New(m matrix.Matrix) (*Graph, error) {
	if err := matrix.ValidateWeightMatrix(m, structuralTol); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodNew, ErrInvalidGraph, err)
	}

	// Fast path for *Dense; otherwise copy cell by cell through the interface.
	if d, ok := m.(*matrix.Dense); ok {
		return &Graph{w: d.CloneDense()}, nil
	}
	n := m.Rows()
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ = m.At(i, j)
			_ = d.Set(i, j, v) // finite, validated above
		}
	}

	return &Graph{w: d}, nil
}

// FromRows builds a Graph from a literal weight matrix.
func FromRows(rows [][]float64) (*Graph, error) {
	d, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodFromRows, ErrInvalidGraph, err)
	}

	return New(d)
}

// N returns the number of nodes.
func (g *Graph) N() int { return g.w.Rows() }

// Weight returns W[i][j] or ErrNodeOutOfRange.
func (g *Graph) Weight(i, j int) (float64, error) {
	if !g.inRange(i) || !g.inRange(j) {
		return 0, fmt.Errorf("%s(%d,%d): n=%d: %w", methodWeight, i, j, g.N(), ErrNodeOutOfRange)
	}
	v, _ := g.w.At(i, j)

	return v, nil
}

// Adjacent reports whether i and j are distinct nodes joined by an edge of
// positive weight. Out-of-range indices are simply not adjacent.
// Complexity: O(1).
func (g *Graph) Adjacent(i, j int) bool {
	if i == j || !g.inRange(i) || !g.inRange(j) {
		return false
	}
	v, _ := g.w.At(i, j)

	return v > 0
}

// Degree returns the number of neighbours of node i (0 when out of range).
func (g *Graph) Degree(i int) int {
	deg := 0
	for j := 0; j < g.N(); j++ {
		if g.Adjacent(i, j) {
			deg++
		}
	}

	return deg
}

// Edges lists all edges with I<J, ordered by I asc then J asc.
// Complexity: O(n²).
func (g *Graph) Edges() []Edge {
	n := g.N()
	var (
		out  []Edge
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if v, _ = g.w.At(i, j); v > 0 {
				out = append(out, Edge{I: i, J: j, Weight: v})
			}
		}
	}

	return out
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return len(g.Edges()) }

// IsComplete reports whether every pair of distinct nodes is adjacent.
// The empty and single-node graphs are complete.
func (g *Graph) IsComplete() bool {
	n := g.N()
	return g.EdgeCount() == n*(n-1)/2
}

// Density is EdgeCount / (n choose 2); 0 for graphs with fewer than 2 nodes.
func (g *Graph) Density() float64 {
	n := g.N()
	if n < 2 {
		return 0
	}

	return float64(g.EdgeCount()) / float64(n*(n-1)/2)
}

// Matrix returns a copy of the weight matrix.
func (g *Graph) Matrix() *matrix.Dense { return g.w.CloneDense() }

// Rows returns the weight matrix as a fresh [][]float64.
func (g *Graph) Rows() [][]float64 { return g.w.ToRows() }

// Equal reports bit-for-bit equality of two graphs.
func (g *Graph) Equal(o *Graph) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.N() != o.N() {
		return false
	}
	var (
		i, j int
		a, b float64
	)
	for i = 0; i < g.N(); i++ {
		for j = 0; j < g.N(); j++ {
			a, _ = g.w.At(i, j)
			b, _ = o.w.At(i, j)
			if a != b {
				return false
			}
		}
	}

	return true
}

// String renders the weight matrix one row per line.
func (g *Graph) String() string { return g.w.String() }

func (g *Graph) inRange(i int) bool { return i >= 0 && i < g.N() }
