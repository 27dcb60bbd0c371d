// SPDX-License-Identifier: MIT
// Package: lvclique/verify
//
// solver.go - the Solver boundary and two implementations.

package verify

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvclique/clique"
	"github.com/katalvlaran/lvclique/decode"
)

// Solver proposes an assignment for an instance. Implementations wrap an
// eigensolver, an annealer, a heuristic or anything else; the oracle only
// judges the answer.
type Solver interface {
	Solve(ctx context.Context, inst clique.Instance) (clique.Assignment, error)
}

// SolverFunc adapts a plain function to Solver.
type SolverFunc func(ctx context.Context, inst clique.Instance) (clique.Assignment, error)

// Solve calls f.
func (f SolverFunc) Solve(ctx context.Context, inst clique.Instance) (clique.Assignment, error) {
	return f(ctx, inst)
}

// StateFunc returns the final state vector of an external solver run.
type StateFunc func(ctx context.Context, inst clique.Instance) ([]complex128, error)

// DistributionSolver decodes the most likely basis state of a state vector
// into an assignment.
type DistributionSolver struct {
	State   StateFunc
	Order   decode.BitOrder
	Mapping decode.Mapping
}

// Solve implements Solver.
func (s DistributionSolver) Solve(ctx context.Context, inst clique.Instance) (clique.Assignment, error) {
	if s.State == nil {
		return nil, fmt.Errorf("DistributionSolver: %w", ErrNilSolver)
	}
	amps, err := s.State(ctx, inst)
	if err != nil {
		return nil, err
	}
	x, err := decode.MostLikely(amps, s.Order)
	if err != nil {
		return nil, fmt.Errorf("DistributionSolver: %w", err)
	}

	return decode.ToGraphAssignment(x, s.Mapping), nil
}

// ExhaustiveSolver is a reference Solver: the first feasible assignment in
// enumeration order, or the all-zero assignment when there is none.
type ExhaustiveSolver struct{}

// Solve implements Solver.
func (ExhaustiveSolver) Solve(ctx context.Context, inst clique.Instance) (clique.Assignment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a, found, err := clique.FindFirst(inst.Graph(), inst.K())
	if err != nil {
		return nil, err
	}
	if !found {
		return make(clique.Assignment, inst.N()), nil
	}

	return a, nil
}
