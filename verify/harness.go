// SPDX-License-Identifier: MIT
// Package: lvclique/verify
//
// harness.go - Harness.Check, the solver-versus-oracle comparison.

package verify

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvclique/clique"
)

// Report is the outcome of one Check.
type Report struct {
	RunID           uuid.UUID         `json:"run_id" yaml:"run_id"`
	Nodes           int               `json:"nodes" yaml:"nodes"`
	K               int               `json:"k" yaml:"k"`
	Assignment      clique.Assignment `json:"-" yaml:"-"`
	Bits            string            `json:"assignment" yaml:"assignment"`
	SolverFeasible  bool              `json:"solver_feasible" yaml:"solver_feasible"`
	OracleHasClique bool              `json:"oracle_has_clique" yaml:"oracle_has_clique"`
	Agree           bool              `json:"agree" yaml:"agree"`
	Duration        time.Duration     `json:"duration_ns" yaml:"duration"`
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("verify: WithLogger(nil)")
	}
	return func(h *Harness) { h.log = l }
}

// WithWorkers makes the oracle use clique.ParallelSearch with the given
// worker count (≤ 0 means GOMAXPROCS). The default is the sequential search.
func WithWorkers(workers int) Option {
	return func(h *Harness) {
		h.parallel = true
		h.workers = workers
	}
}

// Harness compares a Solver against the exhaustive oracle.
type Harness struct {
	solver   Solver
	log      *zap.Logger
	metrics  *metrics
	parallel bool
	workers  int
}

// NewHarness builds a Harness around s.
func NewHarness(s Solver, opts ...Option) (*Harness, error) {
	if s == nil {
		return nil, fmt.Errorf("NewHarness: %w", ErrNilSolver)
	}
	h := &Harness{solver: s, log: zap.NewNop(), metrics: newMetrics()}
	for _, opt := range opts {
		opt(h)
	}

	return h, nil
}

// Registry exposes the harness collectors for scraping or inspection.
func (h *Harness) Registry() *prometheus.Registry { return h.metrics.registry }

// Check runs the solver on inst and compares its answer with the oracle.
//
// Errors:
//   - ErrSolver wrapping the solver's error.
//   - ErrOracle wrapping clique errors (wrong assignment length, non-binary
//     values, too many nodes) or the caller's cancellation during the search.
func (h *Harness) Check(ctx context.Context, inst clique.Instance) (Report, error) {
	start := time.Now()
	rep := Report{RunID: uuid.New(), Nodes: inst.N(), K: inst.K()}
	log := h.log.With(
		zap.String("run_id", rep.RunID.String()),
		zap.Int("nodes", rep.Nodes),
		zap.Int("k", rep.K),
	)

	fail := func(err error) (Report, error) {
		rep.Duration = time.Since(start)
		h.metrics.checks.WithLabelValues(OutcomeError).Inc()
		h.metrics.duration.Observe(rep.Duration.Seconds())
		log.Error("check failed", zap.Error(err), zap.Duration("duration", rep.Duration))
		return rep, err
	}

	a, err := h.solver.Solve(ctx, inst)
	if err != nil {
		return fail(fmt.Errorf("Check: %w: %w", ErrSolver, err))
	}
	rep.Assignment, rep.Bits = a, a.String()

	rep.SolverFeasible, err = inst.IsFeasible(a)
	if err != nil {
		return fail(fmt.Errorf("Check: %w: %w", ErrOracle, err))
	}

	if h.parallel {
		rep.OracleHasClique, err = inst.ParallelSearch(ctx, h.workers)
	} else {
		rep.OracleHasClique, err = inst.BruteForceSearch()
	}
	if err != nil {
		return fail(fmt.Errorf("Check: %w: %w", ErrOracle, err))
	}

	rep.Agree = rep.SolverFeasible == rep.OracleHasClique
	rep.Duration = time.Since(start)
	h.metrics.duration.Observe(rep.Duration.Seconds())

	fields := []zap.Field{
		zap.String("assignment", rep.Bits),
		zap.Bool("solver_feasible", rep.SolverFeasible),
		zap.Bool("oracle_has_clique", rep.OracleHasClique),
		zap.Duration("duration", rep.Duration),
	}
	if rep.Agree {
		h.metrics.checks.WithLabelValues(OutcomeAgree).Inc()
		log.Info("solver agrees with oracle", fields...)
	} else {
		h.metrics.checks.WithLabelValues(OutcomeDisagree).Inc()
		log.Warn("solver disagrees with oracle", fields...)
	}

	return rep, nil
}
