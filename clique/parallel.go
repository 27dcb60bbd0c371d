// SPDX-License-Identifier: MIT
// Package: lvclique/clique
//
// parallel.go - ParallelSearch splits [0, 2^n) into contiguous chunks and
// scans them concurrently. Feasibility checks are pure, so the boolean
// result equals BruteForceSearch; only the wall time differs.
//
// Concurrency:
//   - One goroutine per chunk under an errgroup; the graph is read-only.
//   - The first hit cancels the group context; other workers notice within
//     pollEvery indices.
//   - Parent context cancellation is reported as ctx.Err().

package clique

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvclique/graph"
)

const methodParallel = "ParallelSearch"

// errFound stops the errgroup once any worker hits a clique.
var errFound = errors.New("clique: found")

// ParallelSearch is a concurrent BruteForceSearch. workers ≤ 0 means
// runtime.GOMAXPROCS(0); workers is capped at the number of assignments.
//
// Errors: ErrNilGraph, ErrTooManyNodes, or ctx.Err() when the caller cancels
// before an answer is known.
func ParallelSearch(ctx context.Context, g *graph.Graph, k, workers int) (bool, error) {
	if err := checkSearchable(methodParallel, g); err != nil {
		return false, err
	}
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("%s: %w", methodParallel, err)
	}
	if k < 0 || k > g.N() {
		return false, nil
	}

	total := uint64(1) << uint(g.N())
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if uint64(workers) > total {
		workers = int(total)
	}
	chunk := (total + uint64(workers) - 1) / uint64(workers)

	var found atomic.Bool
	eg, egCtx := errgroup.WithContext(ctx)
	stop := func() bool { return egCtx.Err() != nil }

	for w := 0; w < workers; w++ {
		lo := uint64(w) * chunk
		hi := min(lo+chunk, total)
		if lo >= hi {
			break
		}
		eg.Go(func() error {
			interrupted := scan(g, k, lo, hi, stop, func(Assignment) bool {
				found.Store(true)
				return false
			})
			switch {
			case found.Load():
				return errFound
			case interrupted:
				return egCtx.Err()
			default:
				return nil
			}
		})
	}

	err := eg.Wait()
	if found.Load() {
		return true, nil
	}
	if err != nil && !errors.Is(err, errFound) {
		return false, fmt.Errorf("%s: %w", methodParallel, err)
	}

	return false, nil
}
