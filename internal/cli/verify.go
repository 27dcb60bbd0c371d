// SPDX-License-Identifier: MIT
// Package: lvclique/internal/cli

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvclique/clique"
	"github.com/katalvlaran/lvclique/decode"
	"github.com/katalvlaran/lvclique/verify"
)

// ErrDisagree is returned by verify when the solver and the oracle differ.
var ErrDisagree = errors.New("cli: solver disagrees with oracle")

type verifyResult struct {
	verify.Report `yaml:",inline"`
}

func (r verifyResult) Text() string {
	return fmt.Sprintf("run=%s n=%d k=%d assignment=%s solver_feasible=%t oracle=%t agree=%t (%s)",
		r.RunID, r.Nodes, r.K, r.Bits, r.SolverFeasible, r.OracleHasClique, r.Agree, r.Duration)
}

// countsSolver answers with the most frequent bitstring of a shot histogram.
func countsSolver(counts map[string]int, order decode.BitOrder, m decode.Mapping) verify.Solver {
	return verify.SolverFunc(func(context.Context, clique.Instance) (clique.Assignment, error) {
		x, err := decode.MostLikelyCounts(counts, order)
		if err != nil {
			return nil, err
		}
		return decode.ToGraphAssignment(x, m), nil
	})
}

func readCounts(path string) (map[string]int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	counts := map[string]int{}
	if err := yaml.Unmarshal(raw, &counts); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return counts, nil
}

func newVerifyCmd() *cobra.Command {
	var (
		gf         graphFlags
		k          int
		countsPath string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Compare a solver answer with the exhaustive oracle",
		Long: "verify decodes the most frequent bitstring of a shot-count file (YAML or\n" +
			"JSON map of bitstring to count) with the configured bit order and mapping,\n" +
			"then checks it against exhaustive search. Without --counts the built-in\n" +
			"exhaustive reference solver is used.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := appFrom(cmd)
			if err != nil {
				return err
			}
			g, err := gf.load(cmd, app)
			if err != nil {
				return err
			}
			inst, err := clique.NewInstance(g, kFlag(cmd, app, k))
			if err != nil {
				return err
			}

			var solver verify.Solver = verify.ExhaustiveSolver{}
			if countsPath != "" {
				counts, err := readCounts(countsPath)
				if err != nil {
					return err
				}
				solver = countsSolver(counts, app.Config.BitOrder(), app.Config.Mapping())
			}

			opts := []verify.Option{verify.WithLogger(app.Logger)}
			if s := app.Config.Search; s.Parallel || s.Workers > 0 {
				opts = append(opts, verify.WithWorkers(s.Workers))
			}
			h, err := verify.NewHarness(solver, opts...)
			if err != nil {
				return err
			}

			rep, err := h.Check(cmd.Context(), inst)
			if err != nil {
				return err
			}
			if err := render(cmd.OutOrStdout(), app.Output, verifyResult{rep}); err != nil {
				return err
			}
			if !rep.Agree {
				return ErrDisagree
			}
			return nil
		},
	}
	gf.register(cmd)
	cmd.Flags().IntVarP(&k, "k", "k", 0, "clique size (overrides config)")
	cmd.Flags().StringVar(&countsPath, "counts", "", "shot-count file to decode as the solver answer")

	return cmd
}
