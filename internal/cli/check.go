// SPDX-License-Identifier: MIT
// Package: lvclique/internal/cli

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvclique/clique"
)

type checkResult struct {
	Assignment string `json:"assignment" yaml:"assignment"`
	K          int    `json:"k" yaml:"k"`
	Size       int    `json:"size" yaml:"size"`
	Feasible   bool   `json:"feasible" yaml:"feasible"`
}

func (r checkResult) Text() string {
	return fmt.Sprintf("%s k=%d size=%d feasible=%t", r.Assignment, r.K, r.Size, r.Feasible)
}

func newCheckCmd() *cobra.Command {
	var (
		gf   graphFlags
		k    int
		bits string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether an assignment selects a k-clique",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := appFrom(cmd)
			if err != nil {
				return err
			}
			if bits == "" {
				return fmt.Errorf("--assignment is required: %w", ErrUsage)
			}
			a, err := clique.ParseAssignment(bits)
			if err != nil {
				return err
			}
			g, err := gf.load(cmd, app)
			if err != nil {
				return err
			}

			kk := kFlag(cmd, app, k)
			ok, err := clique.IsFeasible(a, g, kk)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), app.Output, checkResult{
				Assignment: a.String(), K: kk, Size: a.Size(), Feasible: ok,
			})
		},
	}
	gf.register(cmd)
	cmd.Flags().IntVarP(&k, "k", "k", 0, "clique size (overrides config)")
	cmd.Flags().StringVarP(&bits, "assignment", "a", "", "node selection as a bitstring, node 0 first (e.g. 10110)")

	return cmd
}
