// SPDX-License-Identifier: MIT
// Package: lvclique/internal/cli

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvclique/clique"
)

type searchResult struct {
	Nodes     int    `json:"nodes" yaml:"nodes"`
	K         int    `json:"k" yaml:"k"`
	HasClique bool   `json:"has_clique" yaml:"has_clique"`
	Witness   string `json:"witness,omitempty" yaml:"witness,omitempty"`
	Count     *int   `json:"count,omitempty" yaml:"count,omitempty"`
}

func (r searchResult) Text() string {
	s := fmt.Sprintf("n=%d k=%d has_clique=%t", r.Nodes, r.K, r.HasClique)
	if r.Witness != "" {
		s += " witness=" + r.Witness
	}
	if r.Count != nil {
		s += fmt.Sprintf(" count=%d", *r.Count)
	}
	return s
}

func newSearchCmd() *cobra.Command {
	var (
		gf       graphFlags
		k        int
		parallel bool
		workers  int
		count    bool
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Decide by exhaustive search whether the graph has a k-clique",
		Args:  cobra.NoArgs,
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
			if !cmd.Flags().Changed("parallel") {
				parallel = app.Config.Search.Parallel
			}
			if !cmd.Flags().Changed("workers") {
				workers = app.Config.Search.Workers
			}

			res := searchResult{Nodes: inst.N(), K: inst.K()}
			if parallel || workers > 0 {
				res.HasClique, err = inst.ParallelSearch(cmd.Context(), workers)
			} else {
				var first clique.Assignment
				first, res.HasClique, err = clique.FindFirst(g, inst.K())
				res.Witness = first.String()
			}
			if err != nil {
				return err
			}
			if count {
				n, err := clique.CountCliques(g, inst.K())
				if err != nil {
					return err
				}
				res.Count = &n
			}

			app.Logger.Info("search finished",
				zap.Int("nodes", res.Nodes),
				zap.Int("k", res.K),
				zap.Bool("has_clique", res.HasClique),
			)
			return render(cmd.OutOrStdout(), app.Output, res)
		},
	}
	gf.register(cmd)
	fl := cmd.Flags()
	fl.IntVarP(&k, "k", "k", 0, "clique size (overrides config)")
	fl.BoolVar(&parallel, "parallel", false, "split the search across goroutines")
	fl.IntVar(&workers, "workers", 0, "parallel workers (0 = GOMAXPROCS); implies --parallel when > 0")
	fl.BoolVar(&count, "count", false, "also count every k-clique")

	return cmd
}
