// SPDX-License-Identifier: MIT
// Package: lvclique/internal/cli

package cli

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvclique/graph"
)

func newSampleCmd() *cobra.Command {
	var (
		gf  graphFlags
		out string
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Sample a seeded random graph and write it as an instance file",
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

			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			if app.Output == FormatJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				err = enc.Encode(g)
			} else {
				err = graph.Encode(w, g)
			}
			if err != nil {
				return err
			}

			app.Logger.Info("graph written",
				zap.Int("nodes", g.N()),
				zap.Int("edges", g.EdgeCount()),
				zap.Bool("complete", g.IsComplete()),
				zap.String("out", out),
			)
			return nil
		},
	}
	gf.register(cmd)
	cmd.Flags().StringVar(&out, "out", "", "write the instance to this file instead of stdout")

	return cmd
}
