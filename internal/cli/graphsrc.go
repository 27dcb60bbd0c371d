// SPDX-License-Identifier: MIT
// Package: lvclique/internal/cli
//
// graphsrc.go - the shared "--graph file or sample from config" input.

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvclique/graph"
	"github.com/katalvlaran/lvclique/sampler"
)

// graphFlags are accepted by every command that needs a graph.
type graphFlags struct {
	path        string
	nodes       int
	edgeProb    float64
	weightRange float64
	seed        int64
}

func (f *graphFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.path, "graph", "g", "", "read the graph from a YAML instance file instead of sampling")
	fl.IntVar(&f.nodes, "nodes", 0, "number of nodes (overrides config)")
	fl.Float64Var(&f.edgeProb, "edge-prob", 0, "edge probability in [0,1] (overrides config)")
	fl.Float64Var(&f.weightRange, "weight-range", 0, "upper bound of edge weights (overrides config)")
	fl.Int64Var(&f.seed, "seed", 0, "random seed (overrides config)")
}

// params merges explicitly set flags over the configured sampler input.
func (f *graphFlags) params(cmd *cobra.Command, app *App) sampler.Params {
	p := app.Config.SamplerParams()
	fl := cmd.Flags()
	if fl.Changed("nodes") {
		p.Nodes = f.nodes
	}
	if fl.Changed("edge-prob") {
		p.EdgeProb = f.edgeProb
	}
	if fl.Changed("weight-range") {
		p.WeightRange = f.weightRange
	}
	if fl.Changed("seed") {
		p.Seed = f.seed
	}
	return p
}

// load reads --graph when given, otherwise samples.
func (f *graphFlags) load(cmd *cobra.Command, app *App) (*graph.Graph, error) {
	if f.path != "" {
		file, err := os.Open(f.path)
		if err != nil {
			return nil, err
		}
		defer file.Close()

		g, err := graph.Decode(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.path, err)
		}
		app.Logger.Debug("graph loaded", zap.String("path", f.path), zap.Int("nodes", g.N()))
		return g, nil
	}

	p := f.params(cmd, app)
	g, err := sampler.Sample(p)
	if err != nil {
		return nil, err
	}
	app.Logger.Debug("graph sampled",
		zap.Int("nodes", p.Nodes),
		zap.Float64("edge_prob", p.EdgeProb),
		zap.Float64("weight_range", p.WeightRange),
		zap.Int64("seed", p.Seed),
		zap.Int("edges", g.EdgeCount()),
	)
	return g, nil
}

// kFlag resolves --k against the configured default.
func kFlag(cmd *cobra.Command, app *App, k int) int {
	if cmd.Flags().Changed("k") {
		return k
	}
	return app.Config.Search.K
}
