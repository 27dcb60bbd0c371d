// SPDX-License-Identifier: MIT

// Package cli is the lvclique command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvclique/internal/config"
	"github.com/katalvlaran/lvclique/internal/logging"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// ErrUsage marks bad flag combinations or values.
var ErrUsage = errors.New("cli: invalid usage")

// RootOptions holds global flags.
type RootOptions struct {
	ConfigPath   string
	LogLevel     string
	OutputFormat string
}

// App carries initialised dependencies through the command tree.
type App struct {
	Config *config.Config
	Logger *zap.Logger
	Output string
}

type appKey struct{}

// NewRootCommand builds the root command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "lvclique",
		Short: "Random graph sampler and exhaustive k-clique oracle",
		Long: "lvclique samples seeded random weighted graphs, decides whether they\n" +
			"contain a clique of size k by exhaustive search, and checks external\n" +
			"solver answers against that ground truth.",
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return persistentPreRun(cmd, opts)
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if app, err := appFrom(cmd); err == nil {
				_ = app.Logger.Sync()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (YAML)")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error); overrides config")
	pf.StringVarP(&opts.OutputFormat, "output", "o", FormatText, "output format (text, json, yaml)")

	cmd.AddCommand(
		newSampleCmd(),
		newSearchCmd(),
		newCheckCmd(),
		newVerifyCmd(),
	)

	return cmd
}

// Execute runs the command tree with args and reports errors on stderr.
func Execute(ctx context.Context, args []string) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	if err := checkFormat(opts.OutputFormat); err != nil {
		return err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}

	logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}

	app := &App{Config: cfg, Logger: logger.Named(cmd.Name()), Output: opts.OutputFormat}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, appKey{}, app))

	return nil
}

func appFrom(cmd *cobra.Command) (*App, error) {
	if ctx := cmd.Context(); ctx != nil {
		if app, ok := ctx.Value(appKey{}).(*App); ok {
			return app, nil
		}
	}
	return nil, errors.New("cli: command context not initialised")
}
