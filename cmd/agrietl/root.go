package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"agrietl/internal/config"
	"agrietl/internal/records"
	"agrietl/internal/report"
	"agrietl/internal/storage"
)

// Deps holds the collaborators commands reach through. Tests replace them.
type Deps struct {
	Getenv   func(string) string
	DotEnv   []string
	OpenRepo func(ctx context.Context, cfg storage.Config) (storage.Repository, error)
	Render   func(ctx context.Context, charts []report.Chart, recs []records.Record, opt report.Options) (report.Result, error)
	Out      io.Writer
}

func defaultDeps() Deps {
	return Deps{
		Getenv:   os.Getenv,
		DotEnv:   []string{".env"},
		OpenRepo: storage.New,
		Render:   report.RenderAll,
		Out:      os.Stdout,
	}
}

func newRootCmd(deps Deps) *cobra.Command {
	// .env must be in the environment before flag defaults are read.
	if err := config.LoadDotEnv(deps.DotEnv...); err != nil {
		log.WithError(err).Warn("could not load .env")
	}

	var verbose bool
	root := &cobra.Command{
		Use:           "agrietl",
		Short:         "Load ICRISAT district crop statistics and chart them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			log.SetOutput(cmd.ErrOrStderr())
			log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
			if verbose {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
		},
	}
	root.SetOut(deps.Out)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logs")
	cfg := config.Bind(root.PersistentFlags(), deps.Getenv)

	root.AddCommand(
		&cobra.Command{
			Use:   "run",
			Short: "Load the source file into the database, then render the report",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withSignals(cmd, func(ctx context.Context) error { return runPipeline(ctx, *cfg, deps, true, true) })
			},
		},
		&cobra.Command{
			Use:   "load",
			Short: "Load the source file into the database",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withSignals(cmd, func(ctx context.Context) error { return runPipeline(ctx, *cfg, deps, true, false) })
			},
		},
		&cobra.Command{
			Use:   "report",
			Short: "Render the chart set from the source file without touching the database",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withSignals(cmd, func(ctx context.Context) error { return runPipeline(ctx, *cfg, deps, false, true) })
			},
		},
		&cobra.Command{
			Use:   "check",
			Short: "Validate configuration and the source file's columns",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withSignals(cmd, func(ctx context.Context) error { return runCheck(ctx, *cfg, deps) })
			},
		},
	)
	return root
}

// withSignals runs fn with a context cancelled on SIGINT or SIGTERM.
func withSignals(cmd *cobra.Command, fn func(context.Context) error) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := fn(ctx); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name(), err)
	}
	return nil
}
