package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leengari/cleanr/internal/config"
	"github.com/leengari/cleanr/internal/domain/dataset"
	"github.com/leengari/cleanr/internal/logging"
	"github.com/leengari/cleanr/internal/metrics"
	"github.com/leengari/cleanr/internal/pipeline"
	"github.com/leengari/cleanr/internal/report"
	"github.com/leengari/cleanr/internal/storage/loader"
)

type runOptions struct {
	configPath string
}

// session holds everything a command needs once configuration is resolved
type session struct {
	cfg      *config.Config
	logger   *slog.Logger
	closeFn  func()
	reporter *report.TextReporter
	metrics  *metrics.Observer
	pipeline *pipeline.Pipeline
}

func newCleanCommand(opts *runOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clean [input]",
		Short: "Summarize, impute, deduplicate and filter outliers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, args, opts, func(s *session, ds *dataset.Dataset) error {
				res, err := s.pipeline.Run(ds)
				if err != nil {
					return err
				}
				s.logger.Info("cleaning finished",
					slog.String("run_id", res.RunID),
					slog.Int("rows_in", res.Summary.Rows),
					slog.Int("rows_out", res.Dataset.NumRows()),
					slog.Int("warnings", len(res.Warnings())),
				)
				return nil
			})
		},
	}
}

func newSummaryCommand(opts *runOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary [input]",
		Short: "Report head rows, column kinds, missing counts and duplicates",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, args, opts, func(s *session, ds *dataset.Dataset) error {
				_, err := s.pipeline.Summarize(ds)
				return err
			})
		},
	}
}

// withSession resolves configuration, sets up logging, loads the dataset and
// hands both to fn. A dataset that fails to load never reaches fn.
func withSession(cmd *cobra.Command, args []string, opts *runOptions, fn func(*session, *dataset.Dataset) error) error {
	if len(args) == 1 {
		if err := cmd.Flags().Set("input", args[0]); err != nil {
			return err
		}
	}

	cfg, err := config.Load(opts.configPath, cmd.Flags())
	if err != nil {
		return err
	}

	s := newSession(cmd, cfg)
	defer s.closeFn()

	ds, err := loader.Load(cfg.InputPath, loader.Options{
		Delimiter: cfg.DelimiterRune(),
		Sheet:     cfg.Sheet,
		Logger:    s.logger,
	})
	if err != nil {
		s.logger.Error("failed to load dataset", slog.Any("error", err))
		return err
	}

	if err := fn(s, ds); err != nil {
		return err
	}

	if s.metrics != nil {
		if err := s.metrics.WriteTextfile(cfg.Metrics.File); err != nil {
			return err
		}
		s.logger.Debug("metrics written", slog.String("path", cfg.Metrics.File))
	}

	if err := s.reporter.Err(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func newSession(cmd *cobra.Command, cfg *config.Config) *session {
	logger, closeFn := logging.SetupLogger(logging.Options{
		Level:  logging.ParseLevel(cfg.Log.Level),
		SeqURL: cfg.Log.SeqURL,
		Output: cmd.ErrOrStderr(),
	})
	slog.SetDefault(logger)

	s := &session{
		cfg:      cfg,
		logger:   logger,
		closeFn:  closeFn,
		reporter: report.NewTextReporter(cmd.OutOrStdout(), cfg.NoColor),
	}

	popts := []pipeline.Option{
		pipeline.WithThreshold(cfg.Threshold),
		pipeline.WithHeadRows(cfg.HeadRows),
		pipeline.WithObserver(s.reporter),
		pipeline.WithObserver(pipeline.NewLoggingObserver(logger)),
	}
	if cfg.Metrics.File != "" {
		s.metrics = metrics.NewObserver()
		popts = append(popts, pipeline.WithObserver(s.metrics))
	}
	s.pipeline = pipeline.New(popts...)

	return s
}
