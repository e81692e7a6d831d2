package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muliwe/go-sign-classifier/internal/driver"
	"github.com/muliwe/go-sign-classifier/internal/logger"
)

// Version is the application version, set at build time.
var Version = "0.1.0"

type options struct {
	logLevel   string
	quiet      bool
	recordPath string
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{
		logLevel:   "warn",
		recordPath: os.Getenv("NUMCHECK_RECORD"),
	}

	// Allow log level override from environment
	if level := os.Getenv("NUMCHECK_LOG_LEVEL"); level != "" {
		opts.logLevel = level
	}

	cmd := &cobra.Command{
		Use:           "numcheck",
		Short:         "Classify integers as positive, negative, or zero",
		Long:          "numcheck prints the sign classification of the sample inputs -5, 0 and 7.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDriver(cmd, opts, driver.DefaultConfig())
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", opts.logLevel, "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress all logging output")
	cmd.PersistentFlags().StringVar(&opts.recordPath, "record", opts.recordPath, "Append results as JSON lines to this file")

	cmd.AddCommand(checkCmd(opts))
	cmd.AddCommand(versionCmd())

	return cmd
}

func checkCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check [--] <int>...",
		Short: "Classify the given integers",
		Long:  "Classify the given integers. Place negative numbers after -- so they are not read as flags.",
		Args: cobra.MatchAll(cobra.MinimumNArgs(1), func(_ *cobra.Command, args []string) error {
			_, err := parseInputs(args)
			return err
		}),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := parseInputs(args)
			if err != nil {
				return err
			}
			return runDriver(cmd, opts, driver.Config{Inputs: inputs})
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "numcheck %s\n", Version)
		},
	}
}

func parseInputs(args []string) ([]int, error) {
	inputs := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", arg, err)
		}
		inputs = append(inputs, n)
	}
	return inputs, nil
}

func runDriver(cmd *cobra.Command, opts *options, cfg driver.Config) error {
	log, err := logger.NewConsole(opts.logLevel, opts.quiet)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	driverOpts := []driver.Option{driver.WithLogger(log)}

	if opts.recordPath != "" {
		rec, err := logger.New(logger.ConfigFromPath(opts.recordPath))
		if err != nil {
			return fmt.Errorf("failed to open record file: %w", err)
		}
		defer func() {
			if err := rec.Close(); err != nil {
				log.Warn("failed to close record file", zap.Error(err))
			}
		}()
		log.Info("recording results", zap.String("path", rec.LogPath()))
		driverOpts = append(driverOpts, driver.WithRecorder(rec))
	}

	d, err := driver.New(cfg, cmd.OutOrStdout(), driverOpts...)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return d.Run(ctx)
}
