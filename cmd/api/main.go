package main

import (
	"fmt"
	"os"

	"teamboard/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "teamboard",
		Short:         "Team task board API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(config.LoadConfig())
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP API",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(config.LoadConfig())
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create the schema and insert the sample users, shops and channels",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigrate(cmd.Context(), config.LoadConfig())
			},
		},
	)
	return root
}

// newLogger builds the process logger and makes it available to packages that
// log through zap.L().
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsDevelopment() {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

func syncLogger(logger *zap.Logger) {
	if err := logger.Sync(); err != nil {
		zap.L().Debug("failed to sync logger", zap.Error(err))
	}
}
