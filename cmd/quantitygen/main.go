// Package main provides the quantitygen CLI, which generates the quantity types of the measures
// package from quantity tables.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/smartcontractkit/quantities/pkg/commands"
	"github.com/smartcontractkit/quantities/pkg/commands/flags"
	"github.com/smartcontractkit/quantities/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	// The level is set once --log-level has been parsed, after the commands were built.
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	lggr, err := logger.NewWith(func(cfg *zap.Config) {
		cfg.Level = level
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = lggr.Sync() }()

	root, err := newRootCmd(lggr.Named("quantitygen"), level)
	if err != nil {
		return err
	}
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}

func newRootCmd(lggr logger.Logger, level zap.AtomicLevel) (*cobra.Command, error) {
	root := &cobra.Command{
		Use:           "quantitygen",
		Short:         "Generate dimensioned quantity types from quantity tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := logger.ParseConfig(flags.MustString(cmd.Flags().GetString("log-level")), "")
			if err != nil {
				return err
			}
			level.SetLevel(cfg.Level)

			return nil
		},
	}
	flags.LogLevel(root)

	cmds, err := commands.New(lggr).All()
	if err != nil {
		return nil, err
	}
	root.AddCommand(cmds...)

	return root, nil
}
