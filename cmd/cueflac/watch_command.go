package main

import (
	"context"
	"errors"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"cueflac/internal/convert"
	"cueflac/internal/logging"
	"cueflac/internal/watch"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var settleSeconds int

	cmd := &cobra.Command{
		Use:   "watch [source-dir]",
		Short: "Watch a directory and convert after new material settles",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("settle") {
				cfg.Watch.SettleSeconds = settleSeconds
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := ctx.buildLogger()
			if err != nil {
				return err
			}
			store, err := ctx.openHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			sourceDir := "."
			if len(args) == 1 {
				sourceDir = args[0]
			}
			root, err := filepath.Abs(sourceDir)
			if err != nil {
				return err
			}

			converter := convert.New(cfg, logger, store)
			watcher := watch.New(
				root,
				time.Duration(cfg.Watch.SettleSeconds)*time.Second,
				[]string{convert.WorkspacePrefix},
				logger,
				func(runCtx context.Context, settled string) {
					if _, runErr := converter.Run(runCtx, settled); runErr != nil {
						logger.Error("conversion pass failed", logging.Error(runErr))
					}
				},
			)

			signalCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := watcher.Run(signalCtx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&settleSeconds, "settle", 0, "Seconds the tree must stay quiet before converting")
	return cmd
}
