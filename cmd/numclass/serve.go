package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"numclass/internal/application"
	"numclass/internal/config"
	"numclass/pkg/contextx"
	"numclass/pkg/logx"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config.Load: %w", err)
			}

			log, err := logx.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return fmt.Errorf("logx.New: %w", err)
			}

			slog.SetDefault(log)

			ctx := contextx.WithLogger(cmd.Context(), log)

			if err := application.Run(ctx, cfg); err != nil {
				log.Error("application failed", logx.Error(err))
				return err
			}

			return nil
		},
	}
}
