package main

import (
	"context"
	"time"

	"vetcare/internal/config"
	"vetcare/internal/infrastructure/database"
	"vetcare/internal/infrastructure/logger"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the DynamoDB tables and indexes if they are missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			wait, _ := cmd.Flags().GetDuration("wait")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(cfg.Env)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ddb, err := database.ConnectDynamoDB(ctx, cfg)
			if err != nil {
				return err
			}
			if err := database.EnsureTables(ctx, ddb, database.Tables(cfg), wait, log); err != nil {
				log.Error().Err(err).Msg("migration failed")
				return err
			}
			log.Info().Msg("tables ready")
			return nil
		},
	}
	cmd.Flags().Duration("wait", 2*time.Minute, "Maximum time to wait for each table to become active")
	return cmd
}
