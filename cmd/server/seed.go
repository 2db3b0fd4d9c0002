package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/database"
	"career-compass/internal/database/seeder"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/pkg/logger"
	"career-compass/internal/usecase"

	"github.com/spf13/cobra"
)

var seedTimeout time.Duration

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Apply migrations and load the starter job and resource catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDB(cmd.Context(), seedTimeout, func(ctx context.Context, db database.DB, log *slog.Logger) error {
			if err := runMigrations(ctx, db, log); err != nil {
				return err
			}

			r := seeder.Runner{Seeders: seeder.Defaults(), Logger: logger.Component(log, "seeder")}
			if err := r.Run(ctx, db); err != nil {
				return err
			}

			return invalidateCatalogCache(ctx, log)
		})
	},
}

func init() {
	seedCmd.Flags().DurationVar(&seedTimeout, "timeout", 2*time.Minute, "Overall timeout")
	rootCmd.AddCommand(seedCmd)
}

// invalidateCatalogCache drops cached listings so the new rows show up
// before the TTL runs out.
func invalidateCatalogCache(ctx context.Context, log *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	redis := cache.NewRedis(ctx, cfg.Redis, log)
	defer func() {
		_ = redis.Close()
	}()

	if err := redis.InvalidatePrefixes(ctx, usecase.JobsCachePrefix, usecase.ResourcesCachePrefix); err != nil {
		log.Warn("cache invalidation failed", "error", err)
	}
	return nil
}
