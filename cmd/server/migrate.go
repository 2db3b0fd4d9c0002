package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/database"
	"career-compass/internal/database/migration"
	dbpostgres "career-compass/internal/database/postgres"
	"career-compass/internal/pkg/logger"
	"career-compass/migrations"

	"github.com/spf13/cobra"
)

var (
	migrateTimeout time.Duration
	migrateStatus  bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending SQL migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDB(cmd.Context(), migrateTimeout, func(ctx context.Context, db database.DB, log *slog.Logger) error {
			if migrateStatus {
				return printPendingMigrations(ctx, cmd, db)
			}
			return runMigrations(ctx, db, log)
		})
	},
}

func init() {
	migrateCmd.Flags().DurationVar(&migrateTimeout, "timeout", 2*time.Minute, "Overall timeout")
	migrateCmd.Flags().BoolVar(&migrateStatus, "status", false, "List pending migrations without applying them")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrations(ctx context.Context, db database.DB, log *slog.Logger) error {
	r := migration.Runner{FS: migrations.FS, Logger: logger.Component(log, "migration")}
	n, err := r.Run(ctx, db.SQLDB())
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Info("migrations complete", "applied", n)
	return nil
}

func printPendingMigrations(ctx context.Context, cmd *cobra.Command, db database.DB) error {
	pending, err := migration.Runner{FS: migrations.FS}.Pending(ctx, db.SQLDB())
	if err != nil {
		return fmt.Errorf("migrate status: %w", err)
	}
	out := cmd.OutOrStdout()
	if len(pending) == 0 {
		fmt.Fprintln(out, "no pending migrations")
		return nil
	}
	for _, m := range pending {
		fmt.Fprintf(out, "pending V%d %s\n", m.Version, m.Name)
	}
	return nil
}

// withDB loads config, opens the pool and hands it to fn under timeout.
func withDB(parent context.Context, timeout time.Duration, fn func(context.Context, database.DB, *slog.Logger) error) error {
	if parent == nil {
		parent = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.Init(cfg.App.Environment)

	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	return fn(ctx, db, log)
}
