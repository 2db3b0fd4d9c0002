package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"career-compass/internal/database"
)

type Runner struct {
	Seeders []Seeder
	Logger  *slog.Logger
}

// Run applies each seeder in its own transaction, stopping at the first failure.
func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return database.ErrNilDB
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		start := time.Now()
		var inserted int64
		err := database.WithTx(ctx, db, func(tx database.Tx) error {
			n, err := s.Seed(ctx, tx)
			inserted = n
			return err
		})
		if err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		logger.Info("seeder finished", "seeder", s.Name(), "inserted", inserted, "duration", time.Since(start))
	}
	return nil
}
