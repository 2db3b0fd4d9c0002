package seeder

import (
	"context"

	"career-compass/internal/database"
)

// Seeder loads fixed rows. Seed runs inside a transaction owned by the
// Runner and reports how many rows it inserted; existing rows are left alone.
type Seeder interface {
	Name() string
	Seed(ctx context.Context, q database.Querier) (int64, error)
}
