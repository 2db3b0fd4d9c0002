package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/database"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDatabaseConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		DBHost:    " db.internal ",
		DBPort:    "5433",
		DBName:    "career",
		DBUser:    "career",
		DBSSLMode: "disable",
	}
}

func TestDSN_QuotesPassword(t *testing.T) {
	cfg := testDatabaseConfig()
	cfg.DBPassword = `it's a secret`

	assert.Equal(t,
		`host=db.internal port=5433 user=career password='it\'s a secret' dbname=career sslmode=disable`,
		DSN(cfg),
	)

	cfg.DBPassword = ""
	assert.Contains(t, DSN(cfg), "password='' ")
}

func TestPoolConfig_AppliesPoolSettings(t *testing.T) {
	cfg := testDatabaseConfig()
	cfg.DBPassword = "pa ss"
	cfg.ConnectTimeout = 3 * time.Second
	cfg.PoolMaxConns = 7
	cfg.PoolMinConns = 2
	cfg.PoolMaxConnLifetime = 20 * time.Minute
	cfg.PoolMaxConnIdleTime = 5 * time.Minute
	cfg.PoolHealthCheckPeriod = 30 * time.Second

	pcfg, err := poolConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", pcfg.ConnConfig.Host)
	assert.Equal(t, uint16(5433), pcfg.ConnConfig.Port)
	assert.Equal(t, "pa ss", pcfg.ConnConfig.Password)
	assert.Equal(t, 3*time.Second, pcfg.ConnConfig.ConnectTimeout)
	assert.Equal(t, int32(7), pcfg.MaxConns)
	assert.Equal(t, int32(2), pcfg.MinConns)
	assert.Equal(t, 20*time.Minute, pcfg.MaxConnLifetime)
	assert.Equal(t, 5*time.Minute, pcfg.MaxConnIdleTime)
	assert.Equal(t, 30*time.Second, pcfg.HealthCheckPeriod)
}

func TestPoolConfig_RejectsBadPort(t *testing.T) {
	cfg := testDatabaseConfig()
	cfg.DBPort = "not-a-port"

	_, err := poolConfig(cfg)
	assert.Error(t, err)
}

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505"}
	assert.True(t, IsUniqueViolation(dup))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert user: %w", dup)))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("23505")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestZeroPool_FailsWithErrNilDB(t *testing.T) {
	var p Pool
	ctx := context.Background()

	_, err := p.Exec(ctx, "SELECT 1")
	assert.ErrorIs(t, err, database.ErrNilDB)
	_, err = p.Query(ctx, "SELECT 1")
	assert.ErrorIs(t, err, database.ErrNilDB)
	assert.ErrorIs(t, p.QueryRow(ctx, "SELECT 1").Scan(), database.ErrNilDB)
	assert.ErrorIs(t, p.Ping(ctx), database.ErrNilDB)
	_, err = p.Begin(ctx)
	assert.ErrorIs(t, err, database.ErrNilDB)
	assert.NoError(t, p.Close())
	assert.Nil(t, p.SQLDB())
}
