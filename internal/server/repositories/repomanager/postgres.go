// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/spakiosk/internal/dbx"
	"github.com/dmitrijs2005/spakiosk/internal/server/migrations"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/counters"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/events"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/redemptions"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/settings"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/tiers"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/tokens"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/wallets"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook. Rate-limit counters move to Redis
// when a client is attached.
type PostgresRepositoryManager struct {
	redis redis.UniversalClient
}

// Option configures a PostgresRepositoryManager.
type Option func(*PostgresRepositoryManager)

// WithRedisCounters stores rate-limit counters in Redis instead of Postgres.
func WithRedisCounters(client redis.UniversalClient) Option {
	return func(m *PostgresRepositoryManager) { m.redis = client }
}

func (m *PostgresRepositoryManager) Tokens(db dbx.DBTX) tokens.Repository {
	return tokens.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Wallets(db dbx.DBTX) wallets.Repository {
	return wallets.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Redemptions(db dbx.DBTX) redemptions.Repository {
	return redemptions.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Events(db dbx.DBTX) events.Repository {
	return events.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Settings(db dbx.DBTX) settings.Repository {
	return settings.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Tiers(db dbx.DBTX) tiers.Repository {
	return tiers.NewPostgresRepository(db)
}

// Counters ignores db when Redis is configured; counter updates are single
// atomic commands there and do not join the caller's transaction.
func (m *PostgresRepositoryManager) Counters(db dbx.DBTX) counters.Repository {
	if m.redis != nil {
		return counters.NewRedisRepository(m.redis)
	}
	return counters.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager(opts ...Option) RepositoryManager {
	m := &PostgresRepositoryManager{}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Open opens a pgx-backed pool and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}
