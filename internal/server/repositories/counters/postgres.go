package counters

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/spakiosk/internal/common"
	"github.com/dmitrijs2005/spakiosk/internal/dbx"
	"github.com/dmitrijs2005/spakiosk/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, identity, endpoint string) (*models.RateLimitCounter, error) {
	query := `
		SELECT count, reset_at
		FROM rate_limit_counters
		WHERE identity = $1 AND endpoint = $2
	`
	c := models.RateLimitCounter{Identity: identity, Endpoint: endpoint}
	err := r.db.QueryRowContext(ctx, query, identity, endpoint).Scan(&c.Count, &c.ResetAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &c, nil
}

func (r *PostgresRepository) Increment(ctx context.Context, identity, endpoint string, now, resetAt time.Time) (*models.RateLimitCounter, error) {
	query := `
		INSERT INTO rate_limit_counters AS c (identity, endpoint, count, reset_at)
		VALUES ($1, $2, 1, $4)
		ON CONFLICT (identity, endpoint) DO UPDATE SET
			count    = CASE WHEN c.reset_at <= $3 THEN 1 ELSE c.count + 1 END,
			reset_at = CASE WHEN c.reset_at <= $3 THEN EXCLUDED.reset_at ELSE c.reset_at END
		RETURNING count, reset_at
	`
	c := models.RateLimitCounter{Identity: identity, Endpoint: endpoint}
	err := r.db.QueryRowContext(ctx, query, identity, endpoint, now, resetAt).Scan(&c.Count, &c.ResetAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &c, nil
}

func (r *PostgresRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rate_limit_counters WHERE reset_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
