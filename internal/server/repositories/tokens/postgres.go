package tokens

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

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectToken = `
		SELECT token, status, issued_for, kiosk_id, phone, expires_at, used_at, created_at, updated_at
		FROM coupon_tokens
		WHERE token = $1`

func (r *PostgresRepository) Create(ctx context.Context, t *models.CouponToken) error {
	query := `
		INSERT INTO coupon_tokens (token, status, issued_for, kiosk_id, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		t.Token, string(t.Status), nullString(t.IssuedFor), t.KioskID, t.ExpiresAt,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Exists(ctx context.Context, token string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM coupon_tokens WHERE token = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, token).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) Find(ctx context.Context, token string) (*models.CouponToken, error) {
	return r.find(ctx, selectToken, token)
}

func (r *PostgresRepository) FindForUpdate(ctx context.Context, token string) (*models.CouponToken, error) {
	return r.find(ctx, selectToken+"\n\t\tFOR UPDATE", token)
}

func (r *PostgresRepository) find(ctx context.Context, query, token string) (*models.CouponToken, error) {
	var (
		t         models.CouponToken
		status    string
		issuedFor sql.NullString
		phone     sql.NullString
		usedAt    sql.NullTime
	)

	err := r.db.QueryRowContext(ctx, query, token).Scan(
		&t.Token, &status, &issuedFor, &t.KioskID, &phone, &t.ExpiresAt, &usedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if t.Status, err = models.ParseTokenStatus(status); err != nil {
		return nil, err
	}
	t.IssuedFor = issuedFor.String
	t.Phone = phone.String
	if usedAt.Valid {
		t.UsedAt = &usedAt.Time
	}
	return &t, nil
}

func (r *PostgresRepository) MarkUsed(ctx context.Context, token, phone string, at time.Time) error {
	query := `
		UPDATE coupon_tokens
		SET status = $2, phone = $3, used_at = $4, updated_at = $4
		WHERE token = $1 AND status = $5
	`
	return r.transition(ctx, query, token, string(models.TokenUsed), phone, at, string(models.TokenIssued))
}

func (r *PostgresRepository) MarkExpired(ctx context.Context, token string, at time.Time) error {
	query := `
		UPDATE coupon_tokens
		SET status = $2, updated_at = $3
		WHERE token = $1 AND status = $4
	`
	return r.transition(ctx, query, token, string(models.TokenExpired), at, string(models.TokenIssued))
}

func (r *PostgresRepository) transition(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteStale(ctx context.Context, expiredBefore, usedBefore time.Time) (int64, error) {
	query := `
		DELETE FROM coupon_tokens
		WHERE (status IN ($1, $2) AND expires_at < $3)
		   OR (status = $4 AND used_at < $5)
	`
	res, err := r.db.ExecContext(ctx, query,
		string(models.TokenIssued), string(models.TokenExpired), expiredBefore,
		string(models.TokenUsed), usedBefore,
	)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
