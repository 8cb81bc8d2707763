package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/spakiosk/internal/dbx"
	"github.com/dmitrijs2005/spakiosk/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectEvents = `SELECT id, event_type, phone, token, details, created_at FROM coupon_events`

func (r *PostgresRepository) Append(ctx context.Context, e *models.CouponEvent) error {
	details, err := json.Marshal(detailsOrEmpty(e.Details))
	if err != nil {
		return fmt.Errorf("marshal details: %w", err)
	}

	query := `
		INSERT INTO coupon_events (event_type, phone, phone_hash, token, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err = r.db.QueryRowContext(ctx, query,
		string(e.EventType), nullString(e.Phone), nullString(e.PhoneHash), nullString(e.Token), details, e.CreatedAt,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByPhone(ctx context.Context, phoneHash string, limit int) ([]*models.CouponEvent, error) {
	return r.list(ctx, selectEvents+` WHERE phone_hash = $1 ORDER BY created_at DESC, id DESC LIMIT $2`, phoneHash, limit)
}

func (r *PostgresRepository) ListByToken(ctx context.Context, maskedToken string) ([]*models.CouponEvent, error) {
	return r.list(ctx, selectEvents+` WHERE token = $1 ORDER BY created_at DESC, id DESC`, maskedToken)
}

func (r *PostgresRepository) ListByType(ctx context.Context, eventType models.EventType, limit int) ([]*models.CouponEvent, error) {
	return r.list(ctx, selectEvents+` WHERE event_type = $1 ORDER BY created_at DESC, id DESC LIMIT $2`, string(eventType), limit)
}

func (r *PostgresRepository) ListRecent(ctx context.Context, limit int) ([]*models.CouponEvent, error) {
	return r.list(ctx, selectEvents+` ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
}

func (r *PostgresRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*models.CouponEvent, error) {
	return r.list(ctx, selectEvents+` WHERE created_at >= $1 AND created_at < $2 ORDER BY created_at, id`, from, to)
}

func (r *PostgresRepository) CountByType(ctx context.Context, from, to *time.Time) (map[models.EventType]int64, error) {
	query := `
		SELECT event_type, COUNT(*)
		FROM coupon_events
		WHERE ($1::timestamptz IS NULL OR created_at >= $1)
		  AND ($2::timestamptz IS NULL OR created_at < $2)
		GROUP BY event_type
	`
	rows, err := r.db.QueryContext(ctx, query, nullTime(from), nullTime(to))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.EventType]int64)
	for rows.Next() {
		var (
			t string
			n int64
		)
		if err := rows.Scan(&t, &n); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		counts[models.EventType(t)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return counts, nil
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.CouponEvent, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []*models.CouponEvent
	for rows.Next() {
		var (
			e            models.CouponEvent
			eventType    string
			phone, token sql.NullString
			details      []byte
		)
		if err := rows.Scan(&e.ID, &eventType, &phone, &token, &details, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		e.EventType = models.EventType(eventType)
		e.Phone = phone.String
		e.Token = token.String
		if len(details) > 0 {
			if err := json.Unmarshal(details, &e.Details); err != nil {
				return nil, fmt.Errorf("unmarshal details of event %d: %w", e.ID, err)
			}
		}
		out = append(out, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func detailsOrEmpty(d map[string]any) map[string]any {
	if d == nil {
		return map[string]any{}
	}
	return d
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
