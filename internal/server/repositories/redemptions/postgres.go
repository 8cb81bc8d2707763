package redemptions

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

const redemptionColumns = `id, phone, reward_tier_id, reward_name, coupons_used, status, note, handled_by, created_at, notified_at, completed_at, rejected_at`

type scanner interface {
	Scan(dest ...any) error
}

func (r *PostgresRepository) Create(ctx context.Context, red *models.CouponRedemption) error {
	query := `
		INSERT INTO coupon_redemptions (id, phone, reward_tier_id, reward_name, coupons_used, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		red.ID, red.Phone, nullString(red.RewardTierID), nullString(red.RewardName),
		red.CouponsUsed, string(red.Status), red.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) FindPendingByPhone(ctx context.Context, phone string) (*models.CouponRedemption, error) {
	query := `SELECT ` + redemptionColumns + `
		FROM coupon_redemptions
		WHERE phone = $1 AND status = $2
		FOR UPDATE`
	return scanRedemption(r.db.QueryRowContext(ctx, query, phone, string(models.RedemptionPending)))
}

func (r *PostgresRepository) Find(ctx context.Context, id string) (*models.CouponRedemption, error) {
	query := `SELECT ` + redemptionColumns + `
		FROM coupon_redemptions
		WHERE id = $1`
	return scanRedemption(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) FindForUpdate(ctx context.Context, id string) (*models.CouponRedemption, error) {
	query := `SELECT ` + redemptionColumns + `
		FROM coupon_redemptions
		WHERE id = $1
		FOR UPDATE`
	return scanRedemption(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) Complete(ctx context.Context, id, handledBy string, at time.Time) error {
	query := `
		UPDATE coupon_redemptions
		SET status = $2, handled_by = $3, completed_at = $4
		WHERE id = $1 AND status = $5
	`
	return r.exec(ctx, query, id, string(models.RedemptionCompleted), nullString(handledBy), at, string(models.RedemptionPending))
}

func (r *PostgresRepository) Reject(ctx context.Context, id, handledBy, note string, at time.Time) error {
	query := `
		UPDATE coupon_redemptions
		SET status = $2, handled_by = $3, note = $4, rejected_at = $5
		WHERE id = $1 AND status = $6
	`
	return r.exec(ctx, query, id, string(models.RedemptionRejected), nullString(handledBy), note, at, string(models.RedemptionPending))
}

func (r *PostgresRepository) MarkNotified(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE coupon_redemptions SET notified_at = $2 WHERE id = $1`
	return r.exec(ctx, query, id, at)
}

func (r *PostgresRepository) ListPendingBefore(ctx context.Context, cutoff time.Time) ([]*models.CouponRedemption, error) {
	query := `SELECT ` + redemptionColumns + `
		FROM coupon_redemptions
		WHERE status = $1 AND created_at < $2
		ORDER BY created_at`
	return r.list(ctx, query, string(models.RedemptionPending), cutoff)
}

func (r *PostgresRepository) ListByStatus(ctx context.Context, status models.RedemptionStatus, limit int) ([]*models.CouponRedemption, error) {
	query := `SELECT ` + redemptionColumns + `
		FROM coupon_redemptions
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2`
	return r.list(ctx, query, string(status), limit)
}

func (r *PostgresRepository) exec(ctx context.Context, query string, args ...any) error {
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

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.CouponRedemption, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []*models.CouponRedemption
	for rows.Next() {
		red, err := scanRedemption(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, red)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func scanRedemption(s scanner) (*models.CouponRedemption, error) {
	var (
		red                                 models.CouponRedemption
		status                              string
		tierID, rewardName, note, handledBy sql.NullString
		notifiedAt, completedAt, rejectedAt sql.NullTime
	)
	err := s.Scan(&red.ID, &red.Phone, &tierID, &rewardName, &red.CouponsUsed, &status,
		&note, &handledBy, &red.CreatedAt, &notifiedAt, &completedAt, &rejectedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if red.Status, err = models.ParseRedemptionStatus(status); err != nil {
		return nil, err
	}
	red.RewardTierID = tierID.String
	red.RewardName = rewardName.String
	red.Note = note.String
	red.HandledBy = handledBy.String
	red.NotifiedAt = timePtr(notifiedAt)
	red.CompletedAt = timePtr(completedAt)
	red.RejectedAt = timePtr(rejectedAt)
	return &red, nil
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
