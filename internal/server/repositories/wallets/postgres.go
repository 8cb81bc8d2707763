package wallets

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

const walletColumns = `phone, coupon_count, total_earned, total_redeemed, opted_in_marketing, last_message_at, updated_at`

func (r *PostgresRepository) Find(ctx context.Context, phone string) (*models.CouponWallet, error) {
	query := `SELECT ` + walletColumns + ` FROM coupon_wallets WHERE phone = $1`
	return scanWallet(r.db.QueryRowContext(ctx, query, phone))
}

func (r *PostgresRepository) FindForUpdate(ctx context.Context, phone string) (*models.CouponWallet, error) {
	query := `SELECT ` + walletColumns + ` FROM coupon_wallets WHERE phone = $1 FOR UPDATE`
	return scanWallet(r.db.QueryRowContext(ctx, query, phone))
}

func (r *PostgresRepository) Ensure(ctx context.Context, phone string, at time.Time) (*models.CouponWallet, error) {
	insert := `
		INSERT INTO coupon_wallets (phone, updated_at)
		VALUES ($1, $2)
		ON CONFLICT (phone) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, insert, phone, at); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return r.FindForUpdate(ctx, phone)
}

func (r *PostgresRepository) Award(ctx context.Context, phone string, n int, at time.Time) (*models.CouponWallet, error) {
	query := `
		UPDATE coupon_wallets
		SET coupon_count = coupon_count + $2,
		    total_earned = total_earned + $2,
		    last_message_at = $3,
		    updated_at = $3
		WHERE phone = $1
		RETURNING ` + walletColumns
	return scanWallet(r.db.QueryRowContext(ctx, query, phone, n, at))
}

func (r *PostgresRepository) Deduct(ctx context.Context, phone string, n int, at time.Time) (*models.CouponWallet, error) {
	query := `
		UPDATE coupon_wallets
		SET coupon_count = coupon_count - $2,
		    total_redeemed = total_redeemed + $2,
		    updated_at = $3
		WHERE phone = $1 AND coupon_count >= $2
		RETURNING ` + walletColumns
	w, err := scanWallet(r.db.QueryRowContext(ctx, query, phone, n, at))
	if errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrInsufficientCoupons
	}
	return w, err
}

func (r *PostgresRepository) Refund(ctx context.Context, phone string, n int, at time.Time) (*models.CouponWallet, error) {
	query := `
		UPDATE coupon_wallets
		SET coupon_count = coupon_count + $2,
		    total_redeemed = GREATEST(total_redeemed - $2, 0),
		    updated_at = $3
		WHERE phone = $1
		RETURNING ` + walletColumns
	return scanWallet(r.db.QueryRowContext(ctx, query, phone, n, at))
}

func (r *PostgresRepository) SetMarketingOptIn(ctx context.Context, phone string, optedIn bool, at time.Time) error {
	query := `
		UPDATE coupon_wallets
		SET opted_in_marketing = $2, updated_at = $3
		WHERE phone = $1
	`
	res, err := r.db.ExecContext(ctx, query, phone, optedIn, at)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("db error: %w", err)
	} else if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func scanWallet(row *sql.Row) (*models.CouponWallet, error) {
	var (
		w             models.CouponWallet
		lastMessageAt sql.NullTime
	)
	err := row.Scan(&w.Phone, &w.CouponCount, &w.TotalEarned, &w.TotalRedeemed, &w.OptedInMarketing, &lastMessageAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if lastMessageAt.Valid {
		w.LastMessageAt = &lastMessageAt.Time
	}
	return &w, nil
}
