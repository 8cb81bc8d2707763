// Package wallets declares the storage contract for per-phone coupon wallets.
package wallets

import (
	"context"
	"time"

	"github.com/dmitrijs2005/spakiosk/internal/server/models"
)

// Repository stores wallets keyed by normalized phone.
type Repository interface {
	// Find returns the wallet or common.ErrorNotFound.
	Find(ctx context.Context, phone string) (*models.CouponWallet, error)

	// FindForUpdate is Find with a row lock held until the transaction ends.
	FindForUpdate(ctx context.Context, phone string) (*models.CouponWallet, error)

	// Ensure creates an empty, opted-in wallet when none exists and returns
	// the locked row.
	Ensure(ctx context.Context, phone string, at time.Time) (*models.CouponWallet, error)

	// Award adds n coupons to both the balance and the lifetime total.
	Award(ctx context.Context, phone string, n int, at time.Time) (*models.CouponWallet, error)

	// Deduct spends n coupons. common.ErrInsufficientCoupons is returned
	// when the balance is lower than n; the balance is never negative.
	Deduct(ctx context.Context, phone string, n int, at time.Time) (*models.CouponWallet, error)

	// Refund gives n coupons back and takes them out of TotalRedeemed.
	Refund(ctx context.Context, phone string, n int, at time.Time) (*models.CouponWallet, error)

	// SetMarketingOptIn changes the marketing consent flag only.
	SetMarketingOptIn(ctx context.Context, phone string, optedIn bool, at time.Time) error
}
