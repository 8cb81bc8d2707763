// Package tokens declares the storage contract for coupon tokens.
package tokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/spakiosk/internal/server/models"
)

// Repository stores coupon tokens keyed by their code.
type Repository interface {
	// Create inserts a freshly issued token and fills its timestamps.
	Create(ctx context.Context, t *models.CouponToken) error

	// Exists reports whether a token with this code was ever stored.
	Exists(ctx context.Context, token string) (bool, error)

	// Find returns the token or common.ErrorNotFound.
	Find(ctx context.Context, token string) (*models.CouponToken, error)

	// FindForUpdate is Find with a row lock held until the transaction ends.
	FindForUpdate(ctx context.Context, token string) (*models.CouponToken, error)

	// MarkUsed moves an issued token to used. common.ErrorNotFound is
	// returned when no issued token with this code exists.
	MarkUsed(ctx context.Context, token, phone string, at time.Time) error

	// MarkExpired moves an issued token to expired.
	MarkExpired(ctx context.Context, token string, at time.Time) error

	// DeleteStale removes issued or expired tokens whose expiry is before
	// expiredBefore, and used tokens consumed before usedBefore.
	DeleteStale(ctx context.Context, expiredBefore, usedBefore time.Time) (int64, error)
}
