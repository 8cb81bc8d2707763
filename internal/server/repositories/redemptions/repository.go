// Package redemptions declares the storage contract for reward claims.
package redemptions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/spakiosk/internal/server/models"
)

// Repository stores coupon redemptions. At most one pending redemption
// exists per phone.
type Repository interface {
	// Create inserts r. ID must be set by the caller.
	Create(ctx context.Context, r *models.CouponRedemption) error

	// FindPendingByPhone returns the phone's pending redemption with a row
	// lock, or common.ErrorNotFound.
	FindPendingByPhone(ctx context.Context, phone string) (*models.CouponRedemption, error)

	// Find returns the redemption with the given id without locking it.
	Find(ctx context.Context, id string) (*models.CouponRedemption, error)

	// FindForUpdate locks and returns the redemption with the given id.
	// Callers lock the owner's wallet row first.
	FindForUpdate(ctx context.Context, id string) (*models.CouponRedemption, error)

	// Complete moves a pending redemption to completed.
	Complete(ctx context.Context, id, handledBy string, at time.Time) error

	// Reject moves a pending redemption to rejected with a note.
	Reject(ctx context.Context, id, handledBy, note string, at time.Time) error

	// MarkNotified records when the customer was told about the reward.
	MarkNotified(ctx context.Context, id string, at time.Time) error

	// ListPendingBefore returns pending redemptions created before cutoff,
	// oldest first, without locking them.
	ListPendingBefore(ctx context.Context, cutoff time.Time) ([]*models.CouponRedemption, error)

	// ListByStatus returns the newest redemptions in status, at most limit.
	ListByStatus(ctx context.Context, status models.RedemptionStatus, limit int) ([]*models.CouponRedemption, error)
}
