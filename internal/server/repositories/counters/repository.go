// Package counters stores per-identity, per-endpoint rate-limit counters.
// Counters are ephemeral: losing them only resets quotas early.
package counters

import (
	"context"
	"time"

	"github.com/dmitrijs2005/spakiosk/internal/server/models"
)

type Repository interface {
	// Get returns the counter or common.ErrorNotFound.
	Get(ctx context.Context, identity, endpoint string) (*models.RateLimitCounter, error)

	// Increment atomically bumps the counter. A missing counter, or one whose
	// reset instant is not after now, restarts at 1 with the given resetAt.
	Increment(ctx context.Context, identity, endpoint string, now, resetAt time.Time) (*models.RateLimitCounter, error)

	// DeleteExpired removes counters whose reset instant is not after now.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
