// Package events declares the storage contract for the append-only audit log.
package events

import (
	"context"
	"time"

	"github.com/dmitrijs2005/spakiosk/internal/server/models"
)

// Repository appends and queries audit events. Phone and token values are
// already masked by the caller; no update or delete exists.
type Repository interface {
	// Append stores e and fills its ID.
	Append(ctx context.Context, e *models.CouponEvent) error

	// ListByPhone matches on CouponEvent.PhoneHash, not the masked phone,
	// which many numbers share.
	ListByPhone(ctx context.Context, phoneHash string, limit int) ([]*models.CouponEvent, error)
	ListByToken(ctx context.Context, maskedToken string) ([]*models.CouponEvent, error)
	ListByType(ctx context.Context, eventType models.EventType, limit int) ([]*models.CouponEvent, error)
	ListRecent(ctx context.Context, limit int) ([]*models.CouponEvent, error)

	// ListBetween returns events with from <= created_at < to, oldest first.
	ListBetween(ctx context.Context, from, to time.Time) ([]*models.CouponEvent, error)

	// CountByType aggregates events per type. Nil bounds are open.
	CountByType(ctx context.Context, from, to *time.Time) (map[models.EventType]int64, error)
}
