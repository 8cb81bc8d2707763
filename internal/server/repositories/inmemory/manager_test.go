package inmemory

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/spakiosk/internal/common"
	"github.com/dmitrijs2005/spakiosk/internal/server/models"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ repomanager.RepositoryManager = (*Store)(nil)

var now = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

func TestWalletDeductGuard(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	w := s.Wallets(nil)

	_, err := w.Ensure(ctx, "905551234567", now)
	require.NoError(t, err)
	_, err = w.Award(ctx, "905551234567", 3, now)
	require.NoError(t, err)

	_, err = w.Deduct(ctx, "905551234567", 4, now)
	assert.ErrorIs(t, err, common.ErrInsufficientCoupons)

	got, err := w.Deduct(ctx, "905551234567", 3, now)
	require.NoError(t, err)
	assert.Equal(t, 0, got.CouponCount)
	assert.Equal(t, 3, got.TotalRedeemed)
}

func TestOnePendingRedemptionPerPhone(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	r := s.Redemptions(nil)

	require.NoError(t, r.Create(ctx, &models.CouponRedemption{ID: "a", Phone: "p", CouponsUsed: 4, Status: models.RedemptionPending}))
	assert.Error(t, r.Create(ctx, &models.CouponRedemption{ID: "b", Phone: "p", CouponsUsed: 4, Status: models.RedemptionPending}))

	require.NoError(t, r.Complete(ctx, "a", "admin", now))
	assert.ErrorIs(t, r.Complete(ctx, "a", "admin", now), common.ErrorNotFound)
	require.NoError(t, r.Create(ctx, &models.CouponRedemption{ID: "b", Phone: "p", CouponsUsed: 4, Status: models.RedemptionPending}))
}

func TestCounterRollover(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	c := s.Counters(nil)
	reset := now.Add(time.Hour)

	for i := 0; i < 3; i++ {
		_, err := c.Increment(ctx, "p", "consume", now, reset)
		require.NoError(t, err)
	}
	got, err := c.Increment(ctx, "p", "consume", reset, reset.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, got.Count)

	n, err := c.DeleteExpired(ctx, reset.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestEventsNewestFirst(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	e := s.Events(nil)

	for i := 0; i < 5; i++ {
		require.NoError(t, e.Append(ctx, &models.CouponEvent{EventType: models.EventTokenIssued, CreatedAt: now.Add(time.Duration(i) * time.Minute)}))
	}
	list, err := e.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(5), list[0].ID)
	assert.Equal(t, int64(4), list[1].ID)

	from := now.Add(2 * time.Minute)
	counts, err := e.CountByType(ctx, &from, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts[models.EventTokenIssued])
}
