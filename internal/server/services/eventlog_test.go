package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/spakiosk/internal/logging"
	"github.com/dmitrijs2005/spakiosk/internal/phone"
	"github.com/dmitrijs2005/spakiosk/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogEvent_MasksPII(t *testing.T) {
	env := newTestEnv(t)
	details := map[string]any{"phone": otherPhone, "token": "ABCDEFGHJKLM", "kiosk_id": "K1"}

	ev, err := env.events.LogEvent(context.Background(), EventEntry{
		Type:    models.EventCouponAwarded,
		Phone:   testPhone,
		Token:   "ABCDEFGHJKLM",
		Details: details,
	})
	require.NoError(t, err)

	assert.Equal(t, "********4567", ev.Phone)
	assert.Equal(t, "ABCD****JKLM", ev.Token)
	assert.Equal(t, "********6543", ev.Details["phone"])
	assert.Equal(t, "ABCD****JKLM", ev.Details["token"])
	assert.Equal(t, "K1", ev.Details["kiosk_id"])
	assert.True(t, ev.CreatedAt.Equal(t0))
	assert.Equal(t, otherPhone, details["phone"], "caller's details must not be modified")

	stored := env.store.AllEvents()
	require.Len(t, stored, 1)
	assert.Equal(t, ev.ID, stored[0].ID)
	assert.Equal(t, "********4567", stored[0].Phone)
}

func TestEventQueries(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := env.events.LogEvent(ctx, EventEntry{Type: models.EventCouponAwarded, Phone: testPhone, Token: "ABCDEFGHJKLM"})
		require.NoError(t, err)
		env.clock.Advance(time.Minute)
	}
	_, err := env.events.LogEvent(ctx, EventEntry{Type: models.EventOptOut, Phone: otherPhone})
	require.NoError(t, err)

	byPhone, err := env.events.ByPhone(ctx, testPhoneLocal, 2)
	require.NoError(t, err)
	require.Len(t, byPhone, 2)
	assert.True(t, byPhone[0].CreatedAt.After(byPhone[1].CreatedAt), "newest first")

	byToken, err := env.events.ByToken(ctx, " abcdefghjklm ")
	require.NoError(t, err)
	assert.Len(t, byToken, 3)

	byType, err := env.events.ByType(ctx, models.EventOptOut, 0)
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, "********6543", byType[0].Phone)

	recent, err := env.events.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, recent, 4)

	from := t0.Add(time.Minute)
	to := t0.Add(3 * time.Minute)
	counts, err := env.events.CountByType(ctx, &from, &to)
	require.NoError(t, err)
	assert.Equal(t, map[models.EventType]int64{models.EventCouponAwarded: 2}, counts)

	all, err := env.events.CountByType(ctx, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), all[models.EventCouponAwarded])
	assert.Equal(t, int64(1), all[models.EventOptOut])
}

func TestByPhone_DoesNotMatchSameLastDigits(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	lookalike := "905559994567"
	require.Equal(t, phone.Mask(testPhone), phone.Mask(lookalike))

	_, err := env.events.LogEvent(ctx, EventEntry{Type: models.EventCouponAwarded, Phone: testPhone})
	require.NoError(t, err)
	_, err = env.events.LogEvent(ctx, EventEntry{Type: models.EventOptOut, Phone: lookalike})
	require.NoError(t, err)

	mine, err := env.events.ByPhone(ctx, testPhoneLocal, 0)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, models.EventCouponAwarded, mine[0].EventType)
	assert.Equal(t, "********4567", mine[0].Phone)

	theirs, err := env.events.ByPhone(ctx, lookalike, 0)
	require.NoError(t, err)
	require.Len(t, theirs, 1)
	assert.Equal(t, models.EventOptOut, theirs[0].EventType)

	// another key cannot find them
	rekeyed := NewEventLogService(env.db, env.store, logging.Nop(), WithPhoneHashKey("rotated"))
	none, err := rekeyed.ByPhone(ctx, testPhone, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, defaultEventLimit, clampLimit(0))
	assert.Equal(t, defaultEventLimit, clampLimit(-3))
	assert.Equal(t, 7, clampLimit(7))
	assert.Equal(t, maxEventLimit, clampLimit(10_000))
}
