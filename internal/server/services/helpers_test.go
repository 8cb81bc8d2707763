package services

import (
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/spakiosk/internal/logging"
	"github.com/dmitrijs2005/spakiosk/internal/server/config"
	"github.com/dmitrijs2005/spakiosk/internal/server/metrics"
	"github.com/dmitrijs2005/spakiosk/internal/server/models"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/inmemory"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

const (
	testPhone      = "905551234567"
	testPhoneLocal = "0555 123 45 67"
	otherPhone     = "905559876543"
)

var t0 = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

type testEnv struct {
	store   *inmemory.Store
	db      *sql.DB
	clock   *testClock
	cfg     *config.Config
	metrics *metrics.Metrics
	events  *EventLogService
	policy  *CouponPolicyService
	coupons *CouponService
	limits  *RateLimitService
}

// newTestDB returns a sqlite handle used only to drive real BEGIN/COMMIT
// around the in-memory repositories.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		store:   inmemory.NewStore(),
		db:      newTestDB(t),
		clock:   &testClock{t: t0},
		metrics: metrics.New(prometheus.NewRegistry()),
	}
	env.cfg = &config.Config{}
	env.cfg.LoadDefaults()
	env.cfg.WhatsAppNumber = "+90 555 000 00 00"

	log := logging.Nop()
	env.events = NewEventLogService(env.db, env.store, log, WithPhoneHashKey("test-key"))
	env.events.now = env.clock.Now

	env.policy = NewCouponPolicyService(env.db, env.store, env.events, log, 5*time.Minute)
	env.policy.now = env.clock.Now

	env.coupons = NewCouponService(env.db, env.store, env.policy, env.events, env.metrics, log, env.cfg)
	env.coupons.now = env.clock.Now

	loc, err := time.LoadLocation("Europe/Istanbul")
	require.NoError(t, err)
	env.limits = NewRateLimitService(env.db, env.store, loc, nil, env.events, env.metrics, log)
	env.limits.now = env.clock.Now

	return env
}

// eventsOfType filters the stored audit log.
func (e *testEnv) eventsOfType(typ models.EventType) []models.CouponEvent {
	var out []models.CouponEvent
	for _, ev := range e.store.AllEvents() {
		if ev.EventType == typ {
			out = append(out, ev)
		}
	}
	return out
}
