package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/dmitrijs2005/spakiosk/internal/common"
	"github.com/dmitrijs2005/spakiosk/internal/logging"
	"github.com/dmitrijs2005/spakiosk/internal/phone"
	"github.com/dmitrijs2005/spakiosk/internal/server/metrics"
	"github.com/dmitrijs2005/spakiosk/internal/server/models"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/repomanager"
)

// Endpoints with a daily quota.
const (
	EndpointConsume = "consume"
	EndpointClaim   = "claim"
)

// LimitDecision is the outcome of a quota check.
type LimitDecision struct {
	Allowed    bool
	RetryAfter time.Duration
}

// RetryAfterSeconds rounds RetryAfter up to whole seconds.
func (d *LimitDecision) RetryAfterSeconds() int64 {
	return int64(math.Ceil(d.RetryAfter.Seconds()))
}

// RateLimitService enforces per-identity daily quotas. Checking never
// mutates counters; callers increment after a successful operation.
type RateLimitService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	loc         *time.Location
	abuse       *AbuseTracker
	events      *EventLogService
	metrics     *metrics.Metrics
	log         logging.Logger
	now         func() time.Time
}

func NewRateLimitService(db *sql.DB, m repomanager.RepositoryManager, loc *time.Location, abuse *AbuseTracker,
	events *EventLogService, met *metrics.Metrics, log logging.Logger) *RateLimitService {
	if abuse == nil {
		abuse = NewAbuseTracker(DefaultAbuseWindow, DefaultAbuseThreshold, DefaultAbuseRepeat)
	}
	return &RateLimitService{
		db:          db,
		repomanager: m,
		loc:         loc,
		abuse:       abuse,
		events:      events,
		metrics:     met,
		log:         log.With("module", "ratelimit"),
		now:         time.Now,
	}
}

// NextResetAt returns the next local midnight in loc after now. The date is
// advanced on the calendar, so DST days are 23 or 25 hours long.
func NextResetAt(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	y, m, d := local.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, loc)
}

// CheckLimit reports whether identity may call endpoint once more today.
func (s *RateLimitService) CheckLimit(ctx context.Context, identity, endpoint string, limit int) (*LimitDecision, error) {
	now := s.now()
	c, err := s.repomanager.Counters(s.db).Get(ctx, identity, endpoint)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return &LimitDecision{Allowed: true}, nil
		}
		return nil, fmt.Errorf("error reading rate limit counter: %w", err)
	}
	if c.Stale(now) || c.Count < limit {
		return &LimitDecision{Allowed: true}, nil
	}

	s.metrics.RateLimited(endpoint)
	s.recordRejection(ctx, identity, endpoint, now)
	return &LimitDecision{Allowed: false, RetryAfter: c.ResetAt.Sub(now)}, nil
}

// Enforce is CheckLimit returning a *common.RateLimitError when blocked.
func (s *RateLimitService) Enforce(ctx context.Context, identity, endpoint string, limit int) error {
	d, err := s.CheckLimit(ctx, identity, endpoint, limit)
	if err != nil {
		return err
	}
	if !d.Allowed {
		return &common.RateLimitError{Endpoint: endpoint, RetryAfter: d.RetryAfter}
	}
	return nil
}

// IncrementCounter counts one successful call. A missing or stale counter
// restarts at 1 with the next reset instant.
func (s *RateLimitService) IncrementCounter(ctx context.Context, identity, endpoint string) (*models.RateLimitCounter, error) {
	now := s.now()
	c, err := s.repomanager.Counters(s.db).Increment(ctx, identity, endpoint, now, NextResetAt(now, s.loc))
	if err != nil {
		return nil, fmt.Errorf("error incrementing rate limit counter: %w", err)
	}
	return c, nil
}

// ResetExpiredCounters deletes counters past their reset instant and drops
// elapsed abuse windows.
func (s *RateLimitService) ResetExpiredCounters(ctx context.Context) (int64, error) {
	now := s.now()
	n, err := s.repomanager.Counters(s.db).DeleteExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("error deleting expired counters: %w", err)
	}
	purged := s.abuse.Purge(now)
	s.log.Info(ctx, "expired rate limit counters removed", "counters", n, "abuse_windows", purged)
	return n, nil
}

func (s *RateLimitService) recordRejection(ctx context.Context, identity, endpoint string, now time.Time) {
	count, warn := s.abuse.RecordRejection(identity, endpoint, now)
	if !warn {
		return
	}
	s.metrics.AbuseWarning(endpoint)
	s.log.Warn(ctx, "rate limit abuse", "identity", phone.Mask(identity), "endpoint", endpoint, "rejections", count)
	if s.events == nil {
		return
	}
	_, err := s.events.LogEvent(ctx, EventEntry{
		Type:    models.EventRateLimitAbuse,
		Phone:   identity,
		Details: map[string]any{"endpoint": endpoint, "rejections": count},
	})
	if err != nil {
		s.log.Error(ctx, "abuse audit failed", "error", err)
	}
}
