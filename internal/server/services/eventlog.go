package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/spakiosk/internal/dbx"
	"github.com/dmitrijs2005/spakiosk/internal/logging"
	"github.com/dmitrijs2005/spakiosk/internal/phone"
	"github.com/dmitrijs2005/spakiosk/internal/server/models"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/spakiosk/internal/tokengen"
)

const (
	defaultEventLimit = 50
	maxEventLimit     = 500
)

// EventEntry is an audit record before masking. Phone and Token hold raw
// values; Details keys "phone" and "token" are masked as well.
type EventEntry struct {
	Type    models.EventType
	Phone   string
	Token   string
	Details map[string]any
}

// EventLogService is the append-only audit sink of the ledger.
type EventLogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
	phoneKey    []byte
	now         func() time.Time
}

// EventLogOption configures an EventLogService.
type EventLogOption func(*EventLogService)

// WithPhoneHashKey sets the HMAC key of the phone lookup hash.
func WithPhoneHashKey(key string) EventLogOption {
	return func(s *EventLogService) { s.phoneKey = []byte(key) }
}

func NewEventLogService(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger, opts ...EventLogOption) *EventLogService {
	s := &EventLogService{
		db:          db,
		repomanager: m,
		log:         log.With("module", "eventlog"),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LogEvent appends one masked event outside any transaction.
func (s *EventLogService) LogEvent(ctx context.Context, e EventEntry) (*models.CouponEvent, error) {
	return s.LogEventTx(ctx, s.db, e)
}

// LogEventTx appends one masked event using tx, so the record commits or
// rolls back together with the state change it describes.
func (s *EventLogService) LogEventTx(ctx context.Context, tx dbx.DBTX, e EventEntry) (*models.CouponEvent, error) {
	ev := maskEvent(e, s.now())
	if e.Phone != "" {
		ev.PhoneHash = phone.Hash(s.phoneKey, e.Phone)
	}
	if err := s.repomanager.Events(tx).Append(ctx, ev); err != nil {
		return nil, fmt.Errorf("error appending %s event: %w", e.Type, err)
	}
	s.log.Debug(ctx, "event logged", "id", ev.ID, "type", string(ev.EventType), "phone", ev.Phone)
	return ev, nil
}

// ByPhone returns the newest events of a phone, given in any input format.
// Events of other phones with the same last four digits are not included.
func (s *EventLogService) ByPhone(ctx context.Context, rawPhone string, limit int) ([]*models.CouponEvent, error) {
	h := phone.Hash(s.phoneKey, phone.Normalize(rawPhone))
	return s.repomanager.Events(s.db).ListByPhone(ctx, h, clampLimit(limit))
}

func (s *EventLogService) ByToken(ctx context.Context, token string) ([]*models.CouponEvent, error) {
	masked := tokengen.Mask(tokengen.Canonical(token))
	return s.repomanager.Events(s.db).ListByToken(ctx, masked)
}

func (s *EventLogService) ByType(ctx context.Context, eventType models.EventType, limit int) ([]*models.CouponEvent, error) {
	return s.repomanager.Events(s.db).ListByType(ctx, eventType, clampLimit(limit))
}

func (s *EventLogService) Recent(ctx context.Context, limit int) ([]*models.CouponEvent, error) {
	return s.repomanager.Events(s.db).ListRecent(ctx, clampLimit(limit))
}

// CountByType aggregates events per type within [from, to). Nil bounds are open.
func (s *EventLogService) CountByType(ctx context.Context, from, to *time.Time) (map[models.EventType]int64, error) {
	return s.repomanager.Events(s.db).CountByType(ctx, from, to)
}

func maskEvent(e EventEntry, at time.Time) *models.CouponEvent {
	ev := &models.CouponEvent{
		EventType: e.Type,
		CreatedAt: at,
	}
	if e.Phone != "" {
		ev.Phone = phone.Mask(e.Phone)
	}
	if e.Token != "" {
		ev.Token = tokengen.Mask(e.Token)
	}
	if len(e.Details) > 0 {
		ev.Details = make(map[string]any, len(e.Details))
		for k, v := range e.Details {
			ev.Details[k] = v
		}
		if p, ok := ev.Details["phone"].(string); ok {
			ev.Details["phone"] = phone.Mask(p)
		}
		if t, ok := ev.Details["token"].(string); ok {
			ev.Details["token"] = tokengen.Mask(t)
		}
	}
	return ev
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultEventLimit
	case limit > maxEventLimit:
		return maxEventLimit
	default:
		return limit
	}
}
