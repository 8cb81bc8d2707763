// Package inmemory implements every ledger repository over maps guarded by
// one mutex. It ignores the DBTX handle, so writes are not rolled back with
// the surrounding transaction and two transactions only serialize when the
// *sql.DB driving them has a single connection. It backs service and
// transport tests.
package inmemory

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/spakiosk/internal/common"
	"github.com/dmitrijs2005/spakiosk/internal/dbx"
	"github.com/dmitrijs2005/spakiosk/internal/server/models"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/counters"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/events"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/redemptions"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/settings"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/tiers"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/tokens"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/wallets"
)

// Store holds all ledger state.
type Store struct {
	mu          sync.Mutex
	tokens      map[string]models.CouponToken
	wallets     map[string]models.CouponWallet
	redemptions map[string]models.CouponRedemption
	events      []models.CouponEvent
	settings    map[string]string
	tiers       map[string]models.RewardTier
	counters    map[string]models.RateLimitCounter
	nextEventID int64
}

// NewStore returns an empty store seeded with the default settings, like a
// freshly migrated database.
func NewStore() *Store {
	return &Store{
		tokens:      make(map[string]models.CouponToken),
		wallets:     make(map[string]models.CouponWallet),
		redemptions: make(map[string]models.CouponRedemption),
		settings: map[string]string{
			"redemption_threshold":   "4",
			"token_expiration_hours": "24",
			"max_coupons_per_day":    "10",
		},
		tiers:    make(map[string]models.RewardTier),
		counters: make(map[string]models.RateLimitCounter),
	}
}

func (s *Store) RunMigrations(context.Context, *sql.DB) error { return nil }

func (s *Store) Tokens(dbx.DBTX) tokens.Repository           { return (*tokenRepo)(s) }
func (s *Store) Wallets(dbx.DBTX) wallets.Repository         { return (*walletRepo)(s) }
func (s *Store) Redemptions(dbx.DBTX) redemptions.Repository { return (*redemptionRepo)(s) }
func (s *Store) Events(dbx.DBTX) events.Repository           { return (*eventRepo)(s) }
func (s *Store) Settings(dbx.DBTX) settings.Repository       { return (*settingRepo)(s) }
func (s *Store) Tiers(dbx.DBTX) tiers.Repository             { return (*tierRepo)(s) }
func (s *Store) Counters(dbx.DBTX) counters.Repository       { return (*counterRepo)(s) }

// PutToken overwrites a token, for arranging test fixtures.
func (s *Store) PutToken(t models.CouponToken) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[t.Token] = t
}

// PutRedemption overwrites a redemption, for arranging test fixtures.
func (s *Store) PutRedemption(r models.CouponRedemption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.redemptions[r.ID] = r
}

// PutWallet overwrites a wallet, for arranging test fixtures.
func (s *Store) PutWallet(w models.CouponWallet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wallets[w.Phone] = w
}

// AllEvents returns a copy of every stored event, oldest first.
func (s *Store) AllEvents() []models.CouponEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CouponEvent(nil), s.events...)
}

// Token returns a stored token by value.
func (s *Store) Token(token string) (models.CouponToken, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tokens[token]
	return t, ok
}

type tokenRepo Store

func (r *tokenRepo) Create(_ context.Context, t *models.CouponToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tokens[t.Token]; ok {
		return errDuplicate
	}
	t.UpdatedAt = t.CreatedAt
	r.tokens[t.Token] = *t
	return nil
}

func (r *tokenRepo) Exists(_ context.Context, token string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.tokens[token]
	return ok, nil
}

func (r *tokenRepo) Find(_ context.Context, token string) (*models.CouponToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &t, nil
}

func (r *tokenRepo) FindForUpdate(ctx context.Context, token string) (*models.CouponToken, error) {
	return r.Find(ctx, token)
}

func (r *tokenRepo) MarkUsed(_ context.Context, token, phone string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[token]
	if !ok || t.Status != models.TokenIssued {
		return common.ErrorNotFound
	}
	t.Status, t.Phone, t.UsedAt, t.UpdatedAt = models.TokenUsed, phone, &at, at
	r.tokens[token] = t
	return nil
}

func (r *tokenRepo) MarkExpired(_ context.Context, token string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[token]
	if !ok || t.Status != models.TokenIssued {
		return common.ErrorNotFound
	}
	t.Status, t.UpdatedAt = models.TokenExpired, at
	r.tokens[token] = t
	return nil
}

func (r *tokenRepo) DeleteStale(_ context.Context, expiredBefore, usedBefore time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for k, t := range r.tokens {
		stale := false
		switch t.Status {
		case models.TokenIssued, models.TokenExpired:
			stale = t.ExpiresAt.Before(expiredBefore)
		case models.TokenUsed:
			stale = t.UsedAt != nil && t.UsedAt.Before(usedBefore)
		}
		if stale {
			delete(r.tokens, k)
			n++
		}
	}
	return n, nil
}

type walletRepo Store

func (r *walletRepo) Find(_ context.Context, phone string) (*models.CouponWallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[phone]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &w, nil
}

func (r *walletRepo) FindForUpdate(ctx context.Context, phone string) (*models.CouponWallet, error) {
	return r.Find(ctx, phone)
}

func (r *walletRepo) Ensure(_ context.Context, phone string, at time.Time) (*models.CouponWallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[phone]
	if !ok {
		w = models.CouponWallet{Phone: phone, OptedInMarketing: true, UpdatedAt: at}
		r.wallets[phone] = w
	}
	return &w, nil
}

func (r *walletRepo) update(phone string, fn func(w *models.CouponWallet) error) (*models.CouponWallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[phone]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if err := fn(&w); err != nil {
		return nil, err
	}
	r.wallets[phone] = w
	return &w, nil
}

func (r *walletRepo) Award(_ context.Context, phone string, n int, at time.Time) (*models.CouponWallet, error) {
	return r.update(phone, func(w *models.CouponWallet) error {
		w.CouponCount += n
		w.TotalEarned += n
		w.LastMessageAt = &at
		w.UpdatedAt = at
		return nil
	})
}

func (r *walletRepo) Deduct(_ context.Context, phone string, n int, at time.Time) (*models.CouponWallet, error) {
	w, err := r.update(phone, func(w *models.CouponWallet) error {
		if w.CouponCount < n {
			return common.ErrInsufficientCoupons
		}
		w.CouponCount -= n
		w.TotalRedeemed += n
		w.UpdatedAt = at
		return nil
	})
	if err == common.ErrorNotFound {
		return nil, common.ErrInsufficientCoupons
	}
	return w, err
}

func (r *walletRepo) Refund(_ context.Context, phone string, n int, at time.Time) (*models.CouponWallet, error) {
	return r.update(phone, func(w *models.CouponWallet) error {
		w.CouponCount += n
		w.TotalRedeemed = max(w.TotalRedeemed-n, 0)
		w.UpdatedAt = at
		return nil
	})
}

func (r *walletRepo) SetMarketingOptIn(_ context.Context, phone string, optedIn bool, at time.Time) error {
	_, err := r.update(phone, func(w *models.CouponWallet) error {
		w.OptedInMarketing = optedIn
		w.UpdatedAt = at
		return nil
	})
	return err
}

type redemptionRepo Store

func (r *redemptionRepo) Create(_ context.Context, red *models.CouponRedemption) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if red.Status == models.RedemptionPending {
		for _, other := range r.redemptions {
			if other.Phone == red.Phone && other.Status == models.RedemptionPending {
				return errDuplicate
			}
		}
	}
	r.redemptions[red.ID] = *red
	return nil
}

func (r *redemptionRepo) FindPendingByPhone(_ context.Context, phone string) (*models.CouponRedemption, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, red := range r.redemptions {
		if red.Phone == phone && red.Status == models.RedemptionPending {
			return &red, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *redemptionRepo) Find(_ context.Context, id string) (*models.CouponRedemption, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	red, ok := r.redemptions[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &red, nil
}

func (r *redemptionRepo) FindForUpdate(ctx context.Context, id string) (*models.CouponRedemption, error) {
	return r.Find(ctx, id)
}

func (r *redemptionRepo) transition(id string, fn func(*models.CouponRedemption)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	red, ok := r.redemptions[id]
	if !ok || red.Status != models.RedemptionPending {
		return common.ErrorNotFound
	}
	fn(&red)
	r.redemptions[id] = red
	return nil
}

func (r *redemptionRepo) Complete(_ context.Context, id, handledBy string, at time.Time) error {
	return r.transition(id, func(red *models.CouponRedemption) {
		red.Status, red.HandledBy, red.CompletedAt = models.RedemptionCompleted, handledBy, &at
	})
}

func (r *redemptionRepo) Reject(_ context.Context, id, handledBy, note string, at time.Time) error {
	return r.transition(id, func(red *models.CouponRedemption) {
		red.Status, red.HandledBy, red.Note, red.RejectedAt = models.RedemptionRejected, handledBy, note, &at
	})
}

func (r *redemptionRepo) MarkNotified(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	red, ok := r.redemptions[id]
	if !ok {
		return common.ErrorNotFound
	}
	red.NotifiedAt = &at
	r.redemptions[id] = red
	return nil
}

func (r *redemptionRepo) ListPendingBefore(_ context.Context, cutoff time.Time) ([]*models.CouponRedemption, error) {
	out := r.filter(func(red models.CouponRedemption) bool {
		return red.Status == models.RedemptionPending && red.CreatedAt.Before(cutoff)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *redemptionRepo) ListByStatus(_ context.Context, status models.RedemptionStatus, limit int) ([]*models.CouponRedemption, error) {
	out := r.filter(func(red models.CouponRedemption) bool { return red.Status == status })
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *redemptionRepo) filter(keep func(models.CouponRedemption) bool) []*models.CouponRedemption {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.CouponRedemption
	for _, red := range r.redemptions {
		red := red
		if keep(red) {
			out = append(out, &red)
		}
	}
	return out
}

type eventRepo Store

func (r *eventRepo) Append(_ context.Context, e *models.CouponEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextEventID++
	e.ID = r.nextEventID
	r.events = append(r.events, *e)
	return nil
}

// newestFirst walks events from the end, returning up to limit matches
// (all when limit <= 0).
func (r *eventRepo) newestFirst(limit int, keep func(models.CouponEvent) bool) []*models.CouponEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.CouponEvent
	for i := len(r.events) - 1; i >= 0; i-- {
		if keep(r.events[i]) {
			e := r.events[i]
			out = append(out, &e)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out
}

func (r *eventRepo) ListByPhone(_ context.Context, phoneHash string, limit int) ([]*models.CouponEvent, error) {
	return r.newestFirst(limit, func(e models.CouponEvent) bool { return e.PhoneHash == phoneHash }), nil
}

func (r *eventRepo) ListByToken(_ context.Context, maskedToken string) ([]*models.CouponEvent, error) {
	return r.newestFirst(0, func(e models.CouponEvent) bool { return e.Token == maskedToken }), nil
}

func (r *eventRepo) ListByType(_ context.Context, eventType models.EventType, limit int) ([]*models.CouponEvent, error) {
	return r.newestFirst(limit, func(e models.CouponEvent) bool { return e.EventType == eventType }), nil
}

func (r *eventRepo) ListRecent(_ context.Context, limit int) ([]*models.CouponEvent, error) {
	return r.newestFirst(limit, func(models.CouponEvent) bool { return true }), nil
}

func (r *eventRepo) ListBetween(_ context.Context, from, to time.Time) ([]*models.CouponEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.CouponEvent
	for _, e := range r.events {
		e := e
		if !e.CreatedAt.Before(from) && e.CreatedAt.Before(to) {
			out = append(out, &e)
		}
	}
	return out, nil
}

func (r *eventRepo) CountByType(_ context.Context, from, to *time.Time) (map[models.EventType]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[models.EventType]int64)
	for _, e := range r.events {
		if from != nil && e.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && !e.CreatedAt.Before(*to) {
			continue
		}
		out[e.EventType]++
	}
	return out, nil
}

type settingRepo Store

func (r *settingRepo) All(context.Context) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]string, len(r.settings))
	for k, v := range r.settings {
		out[k] = v
	}
	return out, nil
}

func (r *settingRepo) Upsert(_ context.Context, key, value string, _ time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings[key] = value
	return nil
}

type tierRepo Store

func (r *tierRepo) List(_ context.Context, activeOnly bool) ([]*models.RewardTier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.RewardTier
	for _, t := range r.tiers {
		t := t
		if activeOnly && !t.Active {
			continue
		}
		out = append(out, &t)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.SortOrder != b.SortOrder {
			return a.SortOrder < b.SortOrder
		}
		if a.CouponsRequired != b.CouponsRequired {
			return a.CouponsRequired < b.CouponsRequired
		}
		return a.Name < b.Name
	})
	return out, nil
}

func (r *tierRepo) Find(_ context.Context, id string) (*models.RewardTier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tiers[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &t, nil
}

func (r *tierRepo) Create(_ context.Context, t *models.RewardTier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tiers[t.ID]; ok {
		return errDuplicate
	}
	t.UpdatedAt = t.CreatedAt
	r.tiers[t.ID] = *t
	return nil
}

func (r *tierRepo) Update(_ context.Context, t *models.RewardTier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, ok := r.tiers[t.ID]
	if !ok {
		return common.ErrorNotFound
	}
	t.CreatedAt = old.CreatedAt
	r.tiers[t.ID] = *t
	return nil
}

func (r *tierRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tiers[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.tiers, id)
	return nil
}

type counterRepo Store

func counterKey(identity, endpoint string) string { return endpoint + "\x00" + identity }

func (r *counterRepo) Get(_ context.Context, identity, endpoint string) (*models.RateLimitCounter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.counters[counterKey(identity, endpoint)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &c, nil
}

func (r *counterRepo) Increment(_ context.Context, identity, endpoint string, now, resetAt time.Time) (*models.RateLimitCounter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := counterKey(identity, endpoint)
	c, ok := r.counters[k]
	if !ok || c.Stale(now) {
		c = models.RateLimitCounter{Identity: identity, Endpoint: endpoint, ResetAt: resetAt}
	}
	c.Count++
	r.counters[k] = c
	return &c, nil
}

func (r *counterRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for k, c := range r.counters {
		if c.Stale(now) {
			delete(r.counters, k)
			n++
		}
	}
	return n, nil
}
