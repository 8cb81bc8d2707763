package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/spakiosk/internal/common"
	"github.com/dmitrijs2005/spakiosk/internal/logging"
	"github.com/dmitrijs2005/spakiosk/internal/server/models"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// Setting keys stored in coupon_settings.
const (
	SettingRedemptionThreshold  = "redemption_threshold"
	SettingTokenExpirationHours = "token_expiration_hours"
	SettingMaxCouponsPerDay     = "max_coupons_per_day"
)

const (
	DefaultRedemptionThreshold  = 4
	DefaultTokenExpirationHours = 24
	DefaultMaxCouponsPerDay     = 10
	DefaultPolicyCacheTTL       = 5 * time.Minute
)

var settingDefaults = map[string]int{
	SettingRedemptionThreshold:  DefaultRedemptionThreshold,
	SettingTokenExpirationHours: DefaultTokenExpirationHours,
	SettingMaxCouponsPerDay:     DefaultMaxCouponsPerDay,
}

// Policy is a snapshot of the tunable ledger rules. RewardTiers holds the
// active tiers in display order. A Policy is shared between callers and must
// not be modified.
type Policy struct {
	RedemptionThreshold  int
	TokenExpirationHours int
	MaxCouponsPerDay     int
	RewardTiers          []*models.RewardTier
}

func (p *Policy) TokenTTL() time.Duration {
	return time.Duration(p.TokenExpirationHours) * time.Hour
}

// Tier returns the active tier with the given id, or nil.
func (p *Policy) Tier(id string) *models.RewardTier {
	for _, t := range p.RewardTiers {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// AvailableRewards returns the active tiers affordable at balance.
func (p *Policy) AvailableRewards(balance int) []*models.RewardTier {
	var out []*models.RewardTier
	for _, t := range p.RewardTiers {
		if t.CouponsRequired <= balance {
			out = append(out, t)
		}
	}
	return out
}

// RemainingForNextReward returns the cheapest tier still out of reach and
// the coupons missing for it. Once every tier is affordable it returns the
// cheapest tier and 0. Without tiers the redemption threshold is the goal
// and the returned tier is nil.
func (p *Policy) RemainingForNextReward(balance int) (*models.RewardTier, int) {
	if len(p.RewardTiers) == 0 {
		return nil, max(0, p.RedemptionThreshold-balance)
	}
	var next, cheapest *models.RewardTier
	for _, t := range p.RewardTiers {
		if cheapest == nil || t.CouponsRequired < cheapest.CouponsRequired {
			cheapest = t
		}
		if t.CouponsRequired > balance && (next == nil || t.CouponsRequired < next.CouponsRequired) {
			next = t
		}
	}
	if next == nil {
		return cheapest, 0
	}
	return next, next.CouponsRequired - balance
}

// RewardTierInput carries the admin-editable fields of a tier.
type RewardTierInput struct {
	Name            string
	Names           map[string]string
	CouponsRequired int
	Active          bool
	SortOrder       int
}

func (in RewardTierInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: tier name is empty", common.ErrInvalidSetting)
	}
	if in.CouponsRequired <= 0 {
		return fmt.Errorf("%w: coupons required must be positive", common.ErrInvalidSetting)
	}
	return nil
}

// CouponPolicyService reads settings and reward tiers through a short-lived
// cache. Every write invalidates the cache before returning.
type CouponPolicyService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	events      *EventLogService
	log         logging.Logger
	ttl         time.Duration
	now         func() time.Time

	group      singleflight.Group
	mu         sync.RWMutex
	cached     *Policy
	expiresAt  time.Time
	generation uint64
}

func NewCouponPolicyService(db *sql.DB, m repomanager.RepositoryManager, events *EventLogService, log logging.Logger, ttl time.Duration) *CouponPolicyService {
	if ttl <= 0 {
		ttl = DefaultPolicyCacheTTL
	}
	return &CouponPolicyService{
		db:          db,
		repomanager: m,
		events:      events,
		log:         log.With("module", "policy"),
		ttl:         ttl,
		now:         time.Now,
	}
}

// GetPolicy returns the cached policy, loading it when the cache is empty or
// older than the TTL. Concurrent misses share a single load.
func (s *CouponPolicyService) GetPolicy(ctx context.Context) (*Policy, error) {
	s.mu.RLock()
	if s.cached != nil && s.now().Before(s.expiresAt) {
		p := s.cached
		s.mu.RUnlock()
		return p, nil
	}
	gen := s.generation
	s.mu.RUnlock()

	// waiters share one load, detached from the first caller
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := s.group.Do("policy", func() (any, error) {
		p, err := s.load(loadCtx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		// a write that invalidated the cache during the load wins
		if s.generation == gen {
			s.cached = p
			s.expiresAt = s.now().Add(s.ttl)
		}
		s.mu.Unlock()
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Policy), nil
}

// Invalidate drops the cached policy so the next read reloads it.
func (s *CouponPolicyService) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.generation++
	s.mu.Unlock()
	s.group.Forget("policy")
}

func (s *CouponPolicyService) load(ctx context.Context) (*Policy, error) {
	raw, err := s.repomanager.Settings(s.db).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading settings: %w", err)
	}
	tiers, err := s.repomanager.Tiers(s.db).List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("error loading reward tiers: %w", err)
	}
	return &Policy{
		RedemptionThreshold:  s.intSetting(ctx, raw, SettingRedemptionThreshold),
		TokenExpirationHours: s.intSetting(ctx, raw, SettingTokenExpirationHours),
		MaxCouponsPerDay:     s.intSetting(ctx, raw, SettingMaxCouponsPerDay),
		RewardTiers:          tiers,
	}, nil
}

func (s *CouponPolicyService) intSetting(ctx context.Context, raw map[string]string, key string) int {
	def := settingDefaults[key]
	v, ok := raw[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		s.log.Warn(ctx, "ignoring invalid setting", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

// UpdateSetting stores a positive integer setting and invalidates the cache.
func (s *CouponPolicyService) UpdateSetting(ctx context.Context, key string, value int) error {
	if _, ok := settingDefaults[key]; !ok {
		return fmt.Errorf("%w: %s", common.ErrUnknownSetting, key)
	}
	if value <= 0 {
		return fmt.Errorf("%w: %s must be positive", common.ErrInvalidSetting, key)
	}
	if err := s.repomanager.Settings(s.db).Upsert(ctx, key, strconv.Itoa(value), s.now()); err != nil {
		return fmt.Errorf("error updating setting %s: %w", key, err)
	}
	s.Invalidate()
	s.audit(ctx, map[string]any{"setting": key, "value": value})
	return nil
}

func (s *CouponPolicyService) ListRewardTiers(ctx context.Context, activeOnly bool) ([]*models.RewardTier, error) {
	return s.repomanager.Tiers(s.db).List(ctx, activeOnly)
}

func (s *CouponPolicyService) CreateRewardTier(ctx context.Context, in RewardTierInput) (*models.RewardTier, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	t := &models.RewardTier{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(in.Name),
		Names:           in.Names,
		CouponsRequired: in.CouponsRequired,
		Active:          in.Active,
		SortOrder:       in.SortOrder,
		CreatedAt:       s.now(),
	}
	if err := s.repomanager.Tiers(s.db).Create(ctx, t); err != nil {
		return nil, fmt.Errorf("error creating reward tier: %w", err)
	}
	s.Invalidate()
	s.audit(ctx, map[string]any{"tier_id": t.ID, "action": "create", "coupons_required": t.CouponsRequired})
	return t, nil
}

func (s *CouponPolicyService) UpdateRewardTier(ctx context.Context, id string, in RewardTierInput) (*models.RewardTier, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrRewardTierNotFound
	}
	t := &models.RewardTier{
		ID:              id,
		Name:            strings.TrimSpace(in.Name),
		Names:           in.Names,
		CouponsRequired: in.CouponsRequired,
		Active:          in.Active,
		SortOrder:       in.SortOrder,
		UpdatedAt:       s.now(),
	}
	if err := s.repomanager.Tiers(s.db).Update(ctx, t); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrRewardTierNotFound
		}
		return nil, fmt.Errorf("error updating reward tier: %w", err)
	}
	s.Invalidate()
	s.audit(ctx, map[string]any{"tier_id": id, "action": "update", "coupons_required": t.CouponsRequired, "active": t.Active})
	return t, nil
}

func (s *CouponPolicyService) DeleteRewardTier(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrRewardTierNotFound
	}
	if err := s.repomanager.Tiers(s.db).Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrRewardTierNotFound
		}
		return fmt.Errorf("error deleting reward tier: %w", err)
	}
	s.Invalidate()
	s.audit(ctx, map[string]any{"tier_id": id, "action": "delete"})
	return nil
}

// AvailableRewards returns the active tiers affordable at balance.
func (s *CouponPolicyService) AvailableRewards(ctx context.Context, balance int) ([]*models.RewardTier, error) {
	p, err := s.GetPolicy(ctx)
	if err != nil {
		return nil, err
	}
	return p.AvailableRewards(balance), nil
}

// RemainingForNextReward reports the gap to the next reachable tier.
func (s *CouponPolicyService) RemainingForNextReward(ctx context.Context, balance int) (*models.RewardTier, int, error) {
	p, err := s.GetPolicy(ctx)
	if err != nil {
		return nil, 0, err
	}
	t, n := p.RemainingForNextReward(balance)
	return t, n, nil
}

// audit records a policy change. The change is already stored, so a failing
// audit write is logged and swallowed.
func (s *CouponPolicyService) audit(ctx context.Context, details map[string]any) {
	if s.events == nil {
		return
	}
	if _, err := s.events.LogEvent(ctx, EventEntry{Type: models.EventPolicyChanged, Details: details}); err != nil {
		s.log.Error(ctx, "policy audit failed", "error", err)
	}
}
