package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/spakiosk/internal/common"
	"github.com/dmitrijs2005/spakiosk/internal/dbx"
	"github.com/dmitrijs2005/spakiosk/internal/logging"
	"github.com/dmitrijs2005/spakiosk/internal/phone"
	"github.com/dmitrijs2005/spakiosk/internal/server/config"
	"github.com/dmitrijs2005/spakiosk/internal/server/metrics"
	"github.com/dmitrijs2005/spakiosk/internal/server/models"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/spakiosk/internal/tokengen"
	"github.com/google/uuid"
)

// ResultCode explains why a consume or claim did not succeed.
type ResultCode string

const (
	CodeInvalidToken        ResultCode = "INVALID_TOKEN"
	CodeExpiredToken        ResultCode = "EXPIRED_TOKEN"
	CodeAlreadyUsed         ResultCode = "ALREADY_USED"
	CodeInsufficientCoupons ResultCode = "INSUFFICIENT_COUPONS"
)

const (
	tokenIssueAttempts      = 3
	issuedTokenRetention    = 7 * 24 * time.Hour
	usedTokenRetention      = 90 * 24 * time.Hour
	pendingRedemptionMaxAge = 30 * 24 * time.Hour

	// AutoExpireNote is stored on redemptions rejected by ExpirePendingRedemptions.
	AutoExpireNote = "auto-expired after 30 days"
	// SystemActor handles redemptions changed by maintenance jobs.
	SystemActor = "system"

	payloadPrefix = "KUPON "
)

// IssuedToken is a fresh token together with the message a customer sends
// to redeem it.
type IssuedToken struct {
	Token     string
	Payload   string
	DeepLink  string
	ExpiresAt time.Time
}

// ConsumeResult is the outcome of ConsumeToken. Code is empty when OK.
type ConsumeResult struct {
	OK              bool
	Balance         int
	RemainingToFree int
	AlreadyUsed     bool
	Code            ResultCode
}

// ClaimResult is the outcome of ClaimRedemption. Code is empty when OK.
type ClaimResult struct {
	OK           bool
	RedemptionID string
	RewardName   string
	Balance      int
	Needed       int
	Threshold    int
	IsNew        bool
	Code         ResultCode
}

// CouponService runs the coupon ledger: token issue and consumption,
// wallets, redemptions and their maintenance. Every mutation runs in one
// transaction together with its audit event.
type CouponService struct {
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	policy         *CouponPolicyService
	events         *EventLogService
	metrics        *metrics.Metrics
	log            logging.Logger
	whatsAppNumber string
	now            func() time.Time
	generate       func() (string, error)
}

func NewCouponService(db *sql.DB, m repomanager.RepositoryManager, policy *CouponPolicyService,
	events *EventLogService, met *metrics.Metrics, log logging.Logger, cfg *config.Config) *CouponService {
	return &CouponService{
		db:             db,
		repomanager:    m,
		policy:         policy,
		events:         events,
		metrics:        met,
		log:            log.With("module", "coupons"),
		whatsAppNumber: phone.Normalize(cfg.WhatsAppNumber),
		now:            time.Now,
		generate:       tokengen.Generate,
	}
}

// IssueToken creates a single-use token for a kiosk. Collisions with
// existing tokens are retried a bounded number of times.
func (s *CouponService) IssueToken(ctx context.Context, kioskID, issuedFor string) (*IssuedToken, error) {
	p, err := s.policy.GetPolicy(ctx)
	if err != nil {
		return nil, err
	}

	t, err := dbx.WithTxResult(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (*models.CouponToken, error) {
		repo := s.repomanager.Tokens(tx)

		var token string
		for attempt := 1; attempt <= tokenIssueAttempts; attempt++ {
			candidate, err := s.generate()
			if err != nil {
				return nil, fmt.Errorf("error generating token: %w", err)
			}
			exists, err := repo.Exists(ctx, candidate)
			if err != nil {
				return nil, err
			}
			if !exists {
				token = candidate
				break
			}
			s.log.Warn(ctx, "token collision", "attempt", attempt)
		}
		if token == "" {
			return nil, common.ErrTokenGenerationExhausted
		}

		now := s.now()
		t := &models.CouponToken{
			Token:     token,
			Status:    models.TokenIssued,
			IssuedFor: issuedFor,
			KioskID:   kioskID,
			ExpiresAt: now.Add(p.TokenTTL()),
			CreatedAt: now,
		}
		if err := repo.Create(ctx, t); err != nil {
			return nil, fmt.Errorf("error creating token: %w", err)
		}
		details := map[string]any{"kiosk_id": kioskID}
		if issuedFor != "" {
			details["issued_for"] = issuedFor
		}
		if _, err := s.events.LogEventTx(ctx, tx, EventEntry{Type: models.EventTokenIssued, Token: token, Details: details}); err != nil {
			return nil, err
		}
		return t, nil
	})
	if err != nil {
		if errors.Is(err, common.ErrTokenGenerationExhausted) {
			s.log.Error(ctx, "token generation exhausted", "kiosk_id", kioskID, "attempts", tokenIssueAttempts)
		}
		return nil, err
	}

	s.metrics.TokenIssued()
	s.log.Info(ctx, "token issued", "token", tokengen.Mask(t.Token), "kiosk_id", kioskID)

	payload := payloadPrefix + t.Token
	return &IssuedToken{
		Token:     t.Token,
		Payload:   payload,
		DeepLink:  s.deepLink(payload),
		ExpiresAt: t.ExpiresAt,
	}, nil
}

func (s *CouponService) deepLink(payload string) string {
	if s.whatsAppNumber == "" {
		return ""
	}
	return "https://wa.me/" + s.whatsAppNumber + "?text=" + url.QueryEscape(payload)
}

// ConsumeToken converts a token into one coupon for phone, exactly once.
// Presenting an already used token again from the same phone is idempotent
// and reports the current balance with AlreadyUsed set.
func (s *CouponService) ConsumeToken(ctx context.Context, rawPhone, rawToken string) (*ConsumeResult, error) {
	p, err := s.policy.GetPolicy(ctx)
	if err != nil {
		return nil, err
	}
	ph := phone.Normalize(rawPhone)
	tok := tokengen.Canonical(rawToken)

	res, err := dbx.WithTxResult(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (*ConsumeResult, error) {
		return s.consumeTx(ctx, tx, p, ph, tok)
	})
	if err != nil {
		return nil, err
	}

	if res.OK {
		if !res.AlreadyUsed {
			s.metrics.CouponAwarded()
			s.log.Info(ctx, "coupon awarded", "phone", phone.Mask(ph), "balance", res.Balance)
		}
	} else {
		s.metrics.ConsumeRejected(string(res.Code))
		s.log.Info(ctx, "token rejected", "phone", phone.Mask(ph), "token", tokengen.Mask(tok), "code", string(res.Code))
	}
	return res, nil
}

func (s *CouponService) consumeTx(ctx context.Context, tx dbx.DBTX, p *Policy, ph, tok string) (*ConsumeResult, error) {
	now := s.now()
	tokens := s.repomanager.Tokens(tx)
	wallets := s.repomanager.Wallets(tx)

	reject := func(code ResultCode, eventType models.EventType) (*ConsumeResult, error) {
		_, err := s.events.LogEventTx(ctx, tx, EventEntry{
			Type:    eventType,
			Phone:   ph,
			Token:   tok,
			Details: map[string]any{"reason": string(code)},
		})
		if err != nil {
			return nil, err
		}
		res := &ConsumeResult{Code: code}
		if w, err := wallets.Find(ctx, ph); err == nil {
			res.Balance = w.CouponCount
		} else if !errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return res, nil
	}

	t, err := tokens.FindForUpdate(ctx, tok)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return reject(CodeInvalidToken, models.EventTokenRejected)
		}
		return nil, err
	}

	if t.Status == models.TokenUsed {
		if t.Phone != ph {
			return reject(CodeAlreadyUsed, models.EventTokenRejected)
		}
		balance := 0
		if w, err := wallets.Find(ctx, ph); err == nil {
			balance = w.CouponCount
		} else if !errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return &ConsumeResult{
			OK:              true,
			Balance:         balance,
			RemainingToFree: max(0, p.RedemptionThreshold-balance),
			AlreadyUsed:     true,
		}, nil
	}

	if t.IsExpired(now) {
		if t.Status.CanTransitionTo(models.TokenExpired) {
			if err := tokens.MarkExpired(ctx, tok, now); err != nil {
				return nil, fmt.Errorf("error expiring token: %w", err)
			}
		}
		return reject(CodeExpiredToken, models.EventTokenExpired)
	}

	if !t.Status.CanTransitionTo(models.TokenUsed) {
		return reject(CodeInvalidToken, models.EventTokenRejected)
	}

	if err := tokens.MarkUsed(ctx, tok, ph, now); err != nil {
		return nil, fmt.Errorf("error marking token used: %w", err)
	}
	if _, err := wallets.Ensure(ctx, ph, now); err != nil {
		return nil, fmt.Errorf("error creating wallet: %w", err)
	}
	w, err := wallets.Award(ctx, ph, 1, now)
	if err != nil {
		return nil, fmt.Errorf("error awarding coupon: %w", err)
	}
	_, err = s.events.LogEventTx(ctx, tx, EventEntry{
		Type:    models.EventCouponAwarded,
		Phone:   ph,
		Token:   tok,
		Details: map[string]any{"balance": w.CouponCount, "kiosk_id": t.KioskID},
	})
	if err != nil {
		return nil, err
	}
	return &ConsumeResult{
		OK:              true,
		Balance:         w.CouponCount,
		RemainingToFree: max(0, p.RedemptionThreshold-w.CouponCount),
	}, nil
}

// GetWallet returns the wallet of phone, or nil when it has none.
func (s *CouponService) GetWallet(ctx context.Context, rawPhone string) (*models.CouponWallet, error) {
	w, err := s.repomanager.Wallets(s.db).Find(ctx, phone.Normalize(rawPhone))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return w, nil
}

// ClaimRedemption spends coupons on a reward. tierID selects an active
// tier; otherwise the redemption threshold applies. A pending redemption
// of the phone is returned unchanged with IsNew false.
func (s *CouponService) ClaimRedemption(ctx context.Context, rawPhone, tierID string) (*ClaimResult, error) {
	p, err := s.policy.GetPolicy(ctx)
	if err != nil {
		return nil, err
	}
	ph := phone.Normalize(rawPhone)

	required, rewardName, resolvedTier := p.RedemptionThreshold, "", ""
	if tierID != "" {
		if t := p.Tier(tierID); t != nil {
			required, rewardName, resolvedTier = t.CouponsRequired, t.Name, t.ID
		}
	}

	res, err := dbx.WithTxResult(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (*ClaimResult, error) {
		now := s.now()
		wallets := s.repomanager.Wallets(tx)
		redemptions := s.repomanager.Redemptions(tx)

		balance := 0
		if w, err := wallets.FindForUpdate(ctx, ph); err == nil {
			balance = w.CouponCount
		} else if !errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}

		pending, err := redemptions.FindPendingByPhone(ctx, ph)
		if err == nil {
			return &ClaimResult{
				OK:           true,
				RedemptionID: pending.ID,
				RewardName:   pending.RewardName,
				Balance:      balance,
				Threshold:    pending.CouponsUsed,
			}, nil
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}

		insufficient := &ClaimResult{
			Code:      CodeInsufficientCoupons,
			Balance:   balance,
			Needed:    required - balance,
			Threshold: required,
		}
		if balance < required {
			return insufficient, nil
		}

		w, err := wallets.Deduct(ctx, ph, required, now)
		if err != nil {
			if errors.Is(err, common.ErrInsufficientCoupons) {
				return insufficient, nil
			}
			return nil, fmt.Errorf("error deducting coupons: %w", err)
		}

		red := &models.CouponRedemption{
			ID:           uuid.NewString(),
			Phone:        ph,
			RewardTierID: resolvedTier,
			RewardName:   rewardName,
			CouponsUsed:  required,
			Status:       models.RedemptionPending,
			CreatedAt:    now,
		}
		if err := redemptions.Create(ctx, red); err != nil {
			return nil, fmt.Errorf("error creating redemption: %w", err)
		}
		_, err = s.events.LogEventTx(ctx, tx, EventEntry{
			Type:  models.EventRedemptionGranted,
			Phone: ph,
			Details: map[string]any{
				"redemption_id":  red.ID,
				"coupons_used":   required,
				"reward_tier_id": resolvedTier,
				"balance":        w.CouponCount,
			},
		})
		if err != nil {
			return nil, err
		}
		return &ClaimResult{
			OK:           true,
			RedemptionID: red.ID,
			RewardName:   rewardName,
			Balance:      w.CouponCount,
			Threshold:    required,
			IsNew:        true,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	if res.IsNew {
		s.metrics.Redemption("granted")
		s.log.Info(ctx, "redemption granted", "phone", phone.Mask(ph), "redemption_id", res.RedemptionID, "coupons_used", res.Threshold)
	}
	return res, nil
}

// CompleteRedemption marks a pending redemption as fulfilled. Completing
// a completed redemption is a no-op; completing a rejected one fails with
// common.ErrRedemptionFinalized.
func (s *CouponService) CompleteRedemption(ctx context.Context, id, actor string) error {
	changed, err := s.finalize(ctx, id, models.RedemptionCompleted, func(ctx context.Context, tx dbx.DBTX, red *models.CouponRedemption) error {
		now := s.now()
		if err := s.repomanager.Redemptions(tx).Complete(ctx, red.ID, actor, now); err != nil {
			return fmt.Errorf("error completing redemption: %w", err)
		}
		_, err := s.events.LogEventTx(ctx, tx, EventEntry{
			Type:    models.EventRedemptionCompleted,
			Phone:   red.Phone,
			Details: map[string]any{"redemption_id": red.ID, "actor": actor},
		})
		return err
	})
	if err != nil {
		return err
	}
	if changed {
		s.metrics.Redemption("completed")
		s.log.Info(ctx, "redemption completed", "redemption_id", id, "actor", actor)
	}
	return nil
}

// RejectRedemption rejects a pending redemption and refunds its coupons.
// A note is required. Rejecting a rejected redemption is a no-op;
// rejecting a completed one fails with common.ErrRedemptionFinalized.
func (s *CouponService) RejectRedemption(ctx context.Context, id, note, actor string) error {
	note = strings.TrimSpace(note)
	if note == "" {
		return common.ErrRejectionNoteRequired
	}
	changed, err := s.finalize(ctx, id, models.RedemptionRejected, func(ctx context.Context, tx dbx.DBTX, red *models.CouponRedemption) error {
		return s.rejectTx(ctx, tx, red, note, actor, models.EventRedemptionRejected)
	})
	if err != nil {
		return err
	}
	if changed {
		s.metrics.Redemption("rejected")
		s.log.Info(ctx, "redemption rejected", "redemption_id", id, "actor", actor)
	}
	return nil
}

// finalize locks the wallet and then the redemption, and applies fn when
// the redemption is pending. It reports whether fn ran.
func (s *CouponService) finalize(ctx context.Context, id string, target models.RedemptionStatus,
	fn func(ctx context.Context, tx dbx.DBTX, red *models.CouponRedemption) error) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, common.ErrRedemptionNotFound
	}
	return dbx.WithTxResult(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (bool, error) {
		red, err := s.lockRedemption(ctx, tx, id)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return false, common.ErrRedemptionNotFound
			}
			return false, err
		}
		if red.Status == target {
			return false, nil
		}
		if !red.Status.CanTransitionTo(target) {
			return false, common.ErrRedemptionFinalized
		}
		return true, fn(ctx, tx, red)
	})
}

// lockRedemption locks the owner's wallet and then the redemption, the same
// order ClaimRedemption takes them in.
func (s *CouponService) lockRedemption(ctx context.Context, tx dbx.DBTX, id string) (*models.CouponRedemption, error) {
	redemptions := s.repomanager.Redemptions(tx)
	red, err := redemptions.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.repomanager.Wallets(tx).FindForUpdate(ctx, red.Phone); err != nil && !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error locking wallet: %w", err)
	}
	return redemptions.FindForUpdate(ctx, id)
}

func (s *CouponService) rejectTx(ctx context.Context, tx dbx.DBTX, red *models.CouponRedemption, note, actor string, eventType models.EventType) error {
	now := s.now()
	if err := s.repomanager.Redemptions(tx).Reject(ctx, red.ID, actor, note, now); err != nil {
		return fmt.Errorf("error rejecting redemption: %w", err)
	}
	w, err := s.repomanager.Wallets(tx).Refund(ctx, red.Phone, red.CouponsUsed, now)
	if err != nil {
		return fmt.Errorf("error refunding redemption %s: %w", red.ID, err)
	}
	_, err = s.events.LogEventTx(ctx, tx, EventEntry{
		Type:  eventType,
		Phone: red.Phone,
		Details: map[string]any{
			"redemption_id": red.ID,
			"actor":         actor,
			"note":          note,
			"refunded":      red.CouponsUsed,
			"balance":       w.CouponCount,
		},
	})
	return err
}

// OptOut withdraws marketing consent, creating the wallet if needed.
func (s *CouponService) OptOut(ctx context.Context, rawPhone string) error {
	return s.setOptIn(ctx, rawPhone, false)
}

// OptIn restores marketing consent.
func (s *CouponService) OptIn(ctx context.Context, rawPhone string) error {
	return s.setOptIn(ctx, rawPhone, true)
}

func (s *CouponService) setOptIn(ctx context.Context, rawPhone string, optedIn bool) error {
	ph := phone.Normalize(rawPhone)
	eventType := models.EventOptOut
	if optedIn {
		eventType = models.EventOptIn
	}
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		now := s.now()
		wallets := s.repomanager.Wallets(tx)
		if _, err := wallets.Ensure(ctx, ph, now); err != nil {
			return fmt.Errorf("error creating wallet: %w", err)
		}
		if err := wallets.SetMarketingOptIn(ctx, ph, optedIn, now); err != nil {
			return fmt.Errorf("error updating marketing consent: %w", err)
		}
		_, err := s.events.LogEventTx(ctx, tx, EventEntry{Type: eventType, Phone: ph})
		return err
	})
	if err != nil {
		return err
	}
	s.log.Info(ctx, "marketing consent changed", "phone", phone.Mask(ph), "opted_in", optedIn)
	return nil
}

// MarkRedemptionNotified records that the customer was told about the reward.
func (s *CouponService) MarkRedemptionNotified(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrRedemptionNotFound
	}
	if err := s.repomanager.Redemptions(s.db).MarkNotified(ctx, id, s.now()); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrRedemptionNotFound
		}
		return err
	}
	return nil
}

// ListRedemptions returns the newest redemptions in status.
func (s *CouponService) ListRedemptions(ctx context.Context, status models.RedemptionStatus, limit int) ([]*models.CouponRedemption, error) {
	if _, err := models.ParseRedemptionStatus(string(status)); err != nil {
		return nil, err
	}
	return s.repomanager.Redemptions(s.db).ListByStatus(ctx, status, clampLimit(limit))
}

// CleanupExpiredTokens deletes issued and expired tokens a week past their
// expiry and used tokens 90 days after use.
func (s *CouponService) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	n, err := dbx.WithTxResult(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (int64, error) {
		now := s.now()
		n, err := s.repomanager.Tokens(tx).DeleteStale(ctx, now.Add(-issuedTokenRetention), now.Add(-usedTokenRetention))
		if err != nil {
			return 0, fmt.Errorf("error deleting stale tokens: %w", err)
		}
		if n > 0 {
			_, err = s.events.LogEventTx(ctx, tx, EventEntry{Type: models.EventTokensCleaned, Details: map[string]any{"deleted": n}})
			if err != nil {
				return 0, err
			}
		}
		return n, nil
	})
	if err != nil {
		return 0, err
	}
	s.log.Info(ctx, "stale tokens cleaned", "deleted", n)
	return n, nil
}

// ExpirePendingRedemptions rejects and refunds redemptions left pending
// for more than 30 days.
func (s *CouponService) ExpirePendingRedemptions(ctx context.Context) (int, error) {
	n, err := dbx.WithTxResult(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (int, error) {
		cutoff := s.now().Add(-pendingRedemptionMaxAge)
		stale, err := s.repomanager.Redemptions(tx).ListPendingBefore(ctx, cutoff)
		if err != nil {
			return 0, fmt.Errorf("error listing stale redemptions: %w", err)
		}
		expired := 0
		for _, listed := range stale {
			red, err := s.lockRedemption(ctx, tx, listed.ID)
			if err != nil {
				if errors.Is(err, common.ErrorNotFound) {
					continue
				}
				return 0, err
			}
			if red.Status != models.RedemptionPending {
				continue
			}
			if err := s.rejectTx(ctx, tx, red, AutoExpireNote, SystemActor, models.EventRedemptionExpired); err != nil {
				return 0, err
			}
			expired++
		}
		if expired > 0 {
			_, err = s.events.LogEventTx(ctx, tx, EventEntry{Type: models.EventRedemptionsExpired, Details: map[string]any{"expired": expired}})
			if err != nil {
				return 0, err
			}
		}
		return expired, nil
	})
	if err != nil {
		return 0, err
	}
	for i := 0; i < n; i++ {
		s.metrics.Redemption("expired")
	}
	s.log.Info(ctx, "pending redemptions expired", "expired", n)
	return n, nil
}
