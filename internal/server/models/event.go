package models

import "time"

// EventType names an audit-log entry.
type EventType string

const (
	EventTokenIssued         EventType = "issued"
	EventCouponAwarded       EventType = "coupon_awarded"
	EventTokenRejected       EventType = "token_rejected"
	EventTokenExpired        EventType = "token_expired"
	EventRedemptionGranted   EventType = "redemption_granted"
	EventRedemptionCompleted EventType = "redemption_completed"
	EventRedemptionRejected  EventType = "redemption_rejected"
	EventRedemptionExpired   EventType = "redemption_expired"
	EventRedemptionsExpired  EventType = "redemptions_expired"
	EventTokensCleaned       EventType = "tokens_cleaned"
	EventOptOut              EventType = "opt_out"
	EventOptIn               EventType = "opt_in"
	EventRateLimitAbuse      EventType = "rate_limit_abuse"
	EventPolicyChanged       EventType = "policy_changed"
)

// CouponEvent is one immutable audit-log record. Phone and Token are stored
// masked. PhoneHash is a keyed hash of the full phone used for lookups and
// is never exported.
type CouponEvent struct {
	ID        int64          `json:"id"`
	EventType EventType      `json:"event_type"`
	Phone     string         `json:"phone,omitempty"`
	PhoneHash string         `json:"-"`
	Token     string         `json:"token,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
