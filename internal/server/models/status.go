// Package models defines the ledger entities persisted in the database.
package models

import "fmt"

// TokenStatus is the lifecycle state of a coupon token.
// issued → used and issued → expired are the only transitions.
type TokenStatus string

const (
	TokenIssued  TokenStatus = "issued"
	TokenUsed    TokenStatus = "used"
	TokenExpired TokenStatus = "expired"
)

// CanTransitionTo reports whether s may move to next.
func (s TokenStatus) CanTransitionTo(next TokenStatus) bool {
	switch s {
	case TokenIssued:
		return next == TokenUsed || next == TokenExpired
	case TokenUsed, TokenExpired:
		return false
	default:
		return false
	}
}

// Terminal reports whether no further transition exists from s.
func (s TokenStatus) Terminal() bool {
	switch s {
	case TokenUsed, TokenExpired:
		return true
	default:
		return false
	}
}

// ParseTokenStatus validates a stored status value.
func ParseTokenStatus(v string) (TokenStatus, error) {
	switch s := TokenStatus(v); s {
	case TokenIssued, TokenUsed, TokenExpired:
		return s, nil
	default:
		return "", fmt.Errorf("unknown token status %q", v)
	}
}

// RedemptionStatus is the lifecycle state of a reward claim.
// pending → completed and pending → rejected are the only transitions.
type RedemptionStatus string

const (
	RedemptionPending   RedemptionStatus = "pending"
	RedemptionCompleted RedemptionStatus = "completed"
	RedemptionRejected  RedemptionStatus = "rejected"
)

// CanTransitionTo reports whether s may move to next.
func (s RedemptionStatus) CanTransitionTo(next RedemptionStatus) bool {
	switch s {
	case RedemptionPending:
		return next == RedemptionCompleted || next == RedemptionRejected
	case RedemptionCompleted, RedemptionRejected:
		return false
	default:
		return false
	}
}

// Terminal reports whether no further transition exists from s.
func (s RedemptionStatus) Terminal() bool {
	switch s {
	case RedemptionCompleted, RedemptionRejected:
		return true
	default:
		return false
	}
}

// ParseRedemptionStatus validates a stored status value.
func ParseRedemptionStatus(v string) (RedemptionStatus, error) {
	switch s := RedemptionStatus(v); s {
	case RedemptionPending, RedemptionCompleted, RedemptionRejected:
		return s, nil
	default:
		return "", fmt.Errorf("unknown redemption status %q", v)
	}
}
