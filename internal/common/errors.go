// Package common defines shared constants and sentinel errors used across
// the ledger's repository, service and transport layers. Callers should use
// errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid or malformed admin token).
	ErrInvalidToken = errors.New("invalid token")

	// Ledger errors. Validation outcomes of consume/claim are reported as
	// result values, these are the hard failures.
	ErrTokenGenerationExhausted = errors.New("token generation exhausted")
	ErrRedemptionNotFound       = errors.New("redemption not found")
	ErrRejectionNoteRequired    = errors.New("rejection note required")
	ErrRedemptionFinalized      = errors.New("redemption already finalized")
	ErrInsufficientCoupons      = errors.New("insufficient coupons")

	// Policy errors.
	ErrUnknownSetting     = errors.New("unknown setting")
	ErrInvalidSetting     = errors.New("invalid setting value")
	ErrRewardTierNotFound = errors.New("reward tier not found")

	ErrRateLimitExceeded = errors.New("rate limit exceeded")
)

// RateLimitError reports a blocked operation together with the time left
// until the identity's counter resets.
type RateLimitError struct {
	Endpoint   string
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded for %s, retry after %ds", e.Endpoint, e.RetryAfterSeconds())
}

// RetryAfterSeconds rounds the retry-after duration up to whole seconds.
func (e *RateLimitError) RetryAfterSeconds() int64 {
	return int64(math.Ceil(e.RetryAfter.Seconds()))
}

func (e *RateLimitError) Unwrap() error { return ErrRateLimitExceeded }
