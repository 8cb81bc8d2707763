package models

import "time"

// CouponRedemption is a claim of CouponsUsed coupons against a reward.
// CouponsUsed is a snapshot taken at claim time and is what a rejection refunds.
type CouponRedemption struct {
	ID           string
	Phone        string
	RewardTierID string
	RewardName   string
	CouponsUsed  int
	Status       RedemptionStatus
	Note         string
	HandledBy    string
	CreatedAt    time.Time
	NotifiedAt   *time.Time
	CompletedAt  *time.Time
	RejectedAt   *time.Time
}
