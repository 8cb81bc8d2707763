package models

import "time"

// CouponWallet is the per-phone ledger of spendable coupons.
// CouponCount == TotalEarned - TotalRedeemed and never drops below zero.
type CouponWallet struct {
	Phone            string
	CouponCount      int
	TotalEarned      int
	TotalRedeemed    int
	OptedInMarketing bool
	LastMessageAt    *time.Time
	UpdatedAt        time.Time
}
