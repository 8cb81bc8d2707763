package models

import "time"

// CouponToken is a single-use code proving a coupon-earning visit.
type CouponToken struct {
	Token     string
	Status    TokenStatus
	IssuedFor string // optional external reference, e.g. a massage record id
	KioskID   string
	Phone     string // set once consumed
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsExpired reports whether the token's lifetime has elapsed at now.
func (t *CouponToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
