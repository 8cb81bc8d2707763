package models

import "time"

// RewardTier is an admin-configured reward option with its own coupon cost.
type RewardTier struct {
	ID              string
	Name            string
	Names           map[string]string // locale → display name
	CouponsRequired int
	Active          bool
	SortOrder       int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DisplayName returns the localized name, falling back to Name.
func (t *RewardTier) DisplayName(locale string) string {
	if n, ok := t.Names[locale]; ok && n != "" {
		return n
	}
	return t.Name
}
