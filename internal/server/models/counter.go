package models

import "time"

// RateLimitCounter counts one identity's calls to one endpoint until ResetAt.
type RateLimitCounter struct {
	Identity string
	Endpoint string
	Count    int
	ResetAt  time.Time
}

// Stale reports whether the counter's window is over at now.
func (c *RateLimitCounter) Stale(now time.Time) bool {
	return !now.Before(c.ResetAt)
}
