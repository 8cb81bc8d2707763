// Package settings stores the tunable key/value policy settings.
package settings

import (
	"context"
	"time"
)

type Repository interface {
	// All returns every stored setting keyed by name.
	All(ctx context.Context) (map[string]string, error)
	// Upsert writes one setting.
	Upsert(ctx context.Context, key, value string, at time.Time) error
}
