// Package tiers stores admin-configured reward tiers.
package tiers

import (
	"context"

	"github.com/dmitrijs2005/spakiosk/internal/server/models"
)

type Repository interface {
	// List returns tiers ordered by sort order then cost.
	List(ctx context.Context, activeOnly bool) ([]*models.RewardTier, error)
	Find(ctx context.Context, id string) (*models.RewardTier, error)
	Create(ctx context.Context, t *models.RewardTier) error
	Update(ctx context.Context, t *models.RewardTier) error
	Delete(ctx context.Context, id string) error
}
