package ports

import (
	"context"

	"github.com/neondash/dashboard/internal/core/domain"
)

// ProfileRepository persists the per-user entitlement record.
type ProfileRepository interface {
	// FindByID returns domain.ErrProfileNotFound when no row matches.
	FindByID(ctx context.Context, userID string) (*domain.Profile, error)
	// Create provisions a standard profile. Creating an existing profile is a no-op.
	Create(ctx context.Context, profile *domain.Profile) error
	// SetPremium sets is_premium = true where the key equals userID and returns
	// the updated rows. An empty slice means nothing matched.
	SetPremium(ctx context.Context, userID string) ([]domain.Profile, error)
}
