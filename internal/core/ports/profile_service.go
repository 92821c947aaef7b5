package ports

import (
	"context"

	"github.com/neondash/dashboard/internal/core/domain"
)

type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
}

// CheckoutCreator opens a provider checkout for the given user.
type CheckoutCreator interface {
	CreateCheckout(ctx context.Context, userID, email string) (string, error)
}
