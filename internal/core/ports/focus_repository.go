package ports

import (
	"context"

	"github.com/neondash/dashboard/internal/core/domain"
)

// FocusRepository stores focus journal entries. Every call is scoped to the
// owning user; a row belonging to someone else behaves as if it did not exist.
type FocusRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.FocusEntry, error)
	Create(ctx context.Context, entry *domain.FocusEntry) error
	UpdateText(ctx context.Context, userID, id, text string) (*domain.FocusEntry, error)
	Delete(ctx context.Context, userID, id string) error
}
