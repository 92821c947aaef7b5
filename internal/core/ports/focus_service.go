package ports

import (
	"context"
	"time"
)

// FocusItem is a single journal row as exposed to the transport layer.
type FocusItem struct {
	ID        string
	Text      string
	CreatedAt time.Time
}

// FocusHistory is the user's journal, newest first. Current is the most
// recent entry's text, or empty when there is none.
type FocusHistory struct {
	Current string
	Items   []FocusItem
}

type FocusService interface {
	History(ctx context.Context, userID string) (*FocusHistory, error)
	Add(ctx context.Context, userID, text string) (*FocusItem, error)
	Edit(ctx context.Context, userID, id, text string) (*FocusItem, error)
	Remove(ctx context.Context, userID, id string) error
}
