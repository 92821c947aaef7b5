package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/neondash/dashboard/internal/core/domain"
	"github.com/neondash/dashboard/internal/core/ports"
)

type FocusService struct {
	repo   ports.FocusRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewFocusService(repo ports.FocusRepository, logger zerolog.Logger) *FocusService {
	return &FocusService{repo: repo, logger: logger, now: time.Now}
}

// History returns the user's entries newest first.
func (s *FocusService) History(ctx context.Context, userID string) (*ports.FocusHistory, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list focus: %w", err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	history := &ports.FocusHistory{Items: make([]ports.FocusItem, 0, len(entries))}
	for _, e := range entries {
		history.Items = append(history.Items, toFocusItem(&e))
	}
	if len(history.Items) > 0 {
		history.Current = history.Items[0].Text
	}
	return history, nil
}

// Add appends a new entry, which becomes the current focus.
func (s *FocusService) Add(ctx context.Context, userID, text string) (*ports.FocusItem, error) {
	text, err := domain.NormalizeFocus(text)
	if err != nil {
		return nil, err
	}

	entry := &domain.FocusEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Text:      text,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to save focus")
		return nil, fmt.Errorf("create focus: %w", err)
	}

	s.logger.Info().Str("user_id", userID).Str("focus_id", entry.ID).Msg("focus saved")
	item := toFocusItem(entry)
	return &item, nil
}

// Edit replaces the text of one of the user's entries.
func (s *FocusService) Edit(ctx context.Context, userID, id, text string) (*ports.FocusItem, error) {
	text, err := domain.NormalizeFocus(text)
	if err != nil {
		return nil, err
	}

	entry, err := s.repo.UpdateText(ctx, userID, id, text)
	if err != nil {
		return nil, err
	}
	item := toFocusItem(entry)
	return &item, nil
}

// Remove deletes one of the user's entries.
func (s *FocusService) Remove(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", userID).Str("focus_id", id).Msg("focus deleted")
	return nil
}

func toFocusItem(e *domain.FocusEntry) ports.FocusItem {
	return ports.FocusItem{ID: e.ID, Text: e.Text, CreatedAt: e.CreatedAt}
}
