package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neondash/dashboard/internal/core/domain"
)

type FocusRepository struct {
	pool *pgxpool.Pool
}

func NewFocusRepository(pool *pgxpool.Pool) *FocusRepository {
	return &FocusRepository{pool: pool}
}

func (r *FocusRepository) ListByUser(ctx context.Context, userID string) ([]domain.FocusEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx,
		"SELECT id, user_id, focus_text, created_at FROM focus_history WHERE user_id=$1 ORDER BY created_at DESC",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list focus: %w", err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.FocusEntry, error) {
		var e domain.FocusEntry
		err := row.Scan(&e.ID, &e.UserID, &e.Text, &e.CreatedAt)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan focus: %w", err)
	}
	return entries, nil
}

func (r *FocusRepository) Create(ctx context.Context, e *domain.FocusEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.pool.Exec(ctx,
		"INSERT INTO focus_history (id, user_id, focus_text, created_at) VALUES ($1, $2, $3, $4)",
		e.ID, e.UserID, e.Text, e.CreatedAt,
	)
	return err
}

func (r *FocusRepository) UpdateText(ctx context.Context, userID, id, text string) (*domain.FocusEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e domain.FocusEntry
	err := r.pool.QueryRow(ctx,
		`UPDATE focus_history SET focus_text=$1 WHERE id=$2 AND user_id=$3
		 RETURNING id, user_id, focus_text, created_at`,
		text, id, userID,
	).Scan(&e.ID, &e.UserID, &e.Text, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFocusNotFound
		}
		return nil, fmt.Errorf("update focus: %w", err)
	}
	return &e, nil
}

func (r *FocusRepository) Delete(ctx context.Context, userID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, "DELETE FROM focus_history WHERE id=$1 AND user_id=$2", id, userID)
	if err != nil {
		return fmt.Errorf("delete focus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFocusNotFound
	}
	return nil
}
