package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neondash/dashboard/internal/core/domain"
)

const profileColumns = "id, email, is_premium, created_at, updated_at"

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) FindByID(ctx context.Context, userID string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, "SELECT "+profileColumns+" FROM profiles WHERE id=$1", userID)
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return p, nil
}

func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.pool.Exec(ctx,
		`INSERT INTO profiles (id, email, is_premium, created_at, updated_at)
		 VALUES ($1, $2, false, $3, $4)
		 ON CONFLICT (id) DO NOTHING`,
		p.ID, p.Email, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// SetPremium updates every row keyed by userID and returns what changed.
func (r *ProfileRepository) SetPremium(ctx context.Context, userID string) ([]domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx,
		"UPDATE profiles SET is_premium=true, updated_at=now() WHERE id=$1 RETURNING "+profileColumns,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("set premium: %w", err)
	}
	defer rows.Close()

	updated := []domain.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		updated = append(updated, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("set premium: %w", err)
	}
	return updated, nil
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	if err := row.Scan(&p.ID, &p.Email, &p.IsPremium, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
