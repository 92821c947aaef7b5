package ports

import (
	"context"

	"github.com/neondash/dashboard/internal/core/domain"
)

type AuthService interface {
	SignUp(ctx context.Context, email, password string) (*domain.User, error)
	SignIn(ctx context.Context, email, password string) (string, *domain.User, error)
	SignOut(ctx context.Context, session domain.Session) error
}
