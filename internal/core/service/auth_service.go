package service

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/neondash/dashboard/internal/core/domain"
	"github.com/neondash/dashboard/internal/core/ports"
)

const minPasswordLength = 6

// AuthService implements sign-up, sign-in and sign-out.
type AuthService struct {
	users     ports.AuthRepository
	profiles  ports.ProfileRepository
	revoker   ports.TokenRevoker
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(
	users ports.AuthRepository,
	profiles ports.ProfileRepository,
	revoker ports.TokenRevoker,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		profiles:  profiles,
		revoker:   revoker,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// SignUp creates the user and provisions a standard profile for it.
func (s *AuthService) SignUp(ctx context.Context, email, password string) (*domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || len(password) < minPasswordLength {
		return nil, domain.ErrInvalidCredentials
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	// A failure here is repaired on the next sign-in.
	if err := s.provisionProfile(ctx, created); err != nil {
		s.log.Warn().Err(err).Str("user_id", created.ID).Msg("profile provisioning failed at sign-up")
	}

	s.log.Info().Str("user_id", created.ID).Msg("user signed up")
	return created, nil
}

// SignIn checks the credentials and returns a signed session token.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if err := s.provisionProfile(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// SignOut revokes the session's token until it expires. Without a
// revocation list the token simply lives until exp.
func (s *AuthService) SignOut(ctx context.Context, session domain.Session) error {
	if session.TokenID == "" {
		return nil
	}
	if s.revoker == nil {
		s.log.Warn().Str("user_id", session.UserID).Msg("sign-out without revocation list")
		return nil
	}
	return s.revoker.Revoke(ctx, session.TokenID, session.ExpiresAt)
}

func (s *AuthService) provisionProfile(ctx context.Context, user *domain.User) error {
	now := time.Now().UTC()
	return s.profiles.Create(ctx, &domain.Profile{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
