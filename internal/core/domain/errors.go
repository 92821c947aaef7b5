package domain

import "errors"

var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrAlreadyPremium     = errors.New("profile is already premium")
	ErrFocusNotFound      = errors.New("focus entry not found")
	ErrEmptyFocus         = errors.New("focus text is required")
	ErrFocusTooLong       = errors.New("focus text is too long")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrSignatureInvalid   = errors.New("webhook signature verification failed")
	ErrMissingUserID      = errors.New("no user id found")
	ErrNoQuotes           = errors.New("market data not available yet")
)
