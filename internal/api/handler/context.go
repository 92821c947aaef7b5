package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/neondash/dashboard/internal/api/middleware"
	"github.com/neondash/dashboard/internal/core/domain"
)

// ctxSession extracts the session injected by the Auth middleware. A missing
// user id means the middleware did not run for this route.
func ctxSession(c echo.Context) (domain.Session, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return domain.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ := c.Get(middleware.CtxEmail).(string)
	tokenID, _ := c.Get(middleware.CtxTokenID).(string)
	expiresAt, _ := c.Get(middleware.CtxExpiresAt).(time.Time)

	return domain.Session{
		UserID:    userID,
		Email:     email,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}, nil
}
