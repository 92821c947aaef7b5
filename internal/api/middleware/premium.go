package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/neondash/dashboard/internal/core/domain"
	"github.com/neondash/dashboard/internal/core/ports"
)

// RequireTier only lets through users whose profile currently has the given
// tier. It must run after Auth.
func RequireTier(profiles ports.ProfileService, tier domain.Tier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get(CtxUserID).(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			profile, err := profiles.GetProfile(c.Request().Context(), userID)
			if err != nil {
				return err
			}
			if profile.Tier() != tier {
				if tier == domain.TierStandard {
					return domain.ErrAlreadyPremium
				}
				return c.JSON(http.StatusForbidden, map[string]string{"error": "premium required"})
			}
			return next(c)
		}
	}
}
