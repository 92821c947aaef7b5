package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/neondash/dashboard/internal/api/metrics"
	"github.com/neondash/dashboard/internal/core/domain"
	"github.com/neondash/dashboard/internal/core/ports"
)

const (
	maxWebhookBodyBytes = int64(65536)
	signatureHeader     = "Stripe-Signature"
)

// WebhookHandler receives payment provider notifications.
type WebhookHandler struct {
	verifier ports.EventVerifier
	premium  ports.PremiumService
	log      zerolog.Logger
}

func NewWebhookHandler(verifier ports.EventVerifier, premium ports.PremiumService, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{verifier: verifier, premium: premium, log: log}
}

// Receive handles the Stripe webhook. It is registered for every method and
// answers anything but POST with 405.
//
// @Summary      Receive a Stripe event
// @Tags         webhook
// @Accept       json
// @Produce      json
// @Param        Stripe-Signature  header    string  true  "Stripe signature header"
// @Success      200  {object}  webhookSuccessResponse
// @Success      200  {object}  webhookReceivedResponse
// @Failure      400  {string}  string
// @Failure      405  {string}  string
// @Failure      500  {object}  errorResponse
// @Router       /webhooks/stripe [post]
func (h *WebhookHandler) Receive(c echo.Context) error {
	if c.Request().Method != http.MethodPost {
		c.Response().Header().Set(echo.HeaderAllow, http.MethodPost)
		return c.String(http.StatusMethodNotAllowed, "Method Not Allowed")
	}

	start := time.Now()
	eventType, outcome := "unknown", "error"
	defer func() {
		metrics.WebhookEventsTotal.WithLabelValues(eventType, outcome).Inc()
		metrics.WebhookDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	}()

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBodyBytes))
	if err != nil {
		h.log.Error().Err(err).Msg("failed to read webhook body")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
	}

	sig := c.Request().Header.Get(signatureHeader)
	if sig == "" {
		outcome = "missing_signature"
		return c.String(http.StatusBadRequest, "No signature found")
	}

	event, err := h.verifier.Verify(body, sig)
	if err != nil {
		outcome = "invalid_signature"
		h.log.Warn().Err(err).Msg("webhook signature verification failed")
		return c.String(http.StatusBadRequest, "Webhook Error: "+err.Error())
	}

	eventType = event.Type

	result, err := h.premium.HandleEvent(c.Request().Context(), event)
	if err != nil {
		if errors.Is(err, domain.ErrMissingUserID) {
			outcome = "missing_user"
			h.log.Warn().Err(err).Str("event_id", event.ID).Msg("checkout session without user id")
			return c.String(http.StatusBadRequest, "No user ID found")
		}
		outcome = "store_error"
		h.log.Error().Err(err).Str("event_id", event.ID).Msg("failed to update profile")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to update profile"})
	}

	outcome = string(result.Outcome)
	if result.Outcome == ports.OutcomeIgnored {
		return c.JSON(http.StatusOK, webhookReceivedResponse{Received: true})
	}

	if result.Outcome == ports.OutcomeUpgraded && result.Matched == 0 {
		metrics.WebhookProfileMissingTotal.Inc()
	}

	return c.JSON(http.StatusOK, webhookSuccessResponse{
		Success: true,
		Message: "User upgraded to premium",
		UserID:  result.UserID,
	})
}
