package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/neondash/dashboard/internal/api/metrics"
	"github.com/neondash/dashboard/internal/core/ports"
)

type BillingHandler struct {
	checkout ports.CheckoutCreator
}

func NewBillingHandler(checkout ports.CheckoutCreator) *BillingHandler {
	return &BillingHandler{checkout: checkout}
}

// Checkout starts a premium purchase for the caller. Premium users are
// rejected upstream by the tier middleware.
//
// @Summary      Start premium checkout
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  checkoutResponse
// @Failure      401  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/billing/checkout [post]
func (h *BillingHandler) Checkout(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	url, err := h.checkout.CreateCheckout(c.Request().Context(), session.UserID, session.Email)
	if err != nil {
		return err
	}

	metrics.CheckoutsStartedTotal.Inc()
	return c.JSON(http.StatusOK, checkoutResponse{URL: url})
}
