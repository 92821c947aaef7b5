package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/neondash/dashboard/internal/api/metrics"
	"github.com/neondash/dashboard/internal/core/ports"
)

// FocusHandler serves the caller's focus journal.
type FocusHandler struct {
	service ports.FocusService
}

func NewFocusHandler(service ports.FocusService) *FocusHandler {
	return &FocusHandler{service: service}
}

// List returns the journal newest first.
//
// @Summary      List focus history
// @Tags         focus
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  focusHistoryResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/focus [get]
func (h *FocusHandler) List(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	history, err := h.service.History(c.Request().Context(), session.UserID)
	if err != nil {
		return err
	}

	items := make([]focusItemResponse, 0, len(history.Items))
	for _, it := range history.Items {
		items = append(items, toFocusItemResponse(it))
	}
	return c.JSON(http.StatusOK, focusHistoryResponse{Current: history.Current, Items: items})
}

// Create adds a new focus entry.
//
// @Summary      Set today's focus
// @Tags         focus
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      focusRequest  true  "Focus text"
// @Success      201   {object}  focusItemResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/focus [post]
func (h *FocusHandler) Create(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req focusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	item, err := h.service.Add(c.Request().Context(), session.UserID, req.FocusText)
	if err != nil {
		return err
	}

	metrics.FocusEntriesTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, toFocusItemResponse(*item))
}

// Update edits one of the caller's entries.
//
// @Summary      Edit a focus entry
// @Tags         focus
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Entry ID"
// @Param        body  body      focusRequest  true  "Focus text"
// @Success      200   {object}  focusItemResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/focus/{id} [patch]
func (h *FocusHandler) Update(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req focusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	item, err := h.service.Edit(c.Request().Context(), session.UserID, c.Param("id"), req.FocusText)
	if err != nil {
		return err
	}

	metrics.FocusEntriesTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toFocusItemResponse(*item))
}

// Delete removes one of the caller's entries.
//
// @Summary      Delete a focus entry
// @Tags         focus
// @Security     BearerAuth
// @Param        id   path  string  true  "Entry ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/focus/{id} [delete]
func (h *FocusHandler) Delete(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), session.UserID, c.Param("id")); err != nil {
		return err
	}

	metrics.FocusEntriesTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

func toFocusItemResponse(it ports.FocusItem) focusItemResponse {
	return focusItemResponse{ID: it.ID, FocusText: it.Text, CreatedAt: it.CreatedAt}
}
