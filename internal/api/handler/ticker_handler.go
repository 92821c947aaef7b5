package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/neondash/dashboard/internal/api/metrics"
	"github.com/neondash/dashboard/internal/core/ports"
)

type TickerHandler struct {
	service ports.TickerService
}

func NewTickerHandler(service ports.TickerService) *TickerHandler {
	return &TickerHandler{service: service}
}

// Get returns the latest crypto prices.
//
// @Summary      Price ticker
// @Tags         ticker
// @Produce      json
// @Success      200  {object}  tickerResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/ticker [get]
func (h *TickerHandler) Get(c echo.Context) error {
	snap, err := h.service.Snapshot()
	if err != nil {
		return err
	}

	metrics.TickerSnapshotAge.Set(time.Since(snap.FetchedAt).Seconds())

	quotes := make([]quoteResponse, 0, len(snap.Quotes))
	for _, q := range snap.Quotes {
		quotes = append(quotes, quoteResponse{
			Symbol:    q.Symbol,
			Name:      q.Name,
			PriceUSD:  q.PriceUSD,
			Change24h: q.Change24h,
			Trend:     q.Trend(),
		})
	}
	return c.JSON(http.StatusOK, tickerResponse{
		Quotes:    quotes,
		FetchedAt: snap.FetchedAt,
		Stale:     snap.Stale,
	})
}
