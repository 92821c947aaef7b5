package ports

import (
	"context"

	"github.com/neondash/dashboard/internal/core/domain"
)

// PriceFeed fetches current quotes from the public market data API.
type PriceFeed interface {
	FetchQuotes(ctx context.Context) ([]domain.Quote, error)
}

type TickerService interface {
	Snapshot() (*domain.TickerSnapshot, error)
}
