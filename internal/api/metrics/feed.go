package metrics

import (
	"context"

	"github.com/neondash/dashboard/internal/core/domain"
	"github.com/neondash/dashboard/internal/core/ports"
)

type instrumentedFeed struct {
	next ports.PriceFeed
}

// InstrumentFeed counts every fetch made through feed.
func InstrumentFeed(feed ports.PriceFeed) ports.PriceFeed {
	return instrumentedFeed{next: feed}
}

func (f instrumentedFeed) FetchQuotes(ctx context.Context) ([]domain.Quote, error) {
	quotes, err := f.next.FetchQuotes(ctx)
	if err != nil {
		TickerFetchesTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	TickerFetchesTotal.WithLabelValues("ok").Inc()
	return quotes, nil
}
