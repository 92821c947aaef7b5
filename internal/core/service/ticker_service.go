package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/neondash/dashboard/internal/core/domain"
	"github.com/neondash/dashboard/internal/core/ports"
)

const (
	defaultTickerInterval = 30 * time.Second
	tickerFetchTimeout    = 10 * time.Second
)

// TickerService polls the price feed on a fixed interval and keeps the last
// good snapshot. A failed poll marks the snapshot stale but keeps its quotes.
type TickerService struct {
	feed     ports.PriceFeed
	interval time.Duration
	log      zerolog.Logger

	mu        sync.RWMutex
	quotes    []domain.Quote
	fetchedAt time.Time
	lastErr   error
}

// NewTickerService creates a TickerService. If interval <= 0, 30s is used.
func NewTickerService(feed ports.PriceFeed, interval time.Duration, log zerolog.Logger) *TickerService {
	if interval <= 0 {
		interval = defaultTickerInterval
	}
	return &TickerService{feed: feed, interval: interval, log: log}
}

// Start fetches once immediately and then on every tick until ctx is cancelled.
func (s *TickerService) Start(ctx context.Context) {
	go s.run(ctx)
}

func (s *TickerService) run(ctx context.Context) {
	s.Refresh(ctx)

	t := time.NewTicker(s.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Refresh(ctx)
		}
	}
}

// Refresh performs a single poll.
func (s *TickerService) Refresh(ctx context.Context) {
	fetchCtx, cancel := context.WithTimeout(ctx, tickerFetchTimeout)
	defer cancel()

	quotes, err := s.feed.FetchQuotes(fetchCtx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err
		s.log.Warn().Err(err).Msg("price feed fetch failed")
		return
	}
	s.quotes = quotes
	s.fetchedAt = time.Now().UTC()
	s.lastErr = nil
}

// Snapshot returns the latest quotes, or domain.ErrNoQuotes before the first
// successful fetch.
func (s *TickerService) Snapshot() (*domain.TickerSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.fetchedAt.IsZero() {
		return nil, domain.ErrNoQuotes
	}
	quotes := make([]domain.Quote, len(s.quotes))
	copy(quotes, s.quotes)
	return &domain.TickerSnapshot{
		Quotes:    quotes,
		FetchedAt: s.fetchedAt,
		Stale:     s.lastErr != nil,
	}, nil
}
