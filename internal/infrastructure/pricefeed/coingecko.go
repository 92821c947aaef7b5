package pricefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/neondash/dashboard/internal/core/domain"
)

const (
	DefaultURL     = "https://api.coingecko.com/api/v3/simple/price"
	requestTimeout = 10 * time.Second
	maxBodyBytes   = 1 << 20
)

type asset struct {
	id     string
	symbol string
	name   string
}

// Tracked assets, in display order.
var assets = []asset{
	{id: "bitcoin", symbol: "BTC", name: "Bitcoin"},
	{id: "ethereum", symbol: "ETH", name: "Ethereum"},
}

type coinPrice struct {
	USD          *float64 `json:"usd"`
	USD24hChange float64  `json:"usd_24h_change"`
}

// CoinGecko reads spot prices from the public simple/price endpoint.
type CoinGecko struct {
	baseURL string
	client  *http.Client
}

// NewCoinGecko creates a client against baseURL, or DefaultURL when empty.
func NewCoinGecko(baseURL string) *CoinGecko {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &CoinGecko{
		baseURL: baseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// FetchQuotes returns one quote per tracked asset.
func (c *CoinGecko) FetchQuotes(ctx context.Context) ([]domain.Quote, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse ticker url: %w", err)
	}
	q := u.Query()
	q.Set("ids", "bitcoin,ethereum")
	q.Set("vs_currencies", "usd")
	q.Set("include_24hr_change", "true")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch prices: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read prices: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("price API returned %d: %s", resp.StatusCode, string(body))
	}

	var prices map[string]coinPrice
	if err := json.Unmarshal(body, &prices); err != nil {
		return nil, fmt.Errorf("decode prices: %w", err)
	}

	quotes := make([]domain.Quote, 0, len(assets))
	for _, a := range assets {
		p, ok := prices[a.id]
		if !ok || p.USD == nil {
			return nil, fmt.Errorf("price API response missing %s", a.id)
		}
		quotes = append(quotes, domain.Quote{
			Symbol:    a.symbol,
			Name:      a.name,
			PriceUSD:  *p.USD,
			Change24h: p.USD24hChange,
		})
	}
	return quotes, nil
}
