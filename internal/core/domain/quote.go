package domain

import "time"

// Quote is the latest USD price for one asset.
type Quote struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	PriceUSD  float64 `json:"price_usd"`
	Change24h float64 `json:"change_24h"`
}

// Trend reports the direction of the 24h change.
func (q Quote) Trend() string {
	if q.Change24h >= 0 {
		return "up"
	}
	return "down"
}

// TickerSnapshot is what the price ticker last fetched.
type TickerSnapshot struct {
	Quotes    []Quote
	FetchedAt time.Time
	Stale     bool
}
