package pricefeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchQuotes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("ids"); got != "bitcoin,ethereum" {
			t.Errorf("unexpected ids param %q", got)
		}
		if got := r.URL.Query().Get("include_24hr_change"); got != "true" {
			t.Errorf("unexpected include_24hr_change %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"bitcoin":{"usd":64000.5,"usd_24h_change":1.25},"ethereum":{"usd":3100,"usd_24h_change":-2.5}}`))
	}))
	defer srv.Close()

	quotes, err := NewCoinGecko(srv.URL).FetchQuotes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(quotes))
	}
	if quotes[0].Symbol != "BTC" || quotes[0].PriceUSD != 64000.5 || quotes[0].Trend() != "up" {
		t.Errorf("unexpected BTC quote: %+v", quotes[0])
	}
	if quotes[1].Symbol != "ETH" || quotes[1].Change24h != -2.5 || quotes[1].Trend() != "down" {
		t.Errorf("unexpected ETH quote: %+v", quotes[1])
	}
}

func TestFetchQuotes_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := NewCoinGecko(srv.URL).FetchQuotes(context.Background()); err == nil {
		t.Fatal("expected error on 429")
	}
}

func TestFetchQuotes_MissingAsset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"bitcoin":{"usd":1}}`))
	}))
	defer srv.Close()

	if _, err := NewCoinGecko(srv.URL).FetchQuotes(context.Background()); err == nil {
		t.Fatal("expected error when ethereum is missing")
	}
}
