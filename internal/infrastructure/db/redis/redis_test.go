package redis

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestConfigOptions(t *testing.T) {
	opts := Config{Addr: "cache:6379", Password: "pw", DB: 2, Name: "neondash-webhook"}.options()
	if opts.Addr != "cache:6379" || opts.Password != "pw" || opts.DB != 2 || opts.ClientName != "neondash-webhook" {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if opts.DialTimeout != defaultTimeout || opts.ReadTimeout != defaultTimeout {
		t.Fatalf("expected default timeouts, got dial=%v read=%v", opts.DialTimeout, opts.ReadTimeout)
	}

	opts = Config{Addr: "cache:6379", Timeout: time.Second}.options()
	if opts.DialTimeout != time.Second || opts.WriteTimeout != time.Second {
		t.Fatalf("expected custom timeout, got %+v", opts)
	}
}

func TestConnectOptional_NoAddr(t *testing.T) {
	if c := ConnectOptional(context.Background(), Config{}, zerolog.Nop()); c != nil {
		t.Fatal("expected nil client without an address")
	}
}
