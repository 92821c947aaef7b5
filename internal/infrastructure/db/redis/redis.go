package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const defaultTimeout = 5 * time.Second

// Config holds the settings for the ledger and revocation store. Name is sent
// with CLIENT SETNAME so each process shows up under its own name.
type Config struct {
	Addr     string
	Password string
	DB       int
	Name     string
	Timeout  time.Duration
}

func (c Config) options() *redis.Options {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &redis.Options{
		Addr:         c.Addr,
		Password:     c.Password,
		DB:           c.DB,
		ClientName:   c.Name,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
}

// Connect builds a client and pings it once.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	opts := cfg.options()
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, opts.DialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// ConnectOptional is Connect for callers that can run without Redis. It logs
// the failure and returns nil instead of an error.
func ConnectOptional(ctx context.Context, cfg Config, log zerolog.Logger) *redis.Client {
	if cfg.Addr == "" {
		log.Warn().Msg("REDIS_ADDR not set, running without redis")
		return nil
	}
	client, err := Connect(ctx, cfg)
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.Addr).Msg("redis unavailable, running without it")
		return nil
	}
	return client
}
