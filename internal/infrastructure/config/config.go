package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Store   StoreConfig
	Redis   RedisConfig
	Stripe  StripeConfig
	Webhook WebhookConfig
	Ticker  TickerConfig
}

// StoreConfig selects the profile/focus/user store. URL is the client-scoped
// connection; the privileged one lives in WebhookConfig.
type StoreConfig struct {
	Backend  string `env:"STORE_BACKEND, default=mongo"`
	URL      string `env:"DATABASE_URL,  default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,      default=neondash"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type StripeConfig struct {
	SecretKey   string `env:"STRIPE_SECRET_KEY"`
	PriceID     string `env:"STRIPE_PRICE_ID"`
	PaymentLink string `env:"STRIPE_PAYMENT_LINK"`
	FrontendURL string `env:"FRONTEND_URL, default=http://localhost:5173"`
}

type WebhookConfig struct {
	Port          string `env:"WEBHOOK_PORT,                  default=8081"`
	Path          string `env:"WEBHOOK_PATH,                  default=/webhooks/stripe"`
	SigningSecret string `env:"STRIPE_WEBHOOK_SIGNING_SECRET"`
	// ServiceURL is the privileged store connection. Only the webhook uses it.
	ServiceURL string `env:"SERVICE_DATABASE_URL"`
}

type TickerConfig struct {
	URL      string        `env:"TICKER_URL,      default=https://api.coingecko.com/api/v3/simple/price"`
	Interval time.Duration `env:"TICKER_INTERVAL, default=30s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Store.Backend != BackendMongo && cfg.Store.Backend != BackendPostgres {
		return nil, fmt.Errorf("config: unknown STORE_BACKEND %q", cfg.Store.Backend)
	}
	return &cfg, nil
}

// ValidateServe checks what the dashboard API needs.
func (c *Config) ValidateServe() error {
	if c.JWTSecret == "" {
		return errors.New("config: JWT_SECRET is required")
	}
	return nil
}

// ValidateWebhook checks what the payment webhook needs.
func (c *Config) ValidateWebhook() error {
	var errs []error
	if c.Webhook.SigningSecret == "" {
		errs = append(errs, errors.New("STRIPE_WEBHOOK_SIGNING_SECRET is required"))
	}
	if c.Webhook.ServiceURL == "" {
		errs = append(errs, errors.New("SERVICE_DATABASE_URL is required"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// IsProduction reports whether ENV is production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
