package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// ErrNoDatabase is returned when the connection settings name no database.
var ErrNoDatabase = errors.New("mongo: database name required")

// Config holds the settings for one store connection. AppName tags the
// connection in server logs so the dashboard API and the webhook can be told
// apart when they share a cluster.
type Config struct {
	URI      string
	Database string
	AppName  string
	Timeout  time.Duration
}

// Connect dials the cluster, pings it and returns the client together with
// the dashboard database.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	if cfg.Database == "" {
		return nil, nil, ErrNoDatabase
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(timeout)
	if cfg.AppName != "" {
		opts.SetAppName(cfg.AppName)
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping %s: %w", cfg.Database, err)
	}

	return client, client.Database(cfg.Database), nil
}

// Disconnect closes client and logs instead of returning, for deferred use.
func Disconnect(ctx context.Context, client *mongo.Client, log zerolog.Logger) {
	if err := client.Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect")
	}
}

// EnsureIndexes creates every index the dashboard collections rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	return errors.Join(
		NewAuthRepository(db).EnsureIndexes(ctx),
		NewFocusRepository(db).EnsureIndexes(ctx),
	)
}
