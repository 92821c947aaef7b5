package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/neondash/dashboard/internal/core/ports"
	"github.com/neondash/dashboard/internal/infrastructure/config"
	"github.com/neondash/dashboard/internal/infrastructure/db/mongo"
	"github.com/neondash/dashboard/internal/infrastructure/db/postgres"
	"github.com/neondash/dashboard/internal/infrastructure/http/handlers"
)

// store bundles the repositories of one backend connection.
type store struct {
	users    ports.AuthRepository
	profiles ports.ProfileRepository
	focus    ports.FocusRepository
	check    handlers.Check
	close    func(ctx context.Context)
}

// openStore connects to url using the configured backend. name labels the
// connection on the server side.
func openStore(ctx context.Context, cfg config.StoreConfig, url, name string, log zerolog.Logger) (*store, error) {
	switch cfg.Backend {
	case config.BackendPostgres:
		pool, err := postgres.Connect(ctx, postgres.Config{URL: url})
		if err != nil {
			return nil, err
		}
		log.Info().Str("backend", cfg.Backend).Msg("store connected")
		return &store{
			users:    postgres.NewUserRepository(pool),
			profiles: postgres.NewProfileRepository(pool),
			focus:    postgres.NewFocusRepository(pool),
			check:    handlers.PostgresCheck(pool),
			close:    func(context.Context) { pool.Close() },
		}, nil

	case config.BackendMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: url, Database: cfg.Database, AppName: name})
		if err != nil {
			return nil, err
		}
		log.Info().Str("backend", cfg.Backend).Str("database", cfg.Database).Msg("store connected")
		return &store{
			users:    mongo.NewAuthRepository(db),
			profiles: mongo.NewProfileRepository(db),
			focus:    mongo.NewFocusRepository(db),
			check:    handlers.MongoCheck(db),
			close: func(ctx context.Context) { mongo.Disconnect(ctx, client, log) },
		}, nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
}
