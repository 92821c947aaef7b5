package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/neondash/dashboard/internal/infrastructure/config"
	"github.com/neondash/dashboard/internal/infrastructure/db/mongo"
	"github.com/neondash/dashboard/internal/infrastructure/db/postgres"
)

func migrateCmd() *cobra.Command {
	var useService bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create tables (postgres) or indexes (mongo)",
		Long: `Prepare the configured store.

With STORE_BACKEND=postgres the embedded goose migrations are applied.
With STORE_BACKEND=mongo the collection indexes are created.

Examples:
  neondash migrate
  neondash migrate --service`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			return runMigrate(ctx, useService)
		},
	}
	cmd.Flags().BoolVar(&useService, "service", false, "connect with SERVICE_DATABASE_URL instead of DATABASE_URL")
	return cmd
}

func runMigrate(ctx context.Context, useService bool) error {
	cfg, log, err := setup(ctx, "migrate")
	if err != nil {
		return err
	}

	url := cfg.Store.URL
	if useService && cfg.Webhook.ServiceURL != "" {
		url = cfg.Webhook.ServiceURL
	}

	switch cfg.Store.Backend {
	case config.BackendPostgres:
		if err := postgres.Migrate(ctx, url); err != nil {
			return err
		}
	case config.BackendMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: url, Database: cfg.Store.Database, AppName: "neondash-migrate"})
		if err != nil {
			return err
		}
		defer mongo.Disconnect(context.Background(), client, log)
		if err := mongo.EnsureIndexes(ctx, db); err != nil {
			return err
		}
	}

	log.Info().Str("backend", cfg.Store.Backend).Msg("store migrated")
	return nil
}
