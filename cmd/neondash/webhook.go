package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/neondash/dashboard/internal/api"
	"github.com/neondash/dashboard/internal/api/handler"
	"github.com/neondash/dashboard/internal/core/ports"
	"github.com/neondash/dashboard/internal/core/service"
	"github.com/neondash/dashboard/internal/infrastructure/db/redis"
	"github.com/neondash/dashboard/internal/infrastructure/http/handlers"
	"github.com/neondash/dashboard/internal/infrastructure/stripe"
	"github.com/neondash/dashboard/pkg/logger"
)

func webhookCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "webhook",
		Short: "Run the Stripe webhook receiver",
		Long: `Run the Stripe webhook receiver.

It connects to the store with SERVICE_DATABASE_URL, the only credential
allowed to grant premium, and verifies every request with
STRIPE_WEBHOOK_SIGNING_SECRET.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()
			return runWebhook(ctx, port)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides WEBHOOK_PORT)")
	return cmd
}

func runWebhook(ctx context.Context, port string) error {
	cfg, log, err := setup(ctx, "webhook")
	if err != nil {
		return err
	}
	if err := cfg.ValidateWebhook(); err != nil {
		return err
	}
	if port == "" {
		port = cfg.Webhook.Port
	}

	st, err := openStore(ctx, cfg.Store, cfg.Webhook.ServiceURL, "neondash-webhook", log)
	if err != nil {
		return err
	}
	defer st.close(context.Background())

	health := map[string]handlers.Check{"store": st.check}

	var ledger ports.EventLedger
	rdb := redis.ConnectOptional(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Name:     "neondash-webhook",
	}, log)
	if rdb != nil {
		defer rdb.Close()
		ledger = redis.NewEventLedger(rdb)
		health["redis"] = handlers.RedisCheck(rdb)
	}

	premium := service.NewPremiumService(st.profiles, ledger, logger.For("premium"))
	wh := handler.NewWebhookHandler(stripe.NewVerifier(cfg.Webhook.SigningSecret), premium, logger.For("webhook"))

	e := api.NewWebhookRouter(log, cfg.Webhook.Path, wh, health)
	return runServer(ctx, e, ":"+port, log)
}
