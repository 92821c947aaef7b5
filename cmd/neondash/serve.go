package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/neondash/dashboard/internal/api"
	"github.com/neondash/dashboard/internal/api/metrics"
	"github.com/neondash/dashboard/internal/core/ports"
	"github.com/neondash/dashboard/internal/core/service"
	"github.com/neondash/dashboard/internal/infrastructure/db/redis"
	"github.com/neondash/dashboard/internal/infrastructure/http/handlers"
	"github.com/neondash/dashboard/internal/infrastructure/pricefeed"
	"github.com/neondash/dashboard/internal/infrastructure/stripe"
	"github.com/neondash/dashboard/pkg/logger"
)

func serveCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()
			return runServe(ctx, port)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")
	return cmd
}

func runServe(ctx context.Context, port string) error {
	cfg, log, err := setup(ctx, "api")
	if err != nil {
		return err
	}
	if err := cfg.ValidateServe(); err != nil {
		return err
	}
	if port == "" {
		port = cfg.Port
	}

	st, err := openStore(ctx, cfg.Store, cfg.Store.URL, "neondash-api", log)
	if err != nil {
		return err
	}
	defer st.close(context.Background())

	health := map[string]handlers.Check{"store": st.check}

	var revocations ports.TokenRevoker
	rdb := redis.ConnectOptional(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Name:     "neondash-api",
	}, log)
	if rdb != nil {
		defer rdb.Close()
		revocations = redis.NewRevocationList(rdb)
		health["redis"] = handlers.RedisCheck(rdb)
	}

	ticker := service.NewTickerService(metrics.InstrumentFeed(pricefeed.NewCoinGecko(cfg.Ticker.URL)), cfg.Ticker.Interval, logger.For("ticker"))
	ticker.Start(ctx)

	authSvc := service.NewAuthService(st.users, st.profiles, revocations, cfg.JWTSecret, cfg.TokenTTL, logger.For("auth"))

	e := api.NewRouter(api.Dependencies{
		Log:         log,
		JWTSecret:   cfg.JWTSecret,
		Revocations: revocations,
		Auth:        authSvc,
		Profiles:    service.NewProfileService(st.profiles),
		Focus:       service.NewFocusService(st.focus, logger.For("focus")),
		Ticker:      ticker,
		Checkout: stripe.NewCheckoutCreator(stripe.CheckoutConfig{
			SecretKey:   cfg.Stripe.SecretKey,
			PriceID:     cfg.Stripe.PriceID,
			PaymentLink: cfg.Stripe.PaymentLink,
			FrontendURL: cfg.Stripe.FrontendURL,
		}),
		Health:  health,
		Swagger: !cfg.IsProduction(),
	})

	return runServer(ctx, e, ":"+port, log)
}
