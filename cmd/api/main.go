package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/ecobagapp/ecobag-backend/api/routes"
	"github.com/ecobagapp/ecobag-backend/internal/bagtypes"
	"github.com/ecobagapp/ecobag-backend/internal/cars"
	"github.com/ecobagapp/ecobag-backend/internal/family"
	"github.com/ecobagapp/ecobag-backend/internal/inventory"
	"github.com/ecobagapp/ecobag-backend/internal/locations"
	"github.com/ecobagapp/ecobag-backend/internal/payments"
	"github.com/ecobagapp/ecobag-backend/internal/social"
	"github.com/ecobagapp/ecobag-backend/internal/usage"
	"github.com/ecobagapp/ecobag-backend/internal/users"
	stripewebhook "github.com/ecobagapp/ecobag-backend/internal/webhooks/stripe"
	"github.com/ecobagapp/ecobag-backend/pkg/config"
	"github.com/ecobagapp/ecobag-backend/pkg/db"
	"github.com/ecobagapp/ecobag-backend/pkg/env"
	"github.com/ecobagapp/ecobag-backend/pkg/logger"
	"github.com/ecobagapp/ecobag-backend/pkg/migrate"
	"github.com/ecobagapp/ecobag-backend/pkg/redis"
	"github.com/ecobagapp/ecobag-backend/pkg/stripe"
	"github.com/joho/godotenv"
)

const shutdownGrace = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	usersRepo := users.NewRepository(dbClient.DB())
	usersService, err := users.NewService(usersRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create users service", err)
		os.Exit(1)
	}

	bagTypesRepo := bagtypes.NewRepository(dbClient.DB())
	bagTypesService, err := bagtypes.NewService(bagTypesRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create bag types service", err)
		os.Exit(1)
	}

	carsService, err := cars.NewService(cars.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create cars service", err)
		os.Exit(1)
	}

	inventoryRepo := inventory.NewRepository(dbClient.DB())
	inventoryService, err := inventory.NewService(inventoryRepo, carsService)
	if err != nil {
		logg.Error(context.Background(), "failed to create inventory service", err)
		os.Exit(1)
	}

	locationsService, err := locations.NewService(locations.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create locations service", err)
		os.Exit(1)
	}

	usageRepo := usage.NewRepository(dbClient.DB())
	usageService, err := usage.NewService(usage.ServiceParams{
		UsageRepo:     usageRepo,
		BagTypeRepo:   bagTypesRepo,
		InventoryRepo: inventoryRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create usage service", err)
		os.Exit(1)
	}

	familyService := family.NewService(family.NewRepository(dbClient.DB()), usersRepo, usageRepo)
	socialService := social.NewService(social.NewRepository(dbClient.DB()))

	var stripeClient *stripe.Client
	if cfg.Stripe.Configured() {
		stripeClient, err = stripe.NewClient(context.Background(), cfg.Stripe, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to create stripe client", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "stripe credentials absent, payments disabled")
	}

	var paymentsService *payments.Service
	if stripeClient != nil {
		paymentsService = payments.NewService(payments.NewStripeClient(stripeClient))
	}

	stripeWebhookService, err := stripewebhook.NewService(stripewebhook.ServiceParams{Users: usersRepo})
	if err != nil {
		logg.Error(context.Background(), "failed to create stripe webhook service", err)
		os.Exit(1)
	}
	stripeWebhookGuard, err := stripewebhook.NewIdempotencyGuard(redisClient, 24*time.Hour, "stripe")
	if err != nil {
		logg.Error(context.Background(), "failed to create stripe webhook guard", err)
		os.Exit(1)
	}

	addr := ":" + env.Get("PORT", cfg.App.Port)
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:             cfg,
			Logger:             logg,
			DBPinger:           dbClient,
			RedisPinger:        redisClient,
			Users:              usersService,
			BagTypes:           bagTypesService,
			Cars:               carsService,
			Inventory:          inventoryService,
			Locations:          locationsService,
			Usage:              usageService,
			Family:             familyService,
			Social:             socialService,
			Payments:           paymentsService,
			StripeClient:       stripeClient,
			StripeWebhookSvc:   stripeWebhookService,
			StripeWebhookGuard: stripeWebhookGuard,
		}),
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-runCtx.Done():
		logg.Info(ctx, "shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
			os.Exit(1)
		}
	}

	logg.Info(ctx, "api server stopped")
}
