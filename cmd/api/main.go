package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/rifqipratama/warungkita-backend/api/routes"
	cartsvc "github.com/rifqipratama/warungkita-backend/internal/cart"
	"github.com/rifqipratama/warungkita-backend/internal/catalog"
	checkoutsvc "github.com/rifqipratama/warungkita-backend/internal/checkout"
	"github.com/rifqipratama/warungkita-backend/internal/cron"
	"github.com/rifqipratama/warungkita-backend/internal/payments"
	studiosvc "github.com/rifqipratama/warungkita-backend/internal/studio"
	"github.com/rifqipratama/warungkita-backend/pkg/config"
	"github.com/rifqipratama/warungkita-backend/pkg/db"
	"github.com/rifqipratama/warungkita-backend/pkg/genai"
	"github.com/rifqipratama/warungkita-backend/pkg/logger"
	"github.com/rifqipratama/warungkita-backend/pkg/metrics"
)

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
		logg.Error(context.Background(), "failed to bootstrap catalog store", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing catalog store", err)
		}
	}()

	if err := catalog.Seed(context.Background(), dbClient.DB()); err != nil {
		logg.Error(context.Background(), "failed to seed catalog", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	checkoutMetrics := metrics.NewCheckoutMetrics(registry)
	jobMetrics := metrics.NewJobMetrics(registry)

	catalogService, err := catalog.NewService(catalog.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	cartService, err := cartsvc.NewService(cartsvc.NewStore(), catalogService)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	tracker := payments.NewConfirmationTracker(payments.TrackerParams{
		Delay:   cfg.Payments.ConfirmationDelay,
		Logger:  logg,
		Metrics: checkoutMetrics,
	})

	checkoutService, err := checkoutsvc.NewService(checkoutsvc.ServiceParams{
		Registry: checkoutsvc.NewRegistry(),
		Carts:    cartService,
		Sellers:  catalogService,
		Tracker:  tracker,
		TTL:      cfg.Checkout.SessionTTL(),
		Logger:   logg,
		Metrics:  checkoutMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	var studioService studiosvc.Service
	if cfg.GenAI.APIKey != "" {
		genaiClient, err := genai.NewClient(cfg.GenAI.APIKey, genai.WithBaseURL(cfg.GenAI.BaseURL))
		if err != nil {
			logg.Error(context.Background(), "failed to create genai client", err)
			os.Exit(1)
		}
		studioService, err = studiosvc.NewService(genaiClient, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to create studio service", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "genai api key not set; studio endpoints disabled")
	}

	sweepJob, err := cron.NewSessionSweepJob(cron.SessionSweepJobParams{
		Logger:   logg,
		Checkout: checkoutService,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create session sweep job", err)
		os.Exit(1)
	}
	sweeper, err := cron.NewService(cron.ServiceParams{
		Logger:   logg,
		Registry: cron.NewRegistry(sweepJob),
		Lock:     cron.NewMutexLock(),
		Metrics:  jobMetrics,
		Interval: cfg.Sweeper.Interval,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create sweeper", err)
		os.Exit(1)
	}

	sweeperCtx, cancelSweeper := context.WithCancel(context.Background())
	defer cancelSweeper()
	go func() {
		if err := sweeper.Run(sweeperCtx); err != nil && err != context.Canceled {
			logg.Error(sweeperCtx, "sweeper stopped unexpectedly", err)
		}
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:   cfg,
			Logger:   logg,
			DB:       dbClient,
			Catalog:  catalogService,
			Cart:     cartService,
			Checkout: checkoutService,
			Studio:   studioService,
			Gatherer: registry,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
