package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stablecoin-payment-rail/config"
	httpHandler "stablecoin-payment-rail/internal/adapter/http/handler"
	"stablecoin-payment-rail/internal/adapter/rail"
	pgStorage "stablecoin-payment-rail/internal/adapter/storage/postgres"
	redisStorage "stablecoin-payment-rail/internal/adapter/storage/redis"
	"stablecoin-payment-rail/internal/chains"
	"stablecoin-payment-rail/internal/core/ports"
	"stablecoin-payment-rail/internal/service"
	"stablecoin-payment-rail/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("primary_chain", cfg.Provisioner.PrimaryChain).
		Msg("Starting Stablecoin Payment Rail")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories and Redis stores
	merchantRepo := pgStorage.NewMerchantRepo(pool)
	linkCache := redisStorage.NewLinkCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize the rail client
	railClient, err := rail.NewClient(cfg.Rail, &http.Client{Timeout: cfg.Rail.Timeout}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize rail client")
	}

	// Initialize core services
	registry := chains.NewRegistry()
	provisioner := service.NewWalletProvisioner(railClient, cfg.Provisioner, log)
	onboardingSvc, err := service.NewOnboardingService(railClient, provisioner, merchantRepo, registry, cfg.Provisioner.PrimaryChain, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize onboarding service")
	}
	paymentLinkSvc := service.NewPaymentLinkService(railClient, registry, linkCache, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		OnboardingSvc:  onboardingSvc,
		PaymentLinkSvc: paymentLinkSvc,
		MerchantRepo:   merchantRepo,
		LinkCache:      linkCache,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
