package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/group-2-odp-bni/be-capstone-project-sub001/config"
	httpHandler "github.com/group-2-odp-bni/be-capstone-project-sub001/internal/adapter/http/handler"
	pgStorage "github.com/group-2-odp-bni/be-capstone-project-sub001/internal/adapter/storage/postgres"
	redisStorage "github.com/group-2-odp-bni/be-capstone-project-sub001/internal/adapter/storage/redis"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/ports"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/service"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/pkg/logger"
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
		Msg("Starting Wallet Ledger Service")

	if cfg.Invite.Secret == "" {
		log.Fatal().Msg("invite.secret must be configured (WLS_INVITE_SECRET)")
	}
	if cfg.Projector.Consumer == "" {
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "projector-1"
		}
		cfg.Projector.Consumer = hostname
	}

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

	// Initialize repositories
	walletRepo := pgStorage.NewWalletRepo(pool)
	memberRepo := pgStorage.NewMemberRepo(pool)
	policyRepo := pgStorage.NewPolicyRepo(pool)
	idempotencyRepo := pgStorage.NewIdempotencyRepo(pool)
	readRepo := pgStorage.NewReadModelRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	inviteStore := redisStorage.NewInviteStore(rdb)
	eventLog := redisStorage.NewEventLog(rdb)

	// Initialize business services
	idemSvc := service.NewIdempotencyService(idempotencyRepo, log)
	balanceSvc := service.NewBalanceService(walletRepo, eventLog, log)
	policySvc := service.NewPolicyService(walletRepo, memberRepo, policyRepo, log)
	walletSvc := service.NewWalletService(walletRepo, memberRepo, readRepo, idemSvc, eventLog, transactor, log)
	inviteSvc := service.NewInviteService(walletRepo, memberRepo, policyRepo, inviteStore, idemSvc, eventLog, transactor, cfg.Invite, log)
	projector := service.NewProjector(readRepo, eventLog, cfg.Projector, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Start background workers: the read-model projector and the periodic
	// purge of expired idempotency records.
	jobCtx, stopJobs := context.WithCancel(ctx)
	projectorDone := make(chan struct{})
	go func() {
		defer close(projectorDone)
		if err := projector.Run(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("projector stopped")
		}
	}()
	go idemSvc.RunCleanup(jobCtx, time.Hour)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		BalanceSvc:     balanceSvc,
		PolicySvc:      policySvc,
		InviteSvc:      inviteSvc,
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

	stopJobs()
	select {
	case <-projectorDone:
	case <-shutdownCtx.Done():
		log.Warn().Msg("projector did not stop in time")
	}

	log.Info().Msg("Server exited")
}
