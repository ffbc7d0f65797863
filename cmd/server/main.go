package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"time"

	_ "github.com/lib/pq"

	"vouch/internal/attestation"
	"vouch/internal/audit"
	"vouch/internal/platform/config"
	"vouch/internal/platform/httpserver"
	"vouch/internal/platform/logger"
	platformredis "vouch/internal/platform/redis"
	httptransport "vouch/internal/transport/http"
	"vouch/internal/verification"
	"vouch/internal/verification/cache"
	"vouch/internal/verification/metrics"
	"vouch/internal/verification/registry"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	// Screening cache: redis when configured, in-process otherwise.
	var screenings cache.Store = cache.NewMemory()
	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		log.Error("redis unavailable", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		screenings = cache.NewRedisStore(redisClient.Client)
		defer redisClient.Close()
	}

	// Audit trail: postgres when configured, in-process otherwise.
	var auditStore audit.Store = audit.NewMemoryStore()
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Error("postgres unavailable", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		auditStore = audit.NewPostgresStore(db)
	}

	auditor := audit.NewPublisher(256, log)
	worker := audit.NewWorker(auditStore, auditor, log)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	go func() { _ = worker.Run(workerCtx) }()

	reg := registry.New(cfg.Providers)
	service := verification.NewService(reg,
		verification.WithLogger(log),
		verification.WithMetrics(metrics.New()),
		verification.WithScreeningCache(screenings, config.ScreeningCacheTTL),
		verification.WithAuditor(auditor),
		verification.WithCheckTimeout(cfg.Providers.CheckTimeout),
	)

	var attestor *attestation.Issuer
	if key := os.Getenv("VOUCH_ATTESTATION_KEY"); key != "" {
		attestor = attestation.NewIssuer(key, "vouch", 24*time.Hour)
	}

	handler := httptransport.New(service, attestor, log)
	router := httptransport.NewRouter(handler)
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting vouch", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
