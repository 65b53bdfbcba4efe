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

	"github.com/abdullah9786/nawab-products/internal/cache"
	"github.com/abdullah9786/nawab-products/internal/config"
	"github.com/abdullah9786/nawab-products/internal/infra"
	"github.com/abdullah9786/nawab-products/internal/router"
	"github.com/abdullah9786/nawab-products/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Structured logger. dev: pretty, prod: JSON
	zerolog.TimeFieldFormat = time.RFC3339
	if !cfg.IsProduction() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if err := infra.Migrate(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := infra.NewConnector(cfg.DatabaseURL)
	db, err := conn.DB(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	deps := router.Deps{DB: db, Health: conn}

	// Redis backs the storefront cache and the contact queue. Without it the
	// API still serves, uncached, and rejects enquiries.
	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable; cache and contact queue disabled")
	} else {
		deps.Redis = rdb
		deps.Cache = cache.NewRedis(rdb)
		deps.Queue = worker.NewDispatcher(rdb)

		mailer := infra.NewMailer(cfg)
		if !mailer.Enabled() {
			log.Warn().Msg("SMTP_HOST not set; contact enquiries will be dead-lettered")
		}
		pool := worker.NewPool(rdb, worker.DefaultMaxAttempts)
		pool.Register(worker.QueueContact, worker.JobContact,
			worker.NewContactWorker(mailer, infra.NewCircuitBreaker(infra.DefaultCBConfig("smtp"))))
		pool.Start(ctx, cfg.WorkerPoolSize)
	}

	r := router.New(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("Nawab Khana API listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	log.Info().Msg("server exited")
}
