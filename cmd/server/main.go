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

	"lyberate-settlement/internal/app"
	"lyberate-settlement/internal/config"
	"lyberate-settlement/internal/gateway"
	"lyberate-settlement/internal/httpapi"
	"lyberate-settlement/internal/logger"
	"lyberate-settlement/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.LogPretty)

	ctx := context.Background()
	store, closeStore, err := gateway.Open(ctx, cfg.Store, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("could not open store")
	}
	defer closeStore()

	now := func() time.Time { return time.Now().In(cfg.Location) }

	if cfg.Seed {
		seeded, err := usecase.Seed(ctx, store, store, now)
		if err != nil {
			log.Fatal().Err(err).Msg("could not seed demo data")
		}
		if seeded {
			log.Info().Msg("demo data seeded")
		}
	}

	a := app.New(store, now, usecase.NewUUID, cfg.WeekCount, log)
	router := httpapi.NewRouter(a, httpapi.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		ReleaseMode:    !cfg.LogPretty,
	}, log)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("driver", cfg.Store.Driver).Msg("starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error shutting down HTTP server")
	}
}
