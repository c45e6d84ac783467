package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"traineetracker/internal/config"
	"traineetracker/internal/database"
	"traineetracker/internal/pkg/logger"
	"traineetracker/internal/server"
	"traineetracker/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	l := logger.Setup(cfg.AppEnv)
	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg.DatabaseURL, nil)
	if err != nil {
		l.Fatal().Err(err).Msg("db connect failed")
	}
	if err := database.Migrate(ctx, db); err != nil {
		l.Fatal().Err(err).Msg("migrations failed")
	}

	store, err := storage.FromConfig(ctx, cfg)
	if err != nil {
		l.Fatal().Err(err).Msg("storage init failed")
	}

	router := server.NewRouter(db, store, l, server.Options{
		UploadURLPrefix: cfg.Upload.URLPrefix,
		MaxUploadBytes:  cfg.Upload.MaxBytes,
		CORSOrigins:     cfg.CORSOrigins,
		RateLimitRPS:    cfg.RateLimit.RPS,
		RateLimitBurst:  cfg.RateLimit.Burst,
		TrustedProxies:  cfg.TrustedProxies,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	go func() {
		l.Info().Str("addr", cfg.HTTPAddr).Str("storage", cfg.Upload.Backend).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	l.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error().Err(err).Msg("graceful shutdown failed")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
