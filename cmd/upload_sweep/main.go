package main

import (
	"context"
	"flag"
	"time"

	"traineetracker/internal/config"
	"traineetracker/internal/database"
	"traineetracker/internal/domain/upload"
	"traineetracker/internal/pkg/logger"
	"traineetracker/internal/storage"

	"github.com/rs/zerolog/log"
)

func main() {
	minAge := flag.Duration("min-age", 24*time.Hour, "keep unreferenced images younger than this")
	dryRun := flag.Bool("dry-run", false, "only report what would be removed")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	l := logger.Setup(cfg.AppEnv)
	ctx := l.WithContext(context.Background())

	db, err := database.Connect(cfg.DatabaseURL, nil)
	if err != nil {
		l.Fatal().Err(err).Msg("db connect failed")
	}

	store, err := storage.FromConfig(ctx, cfg)
	if err != nil {
		l.Fatal().Err(err).Msg("storage init failed")
	}

	svc := upload.NewService(upload.NewRepository(db), store, cfg.Upload.URLPrefix, cfg.Upload.MaxBytes)
	removed, err := svc.Sweep(ctx, *minAge, *dryRun)
	if err != nil {
		l.Fatal().Err(err).Int("removed", len(removed)).Msg("upload sweep failed")
	}

	for _, name := range removed {
		l.Info().Str("name", name).Bool("dry_run", *dryRun).Msg("unreferenced image")
	}
	l.Info().Int("removed", len(removed)).Bool("dry_run", *dryRun).Msg("upload sweep completed")
}
