package database

import (
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite"
)

// Connect opens a PostgreSQL connection for postgres:// DSNs and falls back
// to SQLite (pure Go driver) for anything else, e.g. "trainees.db" or
// "file:test?mode=memory&cache=shared".
func Connect(dsn string, gormLogger logger.Interface) (*gorm.DB, error) {
	if gormLogger == nil {
		gormLogger = logger.Default.LogMode(logger.Warn)
	}
	cfg := &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	}

	if IsPostgres(dsn) {
		log.Info().Msg("connecting to PostgreSQL")
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	log.Info().Str("dsn", dsn).Msg("using SQLite")

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		cfg,
	)
}

func IsPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
