// Package dbtest opens migrated in-memory SQLite databases for tests.
package dbtest

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"traineetracker/internal/database"
)

// Open returns a fresh migrated database private to t. The shared cache keeps
// the in-memory schema visible to every pooled connection.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := database.Connect(dsn, logger.Default.LogMode(logger.Silent))
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}
