package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traineetracker/internal/database"
	"traineetracker/internal/database/dbtest"
)

func TestIsPostgres(t *testing.T) {
	assert.True(t, database.IsPostgres("postgres://u:p@localhost:5432/db"))
	assert.True(t, database.IsPostgres("postgresql://localhost/db"))
	assert.False(t, database.IsPostgres("trainees.db"))
	assert.False(t, database.IsPostgres("file:x?mode=memory&cache=shared"))
}

func TestMigrate_CreatesTables(t *testing.T) {
	db := dbtest.Open(t)

	for _, table := range []string{"trainees", "progress", "uploads"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	var version int64
	require.NoError(t, db.Raw("SELECT MAX(version_id) FROM goose_db_version").Scan(&version).Error)
	assert.Equal(t, int64(1), version)
}

func TestMigrate_EmailIsUnique(t *testing.T) {
	db := dbtest.Open(t)

	require.NoError(t, db.Exec("INSERT INTO trainees (name, email) VALUES ('A', 'a@x.com')").Error)
	err := db.Exec("INSERT INTO trainees (name, email) VALUES ('B', 'a@x.com')").Error
	assert.Error(t, err)
}
