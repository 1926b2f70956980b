package testutil

import (
	"strings"
	"testing"

	"gorm.io/gorm"

	"cityinfo/internal/config"
	"cityinfo/internal/infra"
	"cityinfo/pkg/logger"
)

// NewTestDB opens an in-memory SQLite database named after the test and runs
// all migrations, seed data included.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := "file:" + name + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"

	lggr := logger.Test(t)
	db, err := infra.OpenDatabase(config.DatabaseConfig{Driver: infra.DriverSQLite, DSN: dsn}, lggr)
	if err != nil {
		t.Fatalf("open in-memory sqlite: %v", err)
	}
	t.Cleanup(func() { infra.CloseDatabase(db, logger.Nop()) })

	if err := infra.Migrate(db, infra.DriverSQLite); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	return db
}
