package infra

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"cityinfo/internal/infra/migrations"
)

//go:embed migrations
var migrationFiles embed.FS

// goose keeps dialect and base FS in package globals.
var migrateMu sync.Mutex

// Migrate runs all pending goose migrations against db.
// It must be called before the HTTP server starts accepting requests.
func Migrate(db *gorm.DB, driver string) error {
	migrateMu.Lock()
	defer migrateMu.Unlock()

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get database handle: %w", err)
	}

	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	migrations.SetDialect(driver)

	sub, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("sub migrations fs: %w", err)
	}

	goose.SetBaseFS(sub)
	defer goose.SetBaseFS(nil)

	goose.SetLogger(goose.NopLogger())
	if err := goose.Up(sqlDB, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
