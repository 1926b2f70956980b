package infra

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"cityinfo/internal/config"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// OpenDatabase opens a gorm connection for the configured driver.
// sqlite goes through modernc.org/sqlite so the binary stays CGO-free.
func OpenDatabase(cfg config.DatabaseConfig, lggr *zap.SugaredLogger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Discard,
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverSQLite:
		conn, err := sql.Open("sqlite", cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		// one writer at a time; also keeps in-memory databases on a single connection
		conn.SetMaxOpenConns(1)
		if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
		dialector = sqlite.New(sqlite.Config{DriverName: "sqlite", Conn: conn})
	case DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported DB driver %q: must be sqlite3 or postgres", cfg.Driver)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.Driver, err)
	}

	if cfg.MaxOpenConns > 0 && cfg.Driver == DriverPostgres {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("get database handle: %w", err)
		}
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	lggr.Infow("Database connection opened", "driver", cfg.Driver)
	return db, nil
}

func CloseDatabase(db *gorm.DB, lggr *zap.SugaredLogger) {
	sqlDB, err := db.DB()
	if err != nil {
		lggr.Errorw("Error getting database instance", "error", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		lggr.Errorw("Error closing database connection", "error", err)
	} else {
		lggr.Info("Database connection closed successfully")
	}
}
