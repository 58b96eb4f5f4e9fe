// Package database opens the relational store behind the todo repository.
// It selects a gorm dialector from configuration (mysql, postgres or a
// pure-Go sqlite), applies connection pool settings, and verifies the
// connection before handing the *gorm.DB to adapters.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// Registers the cgo-free "sqlite" database/sql driver.
	_ "modernc.org/sqlite"

	"github.com/jsamuelsen11/todoapp/internal/platform/config"
)

const (
	pingTimeout = 5 * time.Second

	// sqliteDriverName is the database/sql name registered by modernc.org/sqlite.
	sqliteDriverName = "sqlite"
)

// Now is the store clock. MySQL keeps datetime(3) and rounds finer values,
// so timestamps are cut to the millisecond before they are written.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// Open connects to the configured database and verifies it with a ping.
// The caller owns the returned handle and must call Close.
func Open(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                                   NewGormLogger(logger, cfg.LogLevel, cfg.SlowThreshold),
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc:                                  Now,
	})
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting underlying sql.DB: %w", err)
	}

	if inMemory(cfg) {
		// Every new connection to :memory: is a fresh, empty database.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("pinging %s database: %w", cfg.Driver, err)
	}

	logger.InfoContext(ctx, "database connected",
		slog.String("driver", cfg.Driver),
		slog.Int("max_open_conns", cfg.MaxOpenConns),
	)
	return db, nil
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "mysql":
		return mysql.New(mysql.Config{DSN: cfg.DSN}), nil
	case "postgres":
		return postgres.New(postgres.Config{DSN: cfg.DSN}), nil
	case "sqlite":
		return sqlite.New(sqlite.Config{DriverName: sqliteDriverName, DSN: cfg.DSN}), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func inMemory(cfg *config.DatabaseConfig) bool {
	return cfg.Driver == "sqlite" && strings.Contains(cfg.DSN, ":memory:")
}
