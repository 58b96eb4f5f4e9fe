package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// HealthChecker reports whether the database answers a ping. It satisfies
// ports.HealthChecker.
type HealthChecker struct {
	db *gorm.DB
}

// NewHealthChecker wraps db for the readiness registry.
func NewHealthChecker(db *gorm.DB) *HealthChecker {
	return &HealthChecker{db: db}
}

// Name identifies the check in readiness output.
func (h *HealthChecker) Name() string {
	return "database"
}

// HealthCheck pings the connection pool.
func (h *HealthChecker) HealthCheck(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database: ping failed: %w", err)
	}
	return nil
}
