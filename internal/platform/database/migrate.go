package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gorm.io/gorm"
)

// Schema DDL per driver, applied in lexical file order. Every statement is
// written to be re-runnable (IF NOT EXISTS).
//
//go:embed migrations
var migrations embed.FS

// Migrate applies the embedded .sql files for driver and returns the names
// of the files it ran. Files are split on ";" so they must not contain
// procedures or literal semicolons.
func Migrate(ctx context.Context, db *gorm.DB, driver string) ([]string, error) {
	dir := path.Join("migrations", driver)
	entries, err := fs.ReadDir(migrations, dir)
	if err != nil {
		return nil, fmt.Errorf("no migrations for driver %q: %w", driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting underlying sql.DB: %w", err)
	}

	var applied []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		name := path.Join(dir, e.Name())
		b, err := migrations.ReadFile(name)
		if err != nil {
			return applied, fmt.Errorf("read %s: %w", name, err)
		}
		for _, stmt := range strings.Split(string(b), ";") {
			if strings.TrimSpace(stmt) == "" {
				continue
			}
			if _, err := sqlDB.ExecContext(ctx, stmt); err != nil {
				return applied, fmt.Errorf("exec %s: %w", name, err)
			}
		}
		applied = append(applied, e.Name())
	}
	return applied, nil
}
