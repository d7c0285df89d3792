// Package rdbtest opens throwaway stores for repository and generator tests.
package rdbtest

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"bookseed/config"
	"bookseed/internal/infra/persistence/model"
	"bookseed/internal/infra/persistence/rdb"

	"gorm.io/gorm"
)

// OpenSQLite returns a migrated sqlite store in a fresh temp directory.
// The connection is closed through t.Cleanup.
func OpenSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		Database: &config.DatabaseConfig{
			Provider: config.ProviderSQLite,
			Path:     filepath.Join(t.TempDir(), "bookseed_test.db"),
		},
	}

	return open(t, cfg)
}

func open(t *testing.T, cfg *config.Config) *gorm.DB {
	t.Helper()

	db, err := rdb.Open(cfg, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("rdbtest: open %s: %v", cfg.Database.Provider, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("rdbtest: sql.DB: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := db.WithContext(context.Background()).AutoMigrate(model.All()...); err != nil {
		t.Fatalf("rdbtest: migrate: %v", err)
	}

	return db
}
