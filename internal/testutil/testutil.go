// Package testutil holds helpers shared by the registry tests.
package testutil

import (
	"path/filepath"
	"testing"

	"golang-stock-registry/internal/entity"
	"golang-stock-registry/pkg/logger"
	"golang-stock-registry/pkg/sqlite"

	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

// DB opens a fresh SQLite database in a temporary directory with the registry schema.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	db, err := sqlite.NewDB(sqlite.Config{
		Path:     filepath.Join(tb.TempDir(), "registry.db"),
		LogLevel: "silent",
	})
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}

	if err := Migrate(db.DB); err != nil {
		tb.Fatalf("failed to migrate test db: %v", err)
	}

	tb.Cleanup(func() {
		if sqlDB, err := db.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db.DB
}

// Migrate creates the registry tables with gorm's migrator.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&entity.Bearer{}, &entity.Stock{})
}

// Logger returns a logger writing through the test's log output.
func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	return logger.Wrap(zaptest.NewLogger(tb))
}

// CreateBearer inserts a bearer and fails the test on error.
func CreateBearer(tb testing.TB, db *gorm.DB, name string) *entity.Bearer {
	tb.Helper()
	bearer := &entity.Bearer{Name: name}
	if err := db.Create(bearer).Error; err != nil {
		tb.Fatalf("seed bearer %q: %v", name, err)
	}
	return bearer
}

// CreateStock inserts an active stock and fails the test on error.
func CreateStock(tb testing.TB, db *gorm.DB, bearer *entity.Bearer, name string) *entity.Stock {
	tb.Helper()
	stock := &entity.Stock{Name: name, BearerID: bearer.ID}
	if err := db.Omit("Bearer").Create(stock).Error; err != nil {
		tb.Fatalf("seed stock %q: %v", name, err)
	}
	return stock
}
