package sqlite

import (
	"fmt"
	"strings"

	"golang-stock-registry/pkg/database"
	"golang-stock-registry/pkg/logger"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config holds the SQLite settings.
type Config struct {
	Path     string
	LogLevel string
	Logger   *logger.Logger
}

// DB wraps the gorm handle connected to SQLite.
type DB struct {
	DB *gorm.DB
}

// DSN appends the pragmas the registry relies on: foreign keys must be enforced
// and writers wait on each other instead of failing with SQLITE_BUSY.
func (c Config) DSN() string {
	sep := "?"
	if strings.Contains(c.Path, "?") {
		sep = "&"
	}
	return c.Path + sep + "_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL"
}

// NewDB opens the SQLite database at cfg.Path.
func NewDB(cfg Config) (*DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	db, err := gorm.Open(sqlite.Open(cfg.DSN()), database.GormConfig(cfg.LogLevel, cfg.Logger))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// A single writer connection keeps transactions serialized.
	if err := database.ConfigurePool(db, 1, 1, ""); err != nil {
		return nil, err
	}

	return &DB{DB: db}, nil
}
