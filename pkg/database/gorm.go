package database

import (
	"fmt"
	"strings"
	"time"

	"golang-stock-registry/pkg/logger"

	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// GormConfig returns the gorm configuration shared by every dialector.
// Driver errors are translated so unique and foreign key violations surface as
// gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated regardless of the backend.
// When log is set, gorm writes through it instead of stdout.
func GormConfig(logLevel string, log *logger.Logger) *gorm.Config {
	return &gorm.Config{
		Logger:         newGormLogger(parseLogLevel(logLevel), log),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// ConfigurePool applies the connection pool settings to the underlying sql.DB.
func ConfigurePool(db *gorm.DB, maxIdleConns, maxOpenConns int, connMaxLifetime string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if maxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(maxIdleConns)
	}
	if maxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(maxOpenConns)
	}
	if connMaxLifetime != "" {
		lifetime, err := time.ParseDuration(connMaxLifetime)
		if err != nil {
			return fmt.Errorf("invalid conn_max_lifetime %q: %w", connMaxLifetime, err)
		}
		sqlDB.SetConnMaxLifetime(lifetime)
	}
	return nil
}

func parseLogLevel(level string) gormLogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormLogger.Silent
	case "warn":
		return gormLogger.Warn
	case "info", "debug":
		return gormLogger.Info
	default:
		return gormLogger.Error
	}
}

func newGormLogger(level gormLogger.LogLevel, log *logger.Logger) gormLogger.Interface {
	if log == nil {
		return gormLogger.Default.LogMode(level)
	}
	return gormLogger.New(gormWriter{log: log}, gormLogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// gormWriter adapts Logger to the Printf writer gorm's logger expects.
type gormWriter struct {
	log *logger.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Info(fmt.Sprintf(format, args...), logger.StringField("component", "gorm"))
}
