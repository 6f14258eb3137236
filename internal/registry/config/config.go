package config

import (
	"time"

	"golang-stock-registry/pkg/common"
	"golang-stock-registry/pkg/config"
	"golang-stock-registry/pkg/postgres"
	"golang-stock-registry/pkg/redis"
	"golang-stock-registry/pkg/sqlite"
)

// Registry holds registry-specific configuration.
type Registry struct {
	BearerCacheTTL     time.Duration `mapstructure:"bearer_cache_ttl"`
	RequestTimeout     time.Duration `mapstructure:"request_timeout"`
	RateLimitPerSecond float64       `mapstructure:"rate_limit_per_second"`
	EventsEnabled      bool          `mapstructure:"events_enabled"`
	EventsStream       string        `mapstructure:"events_stream"`
}

// Config holds the full configuration for the registry service.
type Config struct {
	App      config.App      `mapstructure:"app"`
	Logger   config.Logger   `mapstructure:"logger"`
	Database config.Database `mapstructure:"database"`
	Redis    config.Redis    `mapstructure:"redis"`
	API      config.API      `mapstructure:"api"`
	Registry Registry        `mapstructure:"registry"`
}

// Load loads the registry configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}

	if cfg.Registry.BearerCacheTTL <= 0 {
		cfg.Registry.BearerCacheTTL = 10 * time.Minute
	}
	if cfg.Registry.RequestTimeout <= 0 {
		cfg.Registry.RequestTimeout = 15 * time.Second
	}
	if cfg.Registry.EventsStream == "" {
		cfg.Registry.EventsStream = common.RedisStreamStockEvents
	}
	return &cfg, nil
}

// Postgres returns the connection settings for the postgres driver.
func (c *Config) Postgres() postgres.Config {
	return postgres.Config{
		Host:            c.Database.Host,
		Port:            c.Database.Port,
		User:            c.Database.User,
		Password:        c.Database.Password,
		DBName:          c.Database.DBName,
		SSLMode:         c.Database.SSLMode,
		TimeZone:        c.Database.TimeZone,
		MaxIdleConns:    c.Database.MaxIdleConns,
		MaxOpenConns:    c.Database.MaxOpenConns,
		ConnMaxLifetime: c.Database.ConnMaxLifetime,
		LogLevel:        c.Database.LogLevel,
	}
}

// SQLite returns the settings for the sqlite driver.
func (c *Config) SQLite() sqlite.Config {
	return sqlite.Config{Path: c.Database.Path, LogLevel: c.Database.LogLevel}
}

// RedisClient returns the Redis connection settings.
func (c *Config) RedisClient() redis.Config {
	return redis.Config{
		Host:     c.Redis.Host,
		Port:     c.Redis.Port,
		Password: c.Redis.Password,
		DB:       c.Redis.DB,
		PoolSize: c.Redis.PoolSize,
	}
}
