package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-stock-registry/internal/entity"
	"golang-stock-registry/internal/registry/config"
	delivery "golang-stock-registry/internal/registry/delivery/http"
	_ "golang-stock-registry/internal/registry/docs"
	"golang-stock-registry/internal/registry/event"
	"golang-stock-registry/internal/registry/repository"
	"golang-stock-registry/internal/registry/service"
	"golang-stock-registry/pkg/logger"
	"golang-stock-registry/pkg/postgres"
	"golang-stock-registry/pkg/redis"
	"golang-stock-registry/pkg/sqlite"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the stock registry API",
	Run:   runServe,
}

var seedCmd = &cobra.Command{
	Use:   "seed [bearer names...]",
	Short: "Creates bearers by name",
	Args:  cobra.MinimumNArgs(1),
	Run:   runSeed,
}

// openDatabase connects with the configured driver. The sqlite schema is created
// by gorm since the SQL migrations target postgres.
func openDatabase(cfg *config.Config, appLogger *logger.Logger) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case "sqlite":
		sqliteCfg := cfg.SQLite()
		sqliteCfg.Logger = appLogger
		db, err := sqlite.NewDB(sqliteCfg)
		if err != nil {
			return nil, err
		}
		if err := db.DB.AutoMigrate(&entity.Bearer{}, &entity.Stock{}); err != nil {
			return nil, fmt.Errorf("failed to migrate sqlite schema: %w", err)
		}
		return db.DB, nil
	case "postgres", "":
		postgresCfg := cfg.Postgres()
		postgresCfg.Logger = appLogger
		db, err := postgres.NewDB(postgresCfg)
		if err != nil {
			return nil, err
		}
		return db.DB, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

func closeDatabase(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func mustSetup() (*config.Config, *logger.Logger, *gorm.DB) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db, err := openDatabase(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err), logger.StringField("driver", cfg.Database.Driver))
	}
	return cfg, appLogger, db
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, appLogger, db := mustSetup()
	defer func() { _ = appLogger.Sync() }()
	defer closeDatabase(db)

	appLogger.Info("Starting Stock Registry", logger.Field("name", cfg.App.Name), logger.StringField("driver", cfg.Database.Driver))

	// Stock events go to a Redis stream when enabled
	publisher := event.NewNopPublisher()
	if cfg.Registry.EventsEnabled {
		redisClient, err := redis.NewClient(cfg.RedisClient())
		if err != nil {
			appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
		}
		defer redisClient.Close()
		publisher = event.NewRedisPublisher(redisClient.Client, cfg.Registry.EventsStream, cfg.Redis.StreamMaxLen)
	}

	// Initialize repositories
	bearerRepo := repository.NewBearerRepository(db)
	stockRepo := repository.NewStockRepository(db)
	txRunner := repository.NewTxRunner(db)

	if active, err := stockRepo.Count(ctx, false); err == nil {
		total, _ := stockRepo.Count(ctx, true)
		appLogger.Info("Stock registry loaded", logger.Field("active_stocks", active), logger.Field("total_stocks", total))
	} else {
		appLogger.Warn("Failed to count stocks", logger.ErrorField(err))
	}

	// Initialize services
	bearerNames := service.NewBearerNameCache(bearerRepo, cfg.Registry.BearerCacheTTL)
	bearerSvc := service.NewBearerService(bearerRepo, bearerNames, appLogger)
	stockSvc := service.NewStockService(txRunner, bearerRepo, stockRepo, bearerNames, publisher, appLogger)

	e := delivery.NewServer(
		delivery.ServerOptions{
			RequestTimeout:     cfg.Registry.RequestTimeout,
			RateLimitPerSecond: cfg.Registry.RateLimitPerSecond,
			EnableSwagger:      true,
		},
		appLogger,
		delivery.NewBearerHandler(bearerSvc, appLogger),
		delivery.NewStockHandler(stockSvc, appLogger),
	)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

func runSeed(cmd *cobra.Command, args []string) {
	cfg, appLogger, db := mustSetup()
	defer func() { _ = appLogger.Sync() }()
	defer closeDatabase(db)

	bearerRepo := repository.NewBearerRepository(db)
	bearerSvc := service.NewBearerService(bearerRepo, service.NewBearerNameCache(bearerRepo, cfg.Registry.BearerCacheTTL), appLogger)

	for _, name := range args {
		bearer, err := bearerSvc.CreateBearer(cmd.Context(), name)
		if err != nil {
			if reasons, ok := service.Reasons(err); ok {
				appLogger.Warn("Bearer skipped", logger.StringField("name", name), logger.Field("reasons", reasons))
				continue
			}
			appLogger.Fatal("Failed to seed bearer", logger.StringField("name", name), logger.ErrorField(err))
		}
		fmt.Printf("%d\t%s\n", bearer.ID, bearer.Name)
	}
}

// @title Stock Registry API
// @version 1.0
// @description Bearers and the stocks they own.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{Use: "registry-service"}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-registry.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd, seedCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing registry-service CLI: %s\n", err)
		os.Exit(1)
	}
}
