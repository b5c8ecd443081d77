package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/dualstream/internal/adapter/http"
	"github.com/iho/dualstream/internal/adapter/http/handler"
	"github.com/iho/dualstream/internal/adapter/idgen"
	"github.com/iho/dualstream/internal/adapter/store"
	"github.com/iho/dualstream/internal/infrastructure/auth"
	"github.com/iho/dualstream/internal/infrastructure/config"
	"github.com/iho/dualstream/internal/infrastructure/logger"
	"github.com/iho/dualstream/internal/infrastructure/metrics"
	"github.com/iho/dualstream/internal/infrastructure/postgres"
	"github.com/iho/dualstream/internal/infrastructure/redis"
	"github.com/iho/dualstream/internal/ledger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "dualstream",
	})
	log.Logger = appLogger

	ctx := context.Background()

	// Select snapshot backend
	storeCfg := store.Config{
		StorageKey:    cfg.StorageKey,
		SchemaVersion: cfg.SchemaVersion,
	}

	var snapshots store.SnapshotStore
	switch cfg.StorageBackend {
	case "file":
		fileStore, err := store.NewFileStore(cfg.DataDir, storeCfg)
		if err != nil {
			appLogger.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("failed to open file store")
		}
		snapshots = fileStore
		appLogger.Info().Str("dir", cfg.DataDir).Msg("using file snapshot store")

	case "redis":
		redisClient, err := redis.NewClient(ctx, cfg.RedisURL, cfg.DatabaseTimeout)
		if err != nil {
			appLogger.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		snapshots = store.NewRedisStore(redisClient, storeCfg)
		appLogger.Info().Msg("using redis snapshot store")

	case "postgres":
		if err := postgres.Migrate(cfg.DatabaseURL, cfg.MigrationsPath, appLogger); err != nil {
			appLogger.Fatal().Err(err).Msg("failed to run migrations")
		}
		pool, err := postgres.NewPool(ctx, postgres.PoolConfig{
			DatabaseURL:    cfg.DatabaseURL,
			MaxConns:       cfg.DatabaseMaxConns,
			MinConns:       cfg.DatabaseMinConns,
			ConnectTimeout: cfg.DatabaseTimeout,
		})
		if err != nil {
			appLogger.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		defer pool.Close()
		snapshots = store.NewPostgresStore(pool, storeCfg)
		appLogger.Info().Msg("using postgres snapshot store")

	default:
		appLogger.Fatal().Str("backend", cfg.StorageBackend).Msg("unknown storage backend")
	}

	retrying := store.NewRetryingStore(snapshots, appLogger)

	// Build the ledger service
	m := metrics.New()
	engine := ledger.NewEngine(idgen.NewULIDGenerator(), ledger.SystemClock{})
	svc := ledger.NewService(engine, retrying, appLogger, m)

	if err := svc.Open(ctx); err != nil {
		appLogger.Fatal().Err(err).Msg("failed to open ledger document")
	}

	// Optional JWT auth
	var jwtManager *auth.JWTManager
	if cfg.AuthEnabled && cfg.JWTSecret != "" {
		jwtManager = auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
		appLogger.Info().Msg("authentication enabled")
	}

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		DocumentHandler:    handler.NewDocumentHandler(svc),
		TransactionHandler: handler.NewTransactionHandler(svc),
		TransferHandler:    handler.NewTransferHandler(svc),
		WalletHandler:      handler.NewWalletHandler(svc),
		PortfolioHandler:   handler.NewPortfolioHandler(svc),
		SnapshotHandler:    handler.NewSnapshotHandler(svc),
		HealthHandler:      handler.NewHealthHandler(retrying),
		JWTManager:         jwtManager,
		Logger:             appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
