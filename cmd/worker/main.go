package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	cacheport "github.com/dlevina/prediction-billing/internal/domain/port/cache"
	coreport "github.com/dlevina/prediction-billing/internal/domain/port/core"
	balanceUseCase "github.com/dlevina/prediction-billing/internal/domain/usecase/balance"
	billingUseCase "github.com/dlevina/prediction-billing/internal/domain/usecase/billing"

	"github.com/dlevina/prediction-billing/internal/infrastructure/adapter/cache"
	"github.com/dlevina/prediction-billing/internal/infrastructure/adapter/classifier"
	"github.com/dlevina/prediction-billing/internal/infrastructure/adapter/database"
	"github.com/dlevina/prediction-billing/internal/infrastructure/adapter/database/migration"
	"github.com/dlevina/prediction-billing/internal/infrastructure/adapter/idgen"
	"github.com/dlevina/prediction-billing/internal/infrastructure/adapter/logger"
	"github.com/dlevina/prediction-billing/internal/infrastructure/adapter/queue"
	"github.com/dlevina/prediction-billing/internal/infrastructure/adapter/repository"
	timeProvider "github.com/dlevina/prediction-billing/internal/infrastructure/adapter/time"
	"github.com/dlevina/prediction-billing/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(coreport.ParseLogLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()
	idGen := idgen.NewUUIDGenerator()

	// Connect to the database
	conn, err := database.NewConnection(database.FromAppConfig(cfg), appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer conn.Close()

	// Migrations are idempotent, so the worker can start first
	migrationMgr := migration.NewMigrationManager(conn.DB, appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories and the unit of work
	balanceRepo := repository.NewBalanceRepository(conn.DB, tp, appLogger)
	txnRepo := repository.NewTransactionRepository(conn.DB, appLogger)
	predictionRepo := repository.NewPredictionRepository(conn.DB, appLogger)
	uow := database.NewUnitOfWork(conn.DB, appLogger, tp)

	appCache := newCache(cfg, appLogger)
	defer func() { _ = appCache.Close() }()

	// Train the classifier
	model, err := classifier.NewSoftmaxClassifier(classifier.Options{
		Cost:          cfg.Model.Cost,
		Seed:          cfg.Model.Seed,
		TrainFraction: cfg.Model.TrainFraction,
		Epochs:        cfg.Model.Epochs,
		LearningRate:  cfg.Model.LearningRate,
	}, appLogger)
	if err != nil {
		appLogger.Error("Failed to train classifier", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize use cases
	balanceUC := balanceUseCase.NewBalanceUseCase(balanceRepo, txnRepo, uow, appCache, idGen, tp, appLogger)
	billingUC := billingUseCase.NewBillingUseCase(model, predictionRepo, balanceUC, uow, appCache, idGen, tp, appLogger)

	// Consume jobs until interrupted
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := queue.NewConsumer(cfg.Queue, billingUC, appLogger)

	appLogger.Info("Starting prediction worker", map[string]any{
		"queue": cfg.Queue.QueueName,
		"env":   cfg.Environment,
	})

	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error("Worker stopped with error", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	appLogger.Info("Worker exited gracefully", nil)
}

// newCache builds the Redis cache when enabled, falling back to the
// in-process cache so the worker still starts without Redis
func newCache(cfg *config.Config, appLogger coreport.Logger) cacheport.Cache {
	if cfg.Cache.Enabled {
		redisCache, err := cache.NewRedisCache(cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB, appLogger)
		if err == nil {
			return redisCache
		}
		appLogger.Warn("Redis unavailable, using in-process cache", map[string]any{
			"addr":  cfg.Cache.Addr,
			"error": err.Error(),
		})
	}
	return cache.NewMemoryCache()
}
