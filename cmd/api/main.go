package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"

	cacheport "github.com/dlevina/prediction-billing/internal/domain/port/cache"
	coreport "github.com/dlevina/prediction-billing/internal/domain/port/core"
	balanceUseCase "github.com/dlevina/prediction-billing/internal/domain/usecase/balance"
	billingUseCase "github.com/dlevina/prediction-billing/internal/domain/usecase/billing"
	eventUseCase "github.com/dlevina/prediction-billing/internal/domain/usecase/event"
	userUseCase "github.com/dlevina/prediction-billing/internal/domain/usecase/user"

	"github.com/dlevina/prediction-billing/internal/infrastructure/adapter/api/handler"
	"github.com/dlevina/prediction-billing/internal/infrastructure/adapter/api/middleware"
	"github.com/dlevina/prediction-billing/internal/infrastructure/adapter/api/routes"
	"github.com/dlevina/prediction-billing/internal/infrastructure/adapter/auth"
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

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
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

	// Run migrations
	migrationMgr := migration.NewMigrationManager(conn.DB, appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories and the unit of work
	userRepo := repository.NewUserRepository(conn.DB, appLogger)
	balanceRepo := repository.NewBalanceRepository(conn.DB, tp, appLogger)
	txnRepo := repository.NewTransactionRepository(conn.DB, appLogger)
	predictionRepo := repository.NewPredictionRepository(conn.DB, appLogger)
	eventRepo := repository.NewEventRepository(conn.DB, appLogger)
	uow := database.NewUnitOfWork(conn.DB, appLogger, tp)

	// Balance cache: Redis when enabled, in-process fallback otherwise
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

	// Auth primitives
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, tp)

	// Initialize use cases
	balanceUC := balanceUseCase.NewBalanceUseCase(balanceRepo, txnRepo, uow, appCache, idGen, tp, appLogger)
	userUC := userUseCase.NewUserUseCase(userRepo, balanceUC, hasher, tokens, tp, appLogger)
	billingUC := billingUseCase.NewBillingUseCase(model, predictionRepo, balanceUC, uow, appCache, idGen, tp, appLogger)
	eventUC := eventUseCase.NewEventUseCase(eventRepo, tp, appLogger)

	// Seed demo accounts
	if err := userUC.CreateDefaultUsers(context.Background()); err != nil {
		appLogger.Error("Failed to create default users", map[string]any{
			"error": err.Error(),
		})
	}

	// The job publisher is optional: the API degrades to synchronous
	// predictions when the broker is unreachable
	var jobPublisher handler.JobPublisher
	if publisher, pubErr := queue.NewPublisher(cfg.Queue, appLogger); pubErr == nil {
		jobPublisher = publisher
		defer publisher.Close()
	} else {
		appLogger.Warn("Queue unavailable, asynchronous predictions disabled", map[string]any{
			"error": pubErr.Error(),
		})
	}

	// Initialize API handlers
	userHandler := handler.NewUserHandler(userUC, appLogger)
	balanceHandler := handler.NewBalanceHandler(balanceUC, appLogger)
	predictionHandler := handler.NewPredictionHandler(billingUC, model, jobPublisher, idGen, appLogger)
	eventHandler := handler.NewEventHandler(eventUC, appLogger)

	// Resolves the admin flag for authenticated callers
	var lookup middleware.UserLookup = func(c *gin.Context, userID uint64) (bool, error) {
		user, lookupErr := userUC.GetByID(c.Request.Context(), userID)
		if lookupErr != nil {
			return false, lookupErr
		}
		return user.IsAdmin, nil
	}

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, userHandler, balanceHandler, predictionHandler, eventHandler, tokens, lookup, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// newCache builds the Redis cache when enabled, falling back to the
// in-process cache so the service still starts without Redis
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

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missing []string

	if cfg.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missing = append(missing, "server.shutdownTimeout")
	}
	if cfg.Database.Host == "" {
		missing = append(missing, "database.host (or PB_DB_HOST)")
	}
	if cfg.Database.Username == "" {
		missing = append(missing, "database.username (or PB_DB_USERNAME)")
	}
	if cfg.Database.Database == "" {
		missing = append(missing, "database.database (or PB_DB_NAME)")
	}
	if cfg.Auth.JWTSecret == "" {
		missing = append(missing, "auth.jwtSecret (or PB_JWT_SECRET)")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
