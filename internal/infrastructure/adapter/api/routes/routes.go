package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/dlevina/prediction-billing/internal/domain/port/core"
	"github.com/dlevina/prediction-billing/internal/infrastructure/adapter/api/handler"
	"github.com/dlevina/prediction-billing/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	userHandler *handler.UserHandler,
	balanceHandler *handler.BalanceHandler,
	predictionHandler *handler.PredictionHandler,
	eventHandler *handler.EventHandler,
	tokens coreport.TokenManager,
	lookup middleware.UserLookup,
	logger coreport.Logger,
) {
	api := router.Group("/api")

	// Public routes
	api.POST("/users/register", userHandler.Register)
	api.POST("/users/login", userHandler.Login)

	// Authenticated routes
	authed := api.Group("")
	authed.Use(middleware.Auth(tokens, lookup, logger))
	{
		// Balance and ledger
		authed.GET("/balance/:userId", balanceHandler.GetBalance)
		authed.POST("/balance/deposit", balanceHandler.Deposit)
		authed.POST("/balance/reduction", balanceHandler.Withdraw)
		authed.GET("/balance/:userId/transactions", balanceHandler.GetTransactions)

		// Model and predictions
		authed.GET("/models", predictionHandler.ModelInfo)
		authed.POST("/models/predict", predictionHandler.Predict)
		authed.POST("/models/predict/async", predictionHandler.Enqueue)
		authed.GET("/models/predict/:jobId", predictionHandler.GetResult)
		authed.GET("/models/predictions", predictionHandler.ListResults)

		// Events
		authed.POST("/events", eventHandler.Create)
		authed.GET("/events", eventHandler.List)
		authed.GET("/events/:eventId", eventHandler.Get)
		authed.PUT("/events/:eventId", eventHandler.Update)
		authed.DELETE("/events/:eventId", eventHandler.Delete)

		// Admin routes
		admin := authed.Group("")
		admin.Use(middleware.AdminOnly())
		{
			admin.GET("/users", userHandler.List)
			admin.POST("/balance/adjustment", balanceHandler.AdminAdjust)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
