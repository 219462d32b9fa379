package api

import (
	"github.com/gin-gonic/gin"
	"github.com/scribeworks/blogsmith-api/internal/api/handlers"
	apimiddleware "github.com/scribeworks/blogsmith-api/internal/api/middleware"
	"github.com/scribeworks/blogsmith-api/internal/artifact"
	"github.com/scribeworks/blogsmith-api/internal/config"
	"github.com/scribeworks/blogsmith-api/internal/llm"
	"github.com/scribeworks/blogsmith-api/internal/metrics"
)

func SetupRouter(
	cfg *config.Config,
	provider llm.Provider,
	store artifact.Store,
	cw *metrics.Client,
	version string,
) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking())

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// Health check
	healthHandler := handlers.NewHealthHandler(cfg)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(cfg, version)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// API routes v1. Gateway identity headers are only trusted when an
	// upstream gateway is actually configured, otherwise they are spoofable.
	v1 := router.Group("/api/v1")
	if cfg.IsGatewayMode() {
		v1.Use(apimiddleware.OptionalGatewayAuth())
	}
	{
		blogHandler := handlers.NewBlogHandler(cfg, provider, store, cw)
		v1.POST("/blogs", blogHandler.Generate)
	}

	return router
}
