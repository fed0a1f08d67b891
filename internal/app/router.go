package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"riderperf/internal/handler"
	"riderperf/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	RiderHandler       *handler.RiderHandler
	ZoneHandler        *handler.ZoneHandler
	TripHandler        *handler.TripHandler
	SummaryHandler     *handler.SummaryHandler
	PerformanceHandler *handler.PerformanceHandler
	RedisClient        *redis.Client
	NewRelicApp        *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Rider routes.
		riders := v1.Group("/riders")
		{
			riders.POST("", deps.RiderHandler.Register)
			riders.GET("", deps.RiderHandler.GetAll)
			riders.GET("/:id", deps.RiderHandler.GetRider)
			riders.GET("/:id/performance", deps.PerformanceHandler.GetReport)
		}

		// Zone routes.
		zones := v1.Group("/zones")
		{
			zones.POST("", deps.ZoneHandler.CreateZone)
			zones.GET("", deps.ZoneHandler.GetAll)
			zones.GET("/distance", deps.ZoneHandler.EstimateDistance)
		}

		// Trip routes.
		trips := v1.Group("/trips")
		{
			trips.POST("", deps.TripHandler.CreateTrip)
			trips.GET("", deps.TripHandler.GetAll)
			trips.GET("/:id", deps.TripHandler.GetTrip)
		}

		// Daily summary routes.
		summaries := v1.Group("/daily-summaries")
		{
			summaries.POST("", deps.SummaryHandler.CreateSummary)
			summaries.GET("", deps.SummaryHandler.GetAll)
		}
	}

	return router
}
