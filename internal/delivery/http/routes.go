package http

import (
	"github.com/gin-gonic/gin"

	"github.com/loki47z/msih-hackathon/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	if cfg.RateLimit.PerIP > 0 {
		router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))
	}

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/search", handler.Search)
		v1.POST("/search/image", handler.SearchByImage)
		v1.GET("/suggestions", handler.Suggestions)
		v1.GET("/products/:id/recommendations", handler.Recommendations)

		cache := v1.Group("/cache")
		{
			cache.GET("/stats", handler.CacheStats)
			cache.DELETE("", handler.ClearCache)
		}
	}

	return router
}
