package api

import (
	"context"
	"net/http"
	"time"

	"github.com/blog-platform-api/internal/config"
	"github.com/blog-platform-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HealthChecker reports whether the backing store is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, health HealthChecker, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	blogHandler := NewBlogHandler(services, cfg, log)
	publishHandler := NewPublishHandler(services, cfg, log)
	shortLinkHandler := NewShortLinkHandler(services, cfg, log)

	adminAuth := basicAuthMiddleware(cfg, log)
	autoPublish := autoPublishMiddleware(services, cfg, log)

	// Health check
	router.GET("/health", healthCheck(health))
	router.GET("/metrics", metricsHandler(services))

	// API v1
	v1 := router.Group("/v1")
	{
		// Blog endpoints
		blogs := v1.Group("/blogs")
		{
			blogs.GET("", blogHandler.ListBlogs)
			blogs.GET("/public", autoPublish, blogHandler.ListPublishedBlogs)
			blogs.GET("/publish-scheduled", publishHandler.PublishScheduled)
			blogs.GET("/:slug", autoPublish, blogHandler.GetBlog)

			blogs.POST("", adminAuth, blogHandler.CreateBlog)
			blogs.PUT("/:slug", adminAuth, blogHandler.UpdateBlog)
			blogs.DELETE("/:slug", adminAuth, blogHandler.DeleteBlog)
			blogs.POST("/backfill-published", adminAuth, blogHandler.BackfillPublished)
		}

		// Cron trigger for scheduled publishing
		v1.GET("/cron/publish-scheduled", publishHandler.CronPublishScheduled)

		// Short link resolution
		v1.GET("/shortlink/:token", shortLinkHandler.ResolveShortLink)
	}

	return router
}

// healthCheck reports liveness and store reachability
func healthCheck(health HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := health.HealthCheck(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"database":  "unreachable",
				"timestamp": time.Now().Format(time.RFC3339),
				"service":   "blog-platform-api",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"database":  "connected",
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "blog-platform-api",
		})
	}
}

// metricsHandler returns blog store metrics
func metricsHandler(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, _ := services.Blog.Count(c.Request.Context())

		c.JSON(http.StatusOK, gin.H{
			"database": gin.H{
				"blogs": count,
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}
