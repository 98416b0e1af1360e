package api

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strconv"
	"time"

	"github.com/blog-platform-api/internal/config"
	"github.com/blog-platform-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// publishCheckCookie marks a client that already triggered an
// opportunistic reconcile within the interval window
const publishCheckCookie = "last_publish_check"

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		requestID := uuid.New().String()
		c.Set("request_id", requestID)

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Api-Key")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// basicAuthMiddleware guards the authoring endpoints with the static
// admin credentials from config
func basicAuthMiddleware(cfg *config.Config, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()

		userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(cfg.Blog.AdminUsername)) == 1
		passMatch := subtle.ConstantTimeCompare([]byte(pass), []byte(cfg.Blog.AdminPassword)) == 1

		if !ok || !userMatch || !passMatch {
			log.Warn().
				Str("path", c.Request.URL.Path).
				Str("client_ip", c.ClientIP()).
				Msg("Rejected unauthenticated admin request")
			c.Header("WWW-Authenticate", `Basic realm="Admin Panel", charset="UTF-8"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Next()
	}
}

// autoPublishMiddleware runs the reconciler opportunistically off public
// page traffic, at most once per interval per client. The cookie keeps
// ordinary page views from hitting the scheduled-posts query on every
// request; the reconcile itself runs in the background so readers never
// wait on it.
func autoPublishMiddleware(services *service.Services, cfg *config.Config, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := c.Cookie(publishCheckCookie); err != nil {
			maxAge := int(cfg.Blog.AutoPublishInterval.Seconds())
			c.SetCookie(publishCheckCookie, strconv.FormatInt(time.Now().Unix(), 10),
				maxAge, "/", "", false, true)

			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				report, err := services.Publisher.PublishScheduled(ctx)
				if err != nil {
					log.Error().Err(err).Msg("Opportunistic publish check failed")
					return
				}
				if len(report.PublishedBlogs) > 0 {
					log.Info().
						Int("published", len(report.PublishedBlogs)).
						Msg("Opportunistic publish check transitioned blogs")
				}
			}()
		}

		c.Next()
	}
}
