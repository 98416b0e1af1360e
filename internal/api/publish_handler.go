package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/blog-platform-api/internal/config"
	"github.com/blog-platform-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PublishHandler handles the scheduled-publish trigger endpoints
type PublishHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewPublishHandler creates a new PublishHandler
func NewPublishHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *PublishHandler {
	return &PublishHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "publish").Logger(),
	}
}

// PublishScheduled handles GET /v1/blogs/publish-scheduled. Public and
// safe to call arbitrarily often: reconciliation is idempotent, and the
// worst a hostile caller achieves is publishing posts already due.
func (h *PublishHandler) PublishScheduled(c *gin.Context) {
	report, err := h.services.Publisher.PublishScheduled(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to publish scheduled blogs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish scheduled blogs"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// CronPublishScheduled handles GET /v1/cron/publish-scheduled, intended
// for an external periodic trigger. The shared secret is checked before
// the store is touched; the response body matches the public endpoint.
func (h *PublishHandler) CronPublishScheduled(c *gin.Context) {
	apiKey := c.GetHeader("x-api-key")
	expected := h.cfg.Blog.CronAPIKey

	if apiKey == "" || expected == "" ||
		subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	report, err := h.services.Publisher.PublishScheduled(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Cron publish run failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run cron job"})
		return
	}

	c.JSON(http.StatusOK, report)
}
