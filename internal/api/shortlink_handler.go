package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/blog-platform-api/internal/config"
	"github.com/blog-platform-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ShortLinkHandler handles short-link resolution
type ShortLinkHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewShortLinkHandler creates a new ShortLinkHandler
func NewShortLinkHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *ShortLinkHandler {
	return &ShortLinkHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "shortlink").Logger(),
	}
}

// ResolveShortLink handles GET /v1/shortlink/:token — 400 on a malformed
// token, 404 when no post matches, otherwise a redirect to the canonical
// article URL
func (h *ShortLinkHandler) ResolveShortLink(c *gin.Context) {
	token := c.Param("token")

	slug, err := h.services.ShortLink.Resolve(c.Request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidShortLink):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid short link format"})
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Short link not found"})
		default:
			h.log.Error().Err(err).Str("token", token).Msg("Failed to resolve short link")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve short link"})
		}
		return
	}

	target := fmt.Sprintf("%s/blog/%s", strings.TrimSuffix(h.cfg.Blog.SiteURL, "/"), slug)
	c.Redirect(http.StatusFound, target)
}
