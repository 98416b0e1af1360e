package api

import (
	"errors"
	"net/http"

	"github.com/blog-platform-api/internal/config"
	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/service"
	"github.com/blog-platform-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// BlogHandler handles blog authoring and reading endpoints
type BlogHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *BlogHandler {
	return &BlogHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "blog").Logger(),
	}
}

// CreateBlog handles POST /v1/blogs
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateCreateBlog(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": errs})
		return
	}

	blog, err := h.services.Blog.Create(ctx, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlugExists):
			c.JSON(http.StatusConflict, gin.H{"error": "Blog with slug \"" + req.Slug + "\" already exists"})
		case errors.Is(err, service.ErrScheduleRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.log.Error().Err(err).Str("slug", req.Slug).Msg("Failed to create blog")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create blog"})
		}
		return
	}

	c.JSON(http.StatusCreated, blog)
}

// ListBlogs handles GET /v1/blogs (admin listing: drafts included)
func (h *BlogHandler) ListBlogs(c *gin.Context) {
	blogs, err := h.services.Blog.ListAll(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to fetch blogs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blogs"})
		return
	}

	setNoCacheHeaders(c)
	c.JSON(http.StatusOK, blogs)
}

// ListPublishedBlogs handles GET /v1/blogs/public
func (h *BlogHandler) ListPublishedBlogs(c *gin.Context) {
	blogs, err := h.services.Blog.ListPublished(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to fetch published blogs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch published blogs"})
		return
	}

	setNoCacheHeaders(c)
	c.JSON(http.StatusOK, blogs)
}

// GetBlog handles GET /v1/blogs/:slug
func (h *BlogHandler) GetBlog(c *gin.Context) {
	slug := c.Param("slug")

	blog, err := h.services.Blog.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
			return
		}
		h.log.Error().Err(err).Str("slug", slug).Msg("Failed to fetch blog")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog"})
		return
	}

	c.JSON(http.StatusOK, blog)
}

// UpdateBlog handles PUT /v1/blogs/:slug
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	slug := c.Param("slug")

	var req models.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateUpdateBlog(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": errs})
		return
	}

	blog, err := h.services.Blog.Update(c.Request.Context(), slug, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
			return
		}
		h.log.Error().Err(err).Str("slug", slug).Msg("Failed to update blog")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update blog"})
		return
	}

	c.JSON(http.StatusOK, blog)
}

// DeleteBlog handles DELETE /v1/blogs/:slug
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	slug := c.Param("slug")

	err := h.services.Blog.Delete(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
			return
		}
		h.log.Error().Err(err).Str("slug", slug).Msg("Failed to delete blog")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete blog"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// BackfillPublished handles POST /v1/blogs/backfill-published, a one-shot
// maintenance endpoint for documents created before the published field
// existed
func (h *BlogHandler) BackfillPublished(c *gin.Context) {
	updated, err := h.services.Blog.BackfillPublished(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to backfill published field")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update existing blogs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Backfill completed",
		"updated": updated,
	})
}

// setNoCacheHeaders disables caching; listings back the admin panel and
// must reflect writes immediately
func setNoCacheHeaders(c *gin.Context) {
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
}
