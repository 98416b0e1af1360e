package service

import (
	"context"
	"errors"

	"github.com/blog-platform-api/internal/config"
	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/repository"
	"github.com/rs/zerolog"
)

// Service-level errors mapped to HTTP statuses by the handlers
var (
	// ErrNotFound means no blog matches the given slug or token
	ErrNotFound = errors.New("blog not found")

	// ErrSlugExists means a create collided with an existing slug
	ErrSlugExists = errors.New("blog with this slug already exists")

	// ErrInvalidShortLink means a token fails the marker prefix check
	ErrInvalidShortLink = errors.New("invalid short link format")

	// ErrScheduleRequired means a deferred create carried no scheduled date
	ErrScheduleRequired = errors.New("scheduledDate is required when publishNow is false")
)

// BlogService defines the interface for authoring and reading operations
type BlogService interface {
	Create(ctx context.Context, req *models.CreateBlogRequest) (*models.Blog, error)
	GetBySlug(ctx context.Context, slug string) (*models.Blog, error)
	ListAll(ctx context.Context) ([]*models.Blog, error)
	ListPublished(ctx context.Context) ([]*models.Blog, error)
	Update(ctx context.Context, slug string, req *models.UpdateBlogRequest) (*models.Blog, error)
	Delete(ctx context.Context, slug string) error
	BackfillPublished(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int, error)
}

// PublisherService defines the interface for scheduled-publish reconciliation
type PublisherService interface {
	PublishScheduled(ctx context.Context) (*models.PublishReport, error)
}

// ShortLinkService defines the interface for short-link operations
type ShortLinkService interface {
	Resolve(ctx context.Context, token string) (string, error)
	ShortURL(slug string) string
}

// Services holds all service interfaces
type Services struct {
	Blog      BlogService
	Publisher PublisherService
	ShortLink ShortLinkService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Blog:      newBlogService(repos.Blog, cfg, log),
		Publisher: newPublisherService(repos.Blog, log),
		ShortLink: newShortLinkService(repos.Blog, cfg, log),
	}
}
