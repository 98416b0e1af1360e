package repository

import (
	"context"
	"errors"

	"github.com/blog-platform-api/internal/database"
	"github.com/blog-platform-api/internal/models"
)

// ErrDuplicateSlug is returned by Create when the slug unique index rejects
// the insert
var ErrDuplicateSlug = errors.New("blog with this slug already exists")

// BlogUpdate carries the mutable fields of a blog post. Slug, date and
// schedule are immutable after creation and have no place here.
type BlogUpdate struct {
	Title      string
	Excerpt    string
	Content    string
	Author     string
	Category   string
	Categories []string
}

// BlogRepository defines the interface for blog data operations
type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	GetBySlug(ctx context.Context, slug string) (*models.Blog, error)
	GetAll(ctx context.Context) ([]*models.Blog, error)
	GetPublished(ctx context.Context) ([]*models.Blog, error)
	GetScheduled(ctx context.Context) ([]*models.Blog, error)
	Update(ctx context.Context, slug string, update *BlogUpdate) (*models.Blog, error)
	MarkPublished(ctx context.Context, slug string, date string) error
	Delete(ctx context.Context, slug string) (int64, error)
	BackfillPublished(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Blog BlogRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Blog: NewBlogRepo(db),
	}
}
