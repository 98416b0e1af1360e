package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blog-platform-api/internal/config"
	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/repository"
	"github.com/rs/zerolog"
)

// blogService is the concrete implementation of BlogService
type blogService struct {
	repo repository.BlogRepository
	cfg  *config.BlogConfig
	log  zerolog.Logger
	now  func() time.Time
}

// newBlogService creates a new BlogService
func newBlogService(repo repository.BlogRepository, cfg *config.Config, log zerolog.Logger) *blogService {
	return &blogService{
		repo: repo,
		cfg:  &cfg.Blog,
		log:  log.With().Str("service", "blog").Logger(),
		now:  time.Now,
	}
}

// Create stores a new blog post. The display date is always stamped with
// the creation moment, never taken from the request. A deferred post
// (publishNow=false) must carry a scheduled date; the reconciler is the
// only thing that will ever publish it.
func (s *blogService) Create(ctx context.Context, req *models.CreateBlogRequest) (*models.Blog, error) {
	immediate := req.Immediate()
	if !immediate && req.ScheduledDate == nil {
		return nil, ErrScheduleRequired
	}

	categories := []string(req.Categories)
	if len(categories) == 0 {
		categories = []string{s.cfg.DefaultCategory}
	}

	author := req.Author
	if author == "" {
		author = s.cfg.DefaultAuthor
	}

	readingTime := req.ReadingTime
	if readingTime == "" {
		readingTime = estimateReadingTime(req.Content)
	}

	blog := &models.Blog{
		Title:       req.Title,
		Slug:        req.Slug,
		Date:        models.FormatDisplayDate(s.now()),
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		Author:      author,
		ReadingTime: readingTime,
		Category:    categories[0],
		Categories:  categories,
		Published:   immediate,
	}
	if !immediate {
		blog.ScheduledDate = req.ScheduledDate
	}

	if err := s.repo.Create(ctx, blog); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, ErrSlugExists
		}
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}

	s.log.Info().
		Str("slug", blog.Slug).
		Bool("published", blog.Published).
		Msg("Blog created")

	return blog, nil
}

// GetBySlug returns a single post or ErrNotFound
func (s *blogService) GetBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	blog, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blog: %w", err)
	}
	if blog == nil {
		return nil, ErrNotFound
	}
	return blog, nil
}

// ListAll returns every post, for the admin listing
func (s *blogService) ListAll(ctx context.Context) ([]*models.Blog, error) {
	return s.repo.GetAll(ctx)
}

// ListPublished returns the public post set
func (s *blogService) ListPublished(ctx context.Context) ([]*models.Blog, error) {
	return s.repo.GetPublished(ctx)
}

// Update rewrites the content fields of a post. Slug, date and schedule
// keep their creation-time values.
func (s *blogService) Update(ctx context.Context, slug string, req *models.UpdateBlogRequest) (*models.Blog, error) {
	categories := []string(req.Categories)
	if len(categories) == 0 {
		categories = []string{s.cfg.DefaultCategory}
	}

	author := req.Author
	if author == "" {
		author = s.cfg.DefaultAuthor
	}

	update := &repository.BlogUpdate{
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		Author:     author,
		Category:   categories[0],
		Categories: categories,
	}

	blog, err := s.repo.Update(ctx, slug, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update blog: %w", err)
	}
	if blog == nil {
		return nil, ErrNotFound
	}

	s.log.Info().Str("slug", slug).Msg("Blog updated")
	return blog, nil
}

// Delete hard-deletes a post by slug
func (s *blogService) Delete(ctx context.Context, slug string) error {
	deleted, err := s.repo.Delete(ctx, slug)
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	if deleted == 0 {
		return ErrNotFound
	}

	s.log.Info().Str("slug", slug).Msg("Blog deleted")
	return nil
}

// BackfillPublished marks legacy posts without a published field as
// published, returning the number touched
func (s *blogService) BackfillPublished(ctx context.Context) (int64, error) {
	updated, err := s.repo.BackfillPublished(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to backfill published field: %w", err)
	}
	if updated > 0 {
		s.log.Info().Int64("updated", updated).Msg("Backfilled published field on legacy blogs")
	}
	return updated, nil
}

// Count returns the total number of stored posts
func (s *blogService) Count(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count blogs: %w", err)
	}
	return count, nil
}

// estimateReadingTime approximates reading time from content length
func estimateReadingTime(content string) string {
	minutes := (len(content) + 999) / 1000
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}
