package service

import (
	"context"
	"fmt"
	"time"

	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/repository"
	"github.com/rs/zerolog"
)

// publisherService reconciles the published state of scheduled posts with
// wall-clock time. It owns no scheduler: it runs when a caller invokes it,
// and running it twice back to back is a no-op the second time because
// published posts drop out of the candidate query.
type publisherService struct {
	repo repository.BlogRepository
	log  zerolog.Logger
	now  func() time.Time
}

// newPublisherService creates a new PublisherService
func newPublisherService(repo repository.BlogRepository, log zerolog.Logger) *publisherService {
	return &publisherService{
		repo: repo,
		log:  log.With().Str("service", "publisher").Logger(),
		now:  time.Now,
	}
}

// PublishScheduled publishes every unpublished post whose scheduled date
// has elapsed. Posts transition independently: a persist failure on one is
// logged and skipped, the rest still publish. Only a failing candidate
// query fails the whole operation.
func (s *publisherService) PublishScheduled(ctx context.Context) (*models.PublishReport, error) {
	now := s.now()

	candidates, err := s.repo.GetScheduled(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query scheduled blogs: %w", err)
	}

	s.log.Debug().
		Int("candidates", len(candidates)).
		Time("now", now).
		Msg("Checking scheduled blogs")

	var due []*models.Blog
	for _, blog := range candidates {
		if blog.ScheduledDate == nil {
			continue
		}
		if !blog.ScheduledDate.After(now) {
			due = append(due, blog)
		}
	}

	if len(due) == 0 {
		return &models.PublishReport{Message: models.NothingToPublish}, nil
	}

	published := make([]models.PublishedBlog, 0, len(due))
	for _, blog := range due {
		date := models.FormatDisplayDate(s.now())
		if err := s.repo.MarkPublished(ctx, blog.Slug, date); err != nil {
			s.log.Error().
				Err(err).
				Str("slug", blog.Slug).
				Msg("Failed to publish scheduled blog")
			continue
		}

		s.log.Info().
			Str("slug", blog.Slug).
			Str("title", blog.Title).
			Time("scheduled", *blog.ScheduledDate).
			Msg("Published scheduled blog")

		published = append(published, models.PublishedBlog{
			Slug:        blog.Slug,
			Title:       blog.Title,
			PublishedAt: s.now(),
		})
	}

	return &models.PublishReport{
		Message:        fmt.Sprintf("Published %d scheduled blogs", len(published)),
		PublishedBlogs: published,
	}, nil
}
