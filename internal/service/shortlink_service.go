package service

import (
	"context"
	"fmt"

	"github.com/blog-platform-api/internal/config"
	"github.com/blog-platform-api/internal/repository"
	"github.com/blog-platform-api/pkg/shortlink"
	"github.com/rs/zerolog"
)

// shortLinkService resolves short-link tokens back to slugs by
// recomputation over the full post set. There is no token index on
// purpose: an index would freeze collision winners at write time, while
// the scan keeps "first in store order wins" — the behavior links in the
// wild already depend on. Fine while the post count stays small.
type shortLinkService struct {
	repo repository.BlogRepository
	cfg  *config.BlogConfig
	log  zerolog.Logger
}

// newShortLinkService creates a new ShortLinkService
func newShortLinkService(repo repository.BlogRepository, cfg *config.Config, log zerolog.Logger) *shortLinkService {
	return &shortLinkService{
		repo: repo,
		cfg:  &cfg.Blog,
		log:  log.With().Str("service", "shortlink").Logger(),
	}
}

// Resolve maps a token back to the slug of the first post whose
// recomputed hash matches
func (s *shortLinkService) Resolve(ctx context.Context, token string) (string, error) {
	if !shortlink.Valid(token) {
		return "", ErrInvalidShortLink
	}

	blogs, err := s.repo.GetAll(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch blogs for short link resolution: %w", err)
	}

	for _, blog := range blogs {
		if shortlink.Hash(blog.Slug) == token {
			return blog.Slug, nil
		}
	}

	s.log.Debug().Str("token", token).Msg("Short link did not match any blog")
	return "", ErrNotFound
}

// ShortURL returns the public short URL for a slug
func (s *shortLinkService) ShortURL(slug string) string {
	return shortlink.ShortURL(s.cfg.SiteURL, slug)
}
