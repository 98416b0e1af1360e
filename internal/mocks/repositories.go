package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/repository"
)

// MockBlogRepository is an in-memory implementation of BlogRepository.
// Blogs are kept in a slice so enumeration order is deterministic — the
// short-link resolver's first-match-wins contract depends on that.
// Methods take the mutex because the opportunistic publish trigger calls
// into the repository from a background goroutine.
type MockBlogRepository struct {
	mu    sync.Mutex
	Blogs []*models.Blog

	CreateError        error
	FindError          error
	MarkPublishedError error
	// FailPublishSlugs lists slugs whose MarkPublished call should fail
	FailPublishSlugs map[string]error

	MarkPublishedCalls int
}

// NewMockBlogRepository creates an empty mock repository
func NewMockBlogRepository() *MockBlogRepository {
	return &MockBlogRepository{
		FailPublishSlugs: make(map[string]error),
	}
}

// PublishAttempts returns how many times MarkPublished has been called
func (m *MockBlogRepository) PublishAttempts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.MarkPublishedCalls
}

func (m *MockBlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateError != nil {
		return m.CreateError
	}
	for _, b := range m.Blogs {
		if b.Slug == blog.Slug {
			return repository.ErrDuplicateSlug
		}
	}
	now := time.Now()
	blog.CreatedAt = now
	blog.UpdatedAt = now
	m.Blogs = append(m.Blogs, blog)
	return nil
}

func (m *MockBlogRepository) GetBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindError != nil {
		return nil, m.FindError
	}
	for _, b := range m.Blogs {
		if b.Slug == slug {
			clone := *b
			return &clone, nil
		}
	}
	return nil, nil
}

func (m *MockBlogRepository) GetAll(ctx context.Context) ([]*models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindError != nil {
		return nil, m.FindError
	}
	out := make([]*models.Blog, len(m.Blogs))
	copy(out, m.Blogs)
	return out, nil
}

func (m *MockBlogRepository) GetPublished(ctx context.Context) ([]*models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindError != nil {
		return nil, m.FindError
	}
	var out []*models.Blog
	for _, b := range m.Blogs {
		if b.Published {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *MockBlogRepository) GetScheduled(ctx context.Context) ([]*models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindError != nil {
		return nil, m.FindError
	}
	var out []*models.Blog
	for _, b := range m.Blogs {
		if !b.Published && b.ScheduledDate != nil {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *MockBlogRepository) Update(ctx context.Context, slug string, update *repository.BlogUpdate) (*models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.Blogs {
		if b.Slug == slug {
			b.Title = update.Title
			b.Excerpt = update.Excerpt
			b.Content = update.Content
			b.Author = update.Author
			b.Category = update.Category
			b.Categories = update.Categories
			b.UpdatedAt = time.Now()
			return b, nil
		}
	}
	return nil, nil
}

func (m *MockBlogRepository) MarkPublished(ctx context.Context, slug string, date string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MarkPublishedCalls++
	if m.MarkPublishedError != nil {
		return m.MarkPublishedError
	}
	if err, ok := m.FailPublishSlugs[slug]; ok {
		return err
	}
	for _, b := range m.Blogs {
		if b.Slug == slug {
			b.Published = true
			b.Date = date
			b.UpdatedAt = time.Now()
			return nil
		}
	}
	return nil
}

func (m *MockBlogRepository) Delete(ctx context.Context, slug string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, b := range m.Blogs {
		if b.Slug == slug {
			m.Blogs = append(m.Blogs[:i], m.Blogs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *MockBlogRepository) BackfillPublished(ctx context.Context) (int64, error) {
	// The in-memory model has no concept of a missing field; nothing to do
	return 0, nil
}

func (m *MockBlogRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Blogs), nil
}

// MockHealthChecker is a stub store health probe
type MockHealthChecker struct {
	Err error
}

func (m *MockHealthChecker) HealthCheck(ctx context.Context) error {
	return m.Err
}
