package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/blog-platform-api/internal/config"
	"github.com/blog-platform-api/internal/mocks"
	"github.com/blog-platform-api/internal/models"
	"github.com/rs/zerolog"
)

func testConfig() *config.Config {
	return &config.Config{
		Blog: config.BlogConfig{
			SiteURL:         "https://example.com",
			DefaultAuthor:   "Emin Mammadov",
			DefaultCategory: "General",
		},
	}
}

func newTestBlogService(repo *mocks.MockBlogRepository) *blogService {
	return newBlogService(repo, testConfig(), zerolog.Nop())
}

func boolPtr(b bool) *bool { return &b }

func TestCreateBlog_Defaults(t *testing.T) {
	repo := mocks.NewMockBlogRepository()
	svc := newTestBlogService(repo)
	created := time.Date(2024, 3, 7, 21, 5, 0, 0, time.UTC)
	svc.now = func() time.Time { return created }

	blog, err := svc.Create(context.Background(), &models.CreateBlogRequest{
		Title:   "My First Post",
		Slug:    "my-first-post",
		Excerpt: "An excerpt",
		Content: strings.Repeat("x", 2500),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if !blog.Published {
		t.Error("Blog without publishNow must be published immediately")
	}
	if blog.ScheduledDate != nil {
		t.Error("Immediately published blog must not carry a scheduled date")
	}
	if blog.Author != "Emin Mammadov" {
		t.Errorf("Expected default author, got %q", blog.Author)
	}
	if len(blog.Categories) != 1 || blog.Categories[0] != "General" {
		t.Errorf("Expected fallback categories [General], got %v", blog.Categories)
	}
	if blog.Category != "General" {
		t.Errorf("Category must be the first of categories, got %q", blog.Category)
	}
	if blog.ReadingTime != "3 min read" {
		t.Errorf("Expected '3 min read' for 2500 chars, got %q", blog.ReadingTime)
	}
	if blog.Date != "2024.3.7 - 9:05 PM" {
		t.Errorf("Unexpected display date %q", blog.Date)
	}
}

func TestCreateBlog_CategoryOrder(t *testing.T) {
	repo := mocks.NewMockBlogRepository()
	svc := newTestBlogService(repo)

	blog, err := svc.Create(context.Background(), &models.CreateBlogRequest{
		Title:      "Post",
		Slug:       "go-blog",
		Excerpt:    "e",
		Content:    "c",
		Categories: models.StringList{"Go", "Backend", "Web"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if blog.Category != "Go" {
		t.Errorf("Main category must be the first supplied, got %q", blog.Category)
	}
	if len(blog.Categories) != 3 {
		t.Errorf("All categories must be kept, got %v", blog.Categories)
	}
}

func TestCreateBlog_Scheduled(t *testing.T) {
	repo := mocks.NewMockBlogRepository()
	svc := newTestBlogService(repo)
	scheduled := time.Now().Add(time.Hour)

	blog, err := svc.Create(context.Background(), &models.CreateBlogRequest{
		Title:         "Scheduled Post",
		Slug:          "scheduled-post",
		Excerpt:       "e",
		Content:       "c",
		PublishNow:    boolPtr(false),
		ScheduledDate: &scheduled,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if blog.Published {
		t.Error("Scheduled blog must not be published at creation")
	}
	if blog.ScheduledDate == nil || !blog.ScheduledDate.Equal(scheduled) {
		t.Errorf("Scheduled date not preserved: %v", blog.ScheduledDate)
	}
}

func TestCreateBlog_ScheduleRequired(t *testing.T) {
	repo := mocks.NewMockBlogRepository()
	svc := newTestBlogService(repo)

	_, err := svc.Create(context.Background(), &models.CreateBlogRequest{
		Title:      "Broken",
		Slug:       "broken",
		Excerpt:    "e",
		Content:    "c",
		PublishNow: boolPtr(false),
	})
	if !errors.Is(err, ErrScheduleRequired) {
		t.Errorf("Expected ErrScheduleRequired, got %v", err)
	}
	if len(repo.Blogs) != 0 {
		t.Error("Nothing must be persisted on a rejected create")
	}
}

func TestCreateBlog_DuplicateSlug(t *testing.T) {
	repo := mocks.NewMockBlogRepository()
	svc := newTestBlogService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.CreateBlogRequest{
		Title: "Original", Slug: "same-slug", Excerpt: "e", Content: "original content",
	})
	if err != nil {
		t.Fatalf("First create failed: %v", err)
	}

	_, err = svc.Create(ctx, &models.CreateBlogRequest{
		Title: "Impostor", Slug: "same-slug", Excerpt: "e", Content: "impostor content",
	})
	if !errors.Is(err, ErrSlugExists) {
		t.Errorf("Expected ErrSlugExists, got %v", err)
	}

	// The first article's content must survive untouched
	blog, _ := repo.GetBySlug(ctx, "same-slug")
	if blog.Title != "Original" || blog.Content != "original content" {
		t.Errorf("Original blog was clobbered: %q / %q", blog.Title, blog.Content)
	}
	if len(repo.Blogs) != 1 {
		t.Errorf("Store must still contain exactly one blog, got %d", len(repo.Blogs))
	}
}

func TestCreateThenReconcile_PastSchedule(t *testing.T) {
	repo := mocks.NewMockBlogRepository()
	blogSvc := newTestBlogService(repo)
	ctx := context.Background()

	creation := time.Date(2024, 3, 7, 8, 0, 0, 0, time.UTC)
	blogSvc.now = func() time.Time { return creation }

	scheduled := creation.Add(-time.Minute)
	created, err := blogSvc.Create(ctx, &models.CreateBlogRequest{
		Title: "A", Slug: "post-a", Excerpt: "e", Content: "c",
		PublishNow: boolPtr(false), ScheduledDate: &scheduled,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	dateAtCreation := created.Date

	pub := newTestPublisher(repo, creation.Add(time.Hour))
	report, err := pub.PublishScheduled(ctx)
	if err != nil {
		t.Fatalf("PublishScheduled failed: %v", err)
	}
	if len(report.PublishedBlogs) != 1 {
		t.Fatalf("Expected blog A to be published, got %d", len(report.PublishedBlogs))
	}

	blog, _ := repo.GetBySlug(ctx, "post-a")
	if !blog.Published {
		t.Error("A.published must be true after reconcile")
	}
	if blog.Date == dateAtCreation {
		t.Error("A.date must change from its creation-time value")
	}
}

func TestCreateThenReconcile_FutureSchedule(t *testing.T) {
	repo := mocks.NewMockBlogRepository()
	blogSvc := newTestBlogService(repo)
	ctx := context.Background()

	now := time.Now()
	scheduled := now.Add(time.Hour)
	if _, err := blogSvc.Create(ctx, &models.CreateBlogRequest{
		Title: "B", Slug: "post-b", Excerpt: "e", Content: "c",
		PublishNow: boolPtr(false), ScheduledDate: &scheduled,
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	pub := newTestPublisher(repo, now)
	report, err := pub.PublishScheduled(ctx)
	if err != nil {
		t.Fatalf("PublishScheduled failed: %v", err)
	}

	for _, p := range report.PublishedBlogs {
		if p.Slug == "post-b" {
			t.Error("B must be absent from publishedBlogs")
		}
	}
	blog, _ := repo.GetBySlug(ctx, "post-b")
	if blog.Published {
		t.Error("B.published must remain false")
	}
}

func TestUpdateBlog_PreservesImmutableFields(t *testing.T) {
	repo := mocks.NewMockBlogRepository()
	svc := newTestBlogService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateBlogRequest{
		Title: "Before", Slug: "stable-slug", Excerpt: "e", Content: "c",
		Categories: models.StringList{"Tech"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	originalDate := created.Date

	updated, err := svc.Update(ctx, "stable-slug", &models.UpdateBlogRequest{
		Title: "After", Excerpt: "e2", Content: "c2",
		Categories: models.StringList{"Go", "Tech"},
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Title != "After" || updated.Content != "c2" {
		t.Errorf("Content fields not updated: %q / %q", updated.Title, updated.Content)
	}
	if updated.Slug != "stable-slug" {
		t.Errorf("Slug must never change, got %q", updated.Slug)
	}
	if updated.Date != originalDate {
		t.Errorf("Date must keep its creation value, got %q", updated.Date)
	}
	if updated.Category != "Go" {
		t.Errorf("Main category must follow the new first category, got %q", updated.Category)
	}
}

func TestUpdateBlog_NotFound(t *testing.T) {
	repo := mocks.NewMockBlogRepository()
	svc := newTestBlogService(repo)

	_, err := svc.Update(context.Background(), "missing", &models.UpdateBlogRequest{
		Title: "T", Excerpt: "e", Content: "c", Categories: models.StringList{"X"},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDeleteBlog(t *testing.T) {
	repo := mocks.NewMockBlogRepository()
	svc := newTestBlogService(repo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, &models.CreateBlogRequest{
		Title: "T", Slug: "doomed", Excerpt: "e", Content: "c",
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(ctx, "doomed"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := svc.Delete(ctx, "doomed"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Second delete must report ErrNotFound, got %v", err)
	}
}

func TestListPublished_ExcludesDrafts(t *testing.T) {
	repo := mocks.NewMockBlogRepository()
	svc := newTestBlogService(repo)
	ctx := context.Background()

	scheduled := time.Now().Add(time.Hour)
	svc.Create(ctx, &models.CreateBlogRequest{Title: "Live", Slug: "live", Excerpt: "e", Content: "c"})
	svc.Create(ctx, &models.CreateBlogRequest{
		Title: "Pending", Slug: "pending", Excerpt: "e", Content: "c",
		PublishNow: boolPtr(false), ScheduledDate: &scheduled,
	})

	published, err := svc.ListPublished(ctx)
	if err != nil {
		t.Fatalf("ListPublished failed: %v", err)
	}
	if len(published) != 1 || published[0].Slug != "live" {
		t.Errorf("Expected only 'live' in public listing, got %d entries", len(published))
	}

	all, _ := svc.ListAll(ctx)
	if len(all) != 2 {
		t.Errorf("Admin listing must include drafts, got %d entries", len(all))
	}
}
