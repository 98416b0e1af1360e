package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog represents a blog post document
type Blog struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title         string             `bson:"title" json:"title"`
	Slug          string             `bson:"slug" json:"slug"`
	Date          string             `bson:"date" json:"date"`
	Excerpt       string             `bson:"excerpt" json:"excerpt"`
	Content       string             `bson:"content" json:"content"`
	Author        string             `bson:"author,omitempty" json:"author,omitempty"`
	ReadingTime   string             `bson:"readingTime,omitempty" json:"readingTime,omitempty"`
	Category      string             `bson:"category" json:"category"`
	Categories    []string           `bson:"categories" json:"categories"`
	Published     bool               `bson:"published" json:"published"`
	ScheduledDate *time.Time         `bson:"scheduledDate,omitempty" json:"scheduledDate,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// StringList accepts either a JSON array of strings or a single
// comma-separated string (the admin form submits both shapes).
type StringList []string

// UnmarshalJSON implements json.Unmarshaler
func (s *StringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "\"") {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*s = SplitCategories(raw)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = list
	return nil
}

// SplitCategories splits a comma-separated category string, dropping
// empty entries
func SplitCategories(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// CreateBlogRequest is the payload for POST /v1/blogs
type CreateBlogRequest struct {
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"`
	Author        string     `json:"author"`
	ReadingTime   string     `json:"readingTime"`
	Categories    StringList `json:"categories"`
	PublishNow    *bool      `json:"publishNow"`
	ScheduledDate *time.Time `json:"scheduledDate"`
}

// Immediate reports whether the post should be published at creation time.
// Omitting publishNow means publish immediately.
func (r *CreateBlogRequest) Immediate() bool {
	return r.PublishNow == nil || *r.PublishNow
}

// UpdateBlogRequest is the payload for PUT /v1/blogs/:slug.
// Slug, date and schedule are immutable and deliberately absent.
type UpdateBlogRequest struct {
	Title      string     `json:"title"`
	Excerpt    string     `json:"excerpt"`
	Content    string     `json:"content"`
	Author     string     `json:"author"`
	Categories StringList `json:"categories"`
}

// PublishedBlog identifies a post transitioned by the reconciler
type PublishedBlog struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	PublishedAt time.Time `json:"publishedAt"`
}

// PublishReport is the result of one reconciliation pass
type PublishReport struct {
	Message        string          `json:"message"`
	PublishedBlogs []PublishedBlog `json:"publishedBlogs,omitempty"`
}

// NothingToPublish is the report message when no scheduled post is due
const NothingToPublish = "No scheduled blogs to publish"

// FormatDisplayDate renders t in the display format used by the blog
// front-end: "2024.3.7 - 9:05 PM" (no zero padding on month, day or hour)
func FormatDisplayDate(t time.Time) string {
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	ampm := "AM"
	if t.Hour() >= 12 {
		ampm = "PM"
	}
	return fmt.Sprintf("%d.%d.%d - %d:%02d %s",
		t.Year(), int(t.Month()), t.Day(), hour, t.Minute(), ampm)
}
