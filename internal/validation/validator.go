package validation

import (
	"regexp"

	"github.com/blog-platform-api/internal/models"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateCreateBlog validates a blog creation request
func ValidateCreateBlog(req *models.CreateBlogRequest) []ValidationError {
	var errors []ValidationError

	if req.Title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}

	if req.Slug == "" {
		errors = append(errors, ValidationError{Field: "slug", Message: "slug is required"})
	} else if !slugRegex.MatchString(req.Slug) {
		errors = append(errors, ValidationError{Field: "slug", Message: "slug must be kebab-case (lowercase letters, numbers, hyphens)"})
	}

	if req.Excerpt == "" {
		errors = append(errors, ValidationError{Field: "excerpt", Message: "excerpt is required"})
	}

	if req.Content == "" {
		errors = append(errors, ValidationError{Field: "content", Message: "content is required"})
	}

	if len(req.Categories) == 0 {
		errors = append(errors, ValidationError{Field: "categories", Message: "at least one category is required"})
	}

	if !req.Immediate() && req.ScheduledDate == nil {
		errors = append(errors, ValidationError{Field: "scheduledDate", Message: "scheduledDate is required when publishNow is false"})
	}

	return errors
}

// ValidateUpdateBlog validates a blog update request. Slug and schedule
// are immutable, so only the content fields are checked.
func ValidateUpdateBlog(req *models.UpdateBlogRequest) []ValidationError {
	var errors []ValidationError

	if req.Title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}

	if req.Excerpt == "" {
		errors = append(errors, ValidationError{Field: "excerpt", Message: "excerpt is required"})
	}

	if req.Content == "" {
		errors = append(errors, ValidationError{Field: "content", Message: "content is required"})
	}

	if len(req.Categories) == 0 {
		errors = append(errors, ValidationError{Field: "categories", Message: "at least one category is required"})
	}

	return errors
}
