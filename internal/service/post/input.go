package post

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/publisher-backend/internal/domain"
)

var validate = validator.New()

// CreatePostInput holds the parameters for creating a post.
type CreatePostInput struct {
	Title string
	Text  string
	Image *string
}

// Validate checks all fields and collects all errors.
func (i CreatePostInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if i.Image != nil && !isImageURL(*i.Image) {
		errs = append(errs, domain.FieldError{Field: "image", Message: "must be an absolute http(s) URL"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdatePostInput holds the parameters for a partial post update.
type UpdatePostInput struct {
	ID    int64
	Title *string
	Text  *string
	Image *string // nil = don't change; ptr("") = clear
}

// Validate checks all fields and collects all errors.
func (i UpdatePostInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must be a positive integer"})
	}
	if i.Title != nil && strings.TrimSpace(*i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "must not be empty"})
	}
	if i.Text != nil && strings.TrimSpace(*i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "must not be empty"})
	}
	if i.Image != nil && strings.TrimSpace(*i.Image) != "" && !isImageURL(*i.Image) {
		errs = append(errs, domain.FieldError{Field: "image", Message: "must be an absolute http(s) URL"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// isImageURL reports whether s is an absolute URL with an http(s) scheme and a host.
func isImageURL(s string) bool {
	return validate.Var(strings.TrimSpace(s), "required,http_url") == nil
}

func validateID(id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "must be a positive integer")
	}
	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
