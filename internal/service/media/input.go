package media

import (
	"strings"

	"github.com/heartmarshall/publisher-backend/internal/domain"
)

// CreateMediaInput holds the parameters for creating a media.
type CreateMediaInput struct {
	Title    string
	Username string
}

// Validate checks all fields and collects all errors.
func (i CreateMediaInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if strings.TrimSpace(i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateMediaInput holds the parameters for a partial media update.
// A nil field is left unchanged.
type UpdateMediaInput struct {
	ID       int64
	Title    *string
	Username *string
}

// Validate checks all fields and collects all errors.
func (i UpdateMediaInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must be a positive integer"})
	}
	if i.Title != nil && strings.TrimSpace(*i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "must not be empty"})
	}
	if i.Username != nil && strings.TrimSpace(*i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
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
