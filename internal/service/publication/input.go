package publication

import (
	"time"

	"github.com/heartmarshall/publisher-backend/internal/domain"
)

// CreatePublicationInput holds the parameters for scheduling a post on a media.
type CreatePublicationInput struct {
	MediaID int64
	PostID  int64
	Date    time.Time
}

// Validate checks all fields and collects all errors.
func (i CreatePublicationInput) Validate() error {
	var errs []domain.FieldError

	if i.MediaID <= 0 {
		errs = append(errs, domain.FieldError{Field: "mediaId", Message: "must be a positive integer"})
	}
	if i.PostID <= 0 {
		errs = append(errs, domain.FieldError{Field: "postId", Message: "must be a positive integer"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListPublicationsInput holds the optional listing predicates.
type ListPublicationsInput struct {
	After     *time.Time
	Published *bool
}

// ListPublicationsResult is a listing together with the instant its status
// predicate was evaluated at.
type ListPublicationsResult struct {
	Publications []*domain.Publication
	AsOf         time.Time
}

// UpdatePublicationInput holds the parameters for a partial publication update.
type UpdatePublicationInput struct {
	ID      int64
	MediaID *int64
	PostID  *int64
	Date    *time.Time
}

// Validate checks all fields and collects all errors.
func (i UpdatePublicationInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must be a positive integer"})
	}
	if i.MediaID != nil && *i.MediaID <= 0 {
		errs = append(errs, domain.FieldError{Field: "mediaId", Message: "must be a positive integer"})
	}
	if i.PostID != nil && *i.PostID <= 0 {
		errs = append(errs, domain.FieldError{Field: "postId", Message: "must be a positive integer"})
	}
	if i.Date != nil && i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "must be a valid date"})
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
