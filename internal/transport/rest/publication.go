package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/samber/lo"

	"github.com/heartmarshall/publisher-backend/internal/domain"
	pubsvc "github.com/heartmarshall/publisher-backend/internal/service/publication"
)

type publicationService interface {
	CreatePublication(ctx context.Context, input pubsvc.CreatePublicationInput) (*domain.Publication, error)
	ListPublications(ctx context.Context, input pubsvc.ListPublicationsInput) (*pubsvc.ListPublicationsResult, error)
	GetPublication(ctx context.Context, id int64) (*domain.Publication, error)
	UpdatePublication(ctx context.Context, input pubsvc.UpdatePublicationInput) (*domain.Publication, error)
	DeletePublication(ctx context.Context, id int64) (*domain.Publication, error)
	Now() time.Time
}

// PublicationHandler serves /publications endpoints.
type PublicationHandler struct {
	svc publicationService
	log *slog.Logger
}

// NewPublicationHandler creates a PublicationHandler.
func NewPublicationHandler(svc publicationService, logger *slog.Logger) *PublicationHandler {
	return &PublicationHandler{svc: svc, log: logger.With("handler", "publication")}
}

type createPublicationRequest struct {
	MediaID int64  `json:"mediaId" validate:"required,gt=0"`
	PostID  int64  `json:"postId" validate:"required,gt=0"`
	Date    string `json:"date" validate:"required,iso8601"`
}

type updatePublicationRequest struct {
	MediaID *int64  `json:"mediaId" validate:"omitempty,gt=0"`
	PostID  *int64  `json:"postId" validate:"omitempty,gt=0"`
	Date    *string `json:"date" validate:"omitempty,iso8601"`
}

type publicationResponse struct {
	ID      int64     `json:"id"`
	MediaID int64     `json:"mediaId"`
	PostID  int64     `json:"postId"`
	Date    time.Time `json:"date"`
	Status  string    `json:"status"`
}

func toPublicationResponse(p *domain.Publication, now time.Time) publicationResponse {
	return publicationResponse{
		ID:      p.ID,
		MediaID: p.MediaID,
		PostID:  p.PostID,
		Date:    p.Date.UTC(),
		Status:  p.Status(now).String(),
	}
}

// Create handles POST /publications.
func (h *PublicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPublicationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("date", "must be an ISO-8601 date"))
		return
	}

	p, err := h.svc.CreatePublication(r.Context(), pubsvc.CreatePublicationInput{
		MediaID: req.MediaID,
		PostID:  req.PostID,
		Date:    date,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPublicationResponse(p, h.svc.Now()))
}

// List handles GET /publications?published=true|false&after=<date>.
// Statuses are rendered against the same instant the filter used.
func (h *PublicationHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseListQuery(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.ListPublications(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, lo.Map(res.Publications, func(p *domain.Publication, _ int) publicationResponse {
		return toPublicationResponse(p, res.AsOf)
	}))
}

// Get handles GET /publications/{id}.
func (h *PublicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.GetPublication(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPublicationResponse(p, h.svc.Now()))
}

// Update handles PATCH /publications/{id}.
func (h *PublicationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updatePublicationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input := pubsvc.UpdatePublicationInput{
		ID:      id,
		MediaID: req.MediaID,
		PostID:  req.PostID,
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("date", "must be an ISO-8601 date"))
			return
		}
		input.Date = &date
	}

	p, err := h.svc.UpdatePublication(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPublicationResponse(p, h.svc.Now()))
}

// Delete handles DELETE /publications/{id}.
func (h *PublicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.DeletePublication(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPublicationResponse(p, h.svc.Now()))
}

// parseListQuery reads the optional published and after predicates.
// Unparsable values are rejected rather than ignored.
func parseListQuery(r *http.Request) (pubsvc.ListPublicationsInput, error) {
	var (
		input pubsvc.ListPublicationsInput
		errs  []domain.FieldError
	)

	q := r.URL.Query()

	if q.Has("published") {
		switch q.Get("published") {
		case "true":
			input.Published = lo.ToPtr(true)
		case "false":
			input.Published = lo.ToPtr(false)
		default:
			errs = append(errs, domain.FieldError{Field: "published", Message: "must be true or false"})
		}
	}

	if q.Has("after") {
		after, err := parseDate(q.Get("after"))
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "after", Message: "must be an ISO-8601 date"})
		} else {
			input.After = &after
		}
	}

	if len(errs) > 0 {
		return input, domain.NewValidationErrors(errs)
	}
	return input, nil
}
