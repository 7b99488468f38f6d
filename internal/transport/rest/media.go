package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/samber/lo"

	"github.com/heartmarshall/publisher-backend/internal/domain"
	mediasvc "github.com/heartmarshall/publisher-backend/internal/service/media"
)

type mediaService interface {
	CreateMedia(ctx context.Context, input mediasvc.CreateMediaInput) (*domain.Media, error)
	ListMedia(ctx context.Context) ([]*domain.Media, error)
	GetMedia(ctx context.Context, id int64) (*domain.Media, error)
	UpdateMedia(ctx context.Context, input mediasvc.UpdateMediaInput) (*domain.Media, error)
	DeleteMedia(ctx context.Context, id int64) (*domain.Media, error)
}

// MediaHandler serves /medias endpoints.
type MediaHandler struct {
	svc mediaService
	log *slog.Logger
}

// NewMediaHandler creates a MediaHandler.
func NewMediaHandler(svc mediaService, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{svc: svc, log: logger.With("handler", "media")}
}

type createMediaRequest struct {
	Title    string `json:"title" validate:"required"`
	Username string `json:"username" validate:"required"`
}

type updateMediaRequest struct {
	Title    *string `json:"title"`
	Username *string `json:"username"`
}

type mediaResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Username string `json:"username"`
}

func toMediaResponse(m *domain.Media) mediaResponse {
	return mediaResponse{ID: m.ID, Title: m.Title, Username: m.Username}
}

// Create handles POST /medias.
func (h *MediaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMediaRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	m, err := h.svc.CreateMedia(r.Context(), mediasvc.CreateMediaInput{
		Title:    req.Title,
		Username: req.Username,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMediaResponse(m))
}

// List handles GET /medias.
func (h *MediaHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListMedia(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, lo.Map(list, func(m *domain.Media, _ int) mediaResponse {
		return toMediaResponse(m)
	}))
}

// Get handles GET /medias/{id}.
func (h *MediaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	m, err := h.svc.GetMedia(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toMediaResponse(m))
}

// Update handles PATCH /medias/{id}.
func (h *MediaHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateMediaRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	m, err := h.svc.UpdateMedia(r.Context(), mediasvc.UpdateMediaInput{
		ID:       id,
		Title:    req.Title,
		Username: req.Username,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toMediaResponse(m))
}

// Delete handles DELETE /medias/{id}. The response carries the removed row.
func (h *MediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	m, err := h.svc.DeleteMedia(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toMediaResponse(m))
}
