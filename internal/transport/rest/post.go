package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/samber/lo"

	"github.com/heartmarshall/publisher-backend/internal/domain"
	postsvc "github.com/heartmarshall/publisher-backend/internal/service/post"
)

type postService interface {
	CreatePost(ctx context.Context, input postsvc.CreatePostInput) (*domain.Post, error)
	ListPosts(ctx context.Context) ([]*domain.Post, error)
	GetPost(ctx context.Context, id int64) (*domain.Post, error)
	UpdatePost(ctx context.Context, input postsvc.UpdatePostInput) (*domain.Post, error)
	DeletePost(ctx context.Context, id int64) (*domain.Post, error)
}

// PostHandler serves /posts endpoints.
type PostHandler struct {
	svc postService
	log *slog.Logger
}

// NewPostHandler creates a PostHandler.
func NewPostHandler(svc postService, logger *slog.Logger) *PostHandler {
	return &PostHandler{svc: svc, log: logger.With("handler", "post")}
}

type createPostRequest struct {
	Title string  `json:"title" validate:"required"`
	Text  string  `json:"text" validate:"required"`
	Image *string `json:"image" validate:"omitempty,http_url"`
}

// updatePostRequest: an empty image string clears the image.
type updatePostRequest struct {
	Title *string `json:"title"`
	Text  *string `json:"text"`
	Image *string `json:"image" validate:"omitempty,blank|http_url"`
}

type postResponse struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	Text  string  `json:"text"`
	Image *string `json:"image"`
}

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{ID: p.ID, Title: p.Title, Text: p.Text, Image: p.Image}
}

// Create handles POST /posts.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.CreatePost(r.Context(), postsvc.CreatePostInput{
		Title: req.Title,
		Text:  req.Text,
		Image: req.Image,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPostResponse(p))
}

// List handles GET /posts.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListPosts(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, lo.Map(list, func(p *domain.Post, _ int) postResponse {
		return toPostResponse(p)
	}))
}

// Get handles GET /posts/{id}.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.GetPost(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostResponse(p))
}

// Update handles PATCH /posts/{id}.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updatePostRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.UpdatePost(r.Context(), postsvc.UpdatePostInput{
		ID:    id,
		Title: req.Title,
		Text:  req.Text,
		Image: req.Image,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostResponse(p))
}

// Delete handles DELETE /posts/{id}.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.DeletePost(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostResponse(p))
}
