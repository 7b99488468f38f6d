package rest

import "net/http"

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Health      *HealthHandler
	Media       *MediaHandler
	Post        *PostHandler
	Publication *PublicationHandler
}

// NewRouter registers every route on a new ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.Health.Root)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /medias", h.Media.Create)
	mux.HandleFunc("GET /medias", h.Media.List)
	mux.HandleFunc("GET /medias/{id}", h.Media.Get)
	mux.HandleFunc("PATCH /medias/{id}", h.Media.Update)
	mux.HandleFunc("DELETE /medias/{id}", h.Media.Delete)

	mux.HandleFunc("POST /posts", h.Post.Create)
	mux.HandleFunc("GET /posts", h.Post.List)
	mux.HandleFunc("GET /posts/{id}", h.Post.Get)
	mux.HandleFunc("PATCH /posts/{id}", h.Post.Update)
	mux.HandleFunc("DELETE /posts/{id}", h.Post.Delete)

	mux.HandleFunc("POST /publications", h.Publication.Create)
	mux.HandleFunc("GET /publications", h.Publication.List)
	mux.HandleFunc("GET /publications/{id}", h.Publication.Get)
	mux.HandleFunc("PATCH /publications/{id}", h.Publication.Update)
	mux.HandleFunc("DELETE /publications/{id}", h.Publication.Delete)

	return mux
}
