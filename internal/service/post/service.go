// Package post implements the post use cases.
package post

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/publisher-backend/internal/domain"
)

type postRepo interface {
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	Update(ctx context.Context, id int64, params domain.PostUpdateParams) (*domain.Post, error)
	Delete(ctx context.Context, id int64) (*domain.Post, error)
}

// Service provides post management operations.
type Service struct {
	posts postRepo
	log   *slog.Logger
}

// NewService creates a new Post service.
func NewService(log *slog.Logger, posts postRepo) *Service {
	return &Service{
		posts: posts,
		log:   log.With("service", "post"),
	}
}

func classify(err error) error {
	return domain.Classify(err, domain.EntityTypePost)
}
