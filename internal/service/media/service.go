// Package media implements the media account use cases.
package media

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/publisher-backend/internal/domain"
)

type mediaRepo interface {
	Create(ctx context.Context, m *domain.Media) (*domain.Media, error)
	GetByID(ctx context.Context, id int64) (*domain.Media, error)
	List(ctx context.Context) ([]*domain.Media, error)
	Update(ctx context.Context, id int64, params domain.MediaUpdateParams) (*domain.Media, error)
	Delete(ctx context.Context, id int64) (*domain.Media, error)
}

// Service provides media management operations.
type Service struct {
	media mediaRepo
	log   *slog.Logger
}

// NewService creates a new Media service.
func NewService(log *slog.Logger, media mediaRepo) *Service {
	return &Service{
		media: media,
		log:   log.With("service", "media"),
	}
}

// classify maps a repository failure onto the media error vocabulary.
func classify(err error) error {
	return domain.Classify(err, domain.EntityTypeMedia)
}
