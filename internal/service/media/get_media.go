package media

import (
	"context"
	"fmt"

	"github.com/heartmarshall/publisher-backend/internal/domain"
)

// GetMedia returns a media by id.
func (s *Service) GetMedia(ctx context.Context, id int64) (*domain.Media, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	m, err := s.media.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get media: %w", classify(err))
	}
	return m, nil
}
