package media

import (
	"context"
	"fmt"

	"github.com/heartmarshall/publisher-backend/internal/domain"
)

// ListMedia returns every media account ordered by id.
func (s *Service) ListMedia(ctx context.Context) ([]*domain.Media, error) {
	list, err := s.media.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", classify(err))
	}
	return list, nil
}
