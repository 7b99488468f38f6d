package publication

import (
	"context"
	"fmt"

	"github.com/heartmarshall/publisher-backend/internal/domain"
)

// GetPublication returns a publication by id.
func (s *Service) GetPublication(ctx context.Context, id int64) (*domain.Publication, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	p, err := s.publications.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get publication: %w", classify(err))
	}
	return p, nil
}
