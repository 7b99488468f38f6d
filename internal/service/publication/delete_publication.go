package publication

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/publisher-backend/internal/domain"
)

// DeletePublication removes a publication and returns its prior content.
func (s *Service) DeletePublication(ctx context.Context, id int64) (*domain.Publication, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	deleted, err := s.publications.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete publication: %w", classify(err))
	}

	s.log.InfoContext(ctx, "publication deleted", slog.Int64("publication_id", deleted.ID))

	return deleted, nil
}
