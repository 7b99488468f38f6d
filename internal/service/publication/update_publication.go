package publication

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/publisher-backend/internal/domain"
)

// UpdatePublication applies a partial update. A missing publication and a
// dangling media/post reference are both reported as domain.ErrNotFound.
func (s *Service) UpdatePublication(ctx context.Context, input UpdatePublicationInput) (*domain.Publication, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.PublicationUpdateParams{
		MediaID: input.MediaID,
		PostID:  input.PostID,
	}
	if input.Date != nil {
		d := input.Date.UTC()
		params.Date = &d
	}

	updated, err := s.publications.Update(ctx, input.ID, params)
	if err != nil {
		return nil, fmt.Errorf("update publication: %w", classify(err))
	}

	if !params.IsEmpty() {
		s.log.InfoContext(ctx, "publication updated",
			slog.Int64("publication_id", updated.ID),
			slog.Time("date", updated.Date),
		)
	}

	return updated, nil
}
