package publication

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/publisher-backend/internal/domain"
)

// CreatePublication schedules a post on a media at the given date.
// A missing media or post is reported as a single domain.ErrNotFound: the
// storage does not say which reference failed.
func (s *Service) CreatePublication(ctx context.Context, input CreatePublicationInput) (*domain.Publication, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.publications.Create(ctx, &domain.Publication{
		MediaID: input.MediaID,
		PostID:  input.PostID,
		Date:    input.Date.UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create publication: %w", classify(err))
	}

	s.log.InfoContext(ctx, "publication created",
		slog.Int64("publication_id", created.ID),
		slog.Int64("media_id", created.MediaID),
		slog.Int64("post_id", created.PostID),
		slog.Time("date", created.Date),
	)

	return created, nil
}
