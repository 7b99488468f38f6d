package media

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/publisher-backend/internal/domain"
)

// DeleteMedia removes a media account and returns its prior content.
// Its publications are removed with it.
func (s *Service) DeleteMedia(ctx context.Context, id int64) (*domain.Media, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	deleted, err := s.media.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete media: %w", classify(err))
	}

	s.log.InfoContext(ctx, "media deleted",
		slog.Int64("media_id", deleted.ID),
		slog.String("username", deleted.Username),
	)

	return deleted, nil
}
