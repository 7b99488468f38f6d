package media

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/publisher-backend/internal/domain"
)

// UpdateMedia applies a partial update. An input without fields returns the
// current row unchanged.
func (s *Service) UpdateMedia(ctx context.Context, input UpdateMediaInput) (*domain.Media, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.MediaUpdateParams{
		Title:    trimmed(input.Title),
		Username: trimmed(input.Username),
	}

	updated, err := s.media.Update(ctx, input.ID, params)
	if err != nil {
		return nil, fmt.Errorf("update media: %w", classify(err))
	}

	if !params.IsEmpty() {
		s.log.InfoContext(ctx, "media updated", slog.Int64("media_id", updated.ID))
	}

	return updated, nil
}
