package media

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/publisher-backend/internal/domain"
)

// CreateMedia persists a new media account. A duplicate (title, username)
// pair is reported as domain.ErrAlreadyExists.
func (s *Service) CreateMedia(ctx context.Context, input CreateMediaInput) (*domain.Media, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.media.Create(ctx, &domain.Media{
		Title:    strings.TrimSpace(input.Title),
		Username: strings.TrimSpace(input.Username),
	})
	if err != nil {
		return nil, fmt.Errorf("create media: %w", classify(err))
	}

	s.log.InfoContext(ctx, "media created",
		slog.Int64("media_id", created.ID),
		slog.String("username", created.Username),
	)

	return created, nil
}
