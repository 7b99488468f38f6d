package post

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/publisher-backend/internal/domain"
)

// UpdatePost applies a partial update. An input without fields returns the
// current row unchanged.
func (s *Service) UpdatePost(ctx context.Context, input UpdatePostInput) (*domain.Post, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.PostUpdateParams{
		Title: trimmed(input.Title),
		Text:  trimmed(input.Text),
		Image: trimmed(input.Image),
	}

	updated, err := s.posts.Update(ctx, input.ID, params)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", classify(err))
	}

	if !params.IsEmpty() {
		s.log.InfoContext(ctx, "post updated", slog.Int64("post_id", updated.ID))
	}

	return updated, nil
}
