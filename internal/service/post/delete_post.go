package post

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/publisher-backend/internal/domain"
)

// DeletePost removes a post together with its publications and returns its
// prior content.
func (s *Service) DeletePost(ctx context.Context, id int64) (*domain.Post, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	deleted, err := s.posts.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete post: %w", classify(err))
	}

	s.log.InfoContext(ctx, "post deleted", slog.Int64("post_id", deleted.ID))

	return deleted, nil
}
