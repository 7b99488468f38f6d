package post

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/publisher-backend/internal/domain"
)

// CreatePost persists a new post.
func (s *Service) CreatePost(ctx context.Context, input CreatePostInput) (*domain.Post, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.posts.Create(ctx, &domain.Post{
		Title: strings.TrimSpace(input.Title),
		Text:  strings.TrimSpace(input.Text),
		Image: trimmed(input.Image),
	})
	if err != nil {
		return nil, fmt.Errorf("create post: %w", classify(err))
	}

	s.log.InfoContext(ctx, "post created",
		slog.Int64("post_id", created.ID),
		slog.Bool("has_image", created.Image != nil),
	)

	return created, nil
}
