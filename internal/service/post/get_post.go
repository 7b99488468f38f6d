package post

import (
	"context"
	"fmt"

	"github.com/heartmarshall/publisher-backend/internal/domain"
)

// GetPost returns a post by id.
func (s *Service) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", classify(err))
	}
	return p, nil
}

// ListPosts returns every post ordered by id.
func (s *Service) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	list, err := s.posts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", classify(err))
	}
	return list, nil
}
