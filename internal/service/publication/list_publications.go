package publication

import (
	"context"
	"fmt"

	"github.com/heartmarshall/publisher-backend/internal/domain"
)

// ListPublications returns publications matching input ordered by date.
// The clock is sampled once so that the published and scheduled partitions
// of a single call never overlap.
func (s *Service) ListPublications(ctx context.Context, input ListPublicationsInput) (*ListPublicationsResult, error) {
	now := s.Now()

	filter := domain.PublicationFilter{
		After:     input.After,
		Published: input.Published,
		Now:       now,
	}

	list, err := s.publications.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list publications: %w", classify(err))
	}

	return &ListPublicationsResult{Publications: list, AsOf: now}, nil
}
