// Package publication implements the publication scheduling use cases.
// A publication's status is never stored: it is derived from its date and
// the service clock, sampled once per operation.
package publication

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/publisher-backend/internal/domain"
)

type publicationRepo interface {
	Create(ctx context.Context, p *domain.Publication) (*domain.Publication, error)
	GetByID(ctx context.Context, id int64) (*domain.Publication, error)
	List(ctx context.Context, filter domain.PublicationFilter) ([]*domain.Publication, error)
	Update(ctx context.Context, id int64, params domain.PublicationUpdateParams) (*domain.Publication, error)
	Delete(ctx context.Context, id int64) (*domain.Publication, error)
}

// Service provides publication scheduling and query operations.
type Service struct {
	publications publicationRepo
	now          func() time.Time
	log          *slog.Logger
}

// NewService creates a new Publication service. A nil clock defaults to time.Now.
func NewService(log *slog.Logger, publications publicationRepo, clock func() time.Time) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{
		publications: publications,
		now:          clock,
		log:          log.With("service", "publication"),
	}
}

// Now returns the current instant of the service clock in UTC.
func (s *Service) Now() time.Time {
	return s.now().UTC()
}

func classify(err error) error {
	return domain.Classify(err, domain.EntityTypePublication)
}
