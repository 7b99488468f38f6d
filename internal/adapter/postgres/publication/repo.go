// Package publication implements the Publication repository using PostgreSQL.
// Foreign key failures on media_id/post_id are reported as tagged storage
// errors; the caller decides how to classify them.
package publication

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/publisher-backend/internal/adapter/postgres"
	"github.com/heartmarshall/publisher-backend/internal/domain"
)

const (
	table     = "publications"
	returning = "RETURNING id, media_id, post_id, date"
)

var columns = []string{"id", "media_id", "post_id", "date"}

type row struct {
	ID      int64     `db:"id"`
	MediaID int64     `db:"media_id"`
	PostID  int64     `db:"post_id"`
	Date    time.Time `db:"date"`
}

func (r row) toDomain() *domain.Publication {
	return &domain.Publication{
		ID:      r.ID,
		MediaID: r.MediaID,
		PostID:  r.PostID,
		Date:    r.Date.UTC(),
	}
}

// Repo provides publication persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new publication repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a publication by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Publication, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.TagError(err, "get publication")
	}

	var p row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &p, query, args...); err != nil {
		return nil, postgres.TagError(err, "get publication")
	}

	return p.toDomain(), nil
}

// List returns publications matching filter ordered by date, then id.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.PublicationFilter) ([]*domain.Publication, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table)

	query, args, err := applyFilter(b, filter).
		OrderBy("date", "id").
		ToSql()
	if err != nil {
		return nil, postgres.TagError(err, "list publications")
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.TagError(err, "list publications")
	}

	result := make([]*domain.Publication, len(rows))
	for i, p := range rows {
		result[i] = p.toDomain()
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a publication. A missing media or post is tagged as a
// foreign key violation.
func (r *Repo) Create(ctx context.Context, p *domain.Publication) (*domain.Publication, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("media_id", "post_id", "date").
		Values(p.MediaID, p.PostID, p.Date.UTC()).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, postgres.TagError(err, "create publication")
	}

	var created row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, query, args...); err != nil {
		return nil, postgres.TagError(err, "create publication")
	}

	return created.toDomain(), nil
}

// Update applies the present fields of params. Empty params return the
// unchanged row.
func (r *Repo) Update(ctx context.Context, id int64, params domain.PublicationUpdateParams) (*domain.Publication, error) {
	if params.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	b := postgres.Builder().Update(table)
	if params.MediaID != nil {
		b = b.Set("media_id", *params.MediaID)
	}
	if params.PostID != nil {
		b = b.Set("post_id", *params.PostID)
	}
	if params.Date != nil {
		b = b.Set("date", params.Date.UTC())
	}

	query, args, err := b.
		Where(sq.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, postgres.TagError(err, "update publication")
	}

	var updated row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &updated, query, args...); err != nil {
		return nil, postgres.TagError(err, "update publication")
	}

	return updated.toDomain(), nil
}

// Delete removes the publication and returns its prior content.
func (r *Repo) Delete(ctx context.Context, id int64) (*domain.Publication, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, postgres.TagError(err, "delete publication")
	}

	var deleted row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &deleted, query, args...); err != nil {
		return nil, postgres.TagError(err, "delete publication")
	}

	return deleted.toDomain(), nil
}
