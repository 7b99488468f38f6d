// Package media implements the Media repository using PostgreSQL.
package media

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/publisher-backend/internal/adapter/postgres"
	"github.com/heartmarshall/publisher-backend/internal/domain"
)

const table = "media"

var columns = []string{"id", "title", "username"}

// row mirrors a media record.
type row struct {
	ID       int64  `db:"id"`
	Title    string `db:"title"`
	Username string `db:"username"`
}

func (r row) toDomain() *domain.Media {
	return &domain.Media{ID: r.ID, Title: r.Title, Username: r.Username}
}

// Repo provides media persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new media repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a media by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Media, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.TagError(err, "get media")
	}

	var m row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &m, query, args...); err != nil {
		return nil, postgres.TagError(err, "get media")
	}

	return m.toDomain(), nil
}

// List returns all media ordered by id.
// Returns an empty slice (not nil) when the table is empty.
func (r *Repo) List(ctx context.Context) ([]*domain.Media, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, postgres.TagError(err, "list media")
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.TagError(err, "list media")
	}

	result := make([]*domain.Media, len(rows))
	for i, m := range rows {
		result[i] = m.toDomain()
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new media and returns the persisted row.
// A duplicate (title, username) pair is tagged as a unique violation.
func (r *Repo) Create(ctx context.Context, m *domain.Media) (*domain.Media, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("title", "username").
		Values(m.Title, m.Username).
		Suffix("RETURNING id, title, username").
		ToSql()
	if err != nil {
		return nil, postgres.TagError(err, "create media")
	}

	var created row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, query, args...); err != nil {
		return nil, postgres.TagError(err, "create media")
	}

	return created.toDomain(), nil
}

// Update applies the present fields of params to the media with the given id.
// Empty params return the unchanged row.
func (r *Repo) Update(ctx context.Context, id int64, params domain.MediaUpdateParams) (*domain.Media, error) {
	if params.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	b := postgres.Builder().Update(table)
	if params.Title != nil {
		b = b.Set("title", *params.Title)
	}
	if params.Username != nil {
		b = b.Set("username", *params.Username)
	}

	query, args, err := b.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, title, username").
		ToSql()
	if err != nil {
		return nil, postgres.TagError(err, "update media")
	}

	var updated row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &updated, query, args...); err != nil {
		return nil, postgres.TagError(err, "update media")
	}

	return updated.toDomain(), nil
}

// Delete removes the media and returns its prior content.
// Publications referencing it are removed by the ON DELETE CASCADE constraint.
func (r *Repo) Delete(ctx context.Context, id int64) (*domain.Media, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, title, username").
		ToSql()
	if err != nil {
		return nil, postgres.TagError(err, "delete media")
	}

	var deleted row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &deleted, query, args...); err != nil {
		return nil, postgres.TagError(err, "delete media")
	}

	return deleted.toDomain(), nil
}
