// Package post implements the Post repository using PostgreSQL.
package post

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/publisher-backend/internal/adapter/postgres"
	"github.com/heartmarshall/publisher-backend/internal/domain"
)

const (
	table     = "posts"
	returning = "RETURNING id, title, text, image"
)

var columns = []string{"id", "title", "text", "image"}

type row struct {
	ID    int64   `db:"id"`
	Title string  `db:"title"`
	Text  string  `db:"text"`
	Image *string `db:"image"`
}

func (r row) toDomain() *domain.Post {
	return &domain.Post{ID: r.ID, Title: r.Title, Text: r.Text, Image: r.Image}
}

// Repo provides post persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new post repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a post by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.TagError(err, "get post")
	}

	var p row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &p, query, args...); err != nil {
		return nil, postgres.TagError(err, "get post")
	}

	return p.toDomain(), nil
}

// List returns all posts ordered by id.
func (r *Repo) List(ctx context.Context) ([]*domain.Post, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, postgres.TagError(err, "list posts")
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.TagError(err, "list posts")
	}

	result := make([]*domain.Post, len(rows))
	for i, p := range rows {
		result[i] = p.toDomain()
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new post and returns the persisted row.
func (r *Repo) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("title", "text", "image").
		Values(p.Title, p.Text, p.Image).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, postgres.TagError(err, "create post")
	}

	var created row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, query, args...); err != nil {
		return nil, postgres.TagError(err, "create post")
	}

	return created.toDomain(), nil
}

// Update applies the present fields of params. An empty image string clears
// the stored image.
func (r *Repo) Update(ctx context.Context, id int64, params domain.PostUpdateParams) (*domain.Post, error) {
	if params.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	b := postgres.Builder().Update(table)
	if params.Title != nil {
		b = b.Set("title", *params.Title)
	}
	if params.Text != nil {
		b = b.Set("text", *params.Text)
	}
	if params.Image != nil {
		if *params.Image == "" {
			b = b.Set("image", nil)
		} else {
			b = b.Set("image", *params.Image)
		}
	}

	query, args, err := b.
		Where(sq.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, postgres.TagError(err, "update post")
	}

	var updated row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &updated, query, args...); err != nil {
		return nil, postgres.TagError(err, "update post")
	}

	return updated.toDomain(), nil
}

// Delete removes the post and returns its prior content.
func (r *Repo) Delete(ctx context.Context, id int64) (*domain.Post, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, postgres.TagError(err, "delete post")
	}

	var deleted row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &deleted, query, args...); err != nil {
		return nil, postgres.TagError(err, "delete post")
	}

	return deleted.toDomain(), nil
}
