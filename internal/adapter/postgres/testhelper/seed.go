package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/publisher-backend/internal/adapter/postgres"
	"github.com/heartmarshall/publisher-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedMedia inserts a media row with a unique title/username pair.
func SeedMedia(t *testing.T, pool *pgxpool.Pool) domain.Media {
	t.Helper()
	return seedMedia(t, context.Background(), pool)
}

func seedMedia(t *testing.T, ctx context.Context, q postgres.Querier) domain.Media {
	t.Helper()

	suffix := uniqueSuffix()
	m := domain.Media{
		Title:    "Media " + suffix,
		Username: "user_" + suffix,
	}

	err := q.QueryRow(ctx,
		`INSERT INTO media (title, username) VALUES ($1, $2) RETURNING id`,
		m.Title, m.Username,
	).Scan(&m.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedMedia insert: %v", err)
	}

	return m
}

// SeedPost inserts a post; when withImage is true the post gets an image URL.
func SeedPost(t *testing.T, pool *pgxpool.Pool, withImage bool) domain.Post {
	t.Helper()
	return seedPost(t, context.Background(), pool, withImage)
}

func seedPost(t *testing.T, ctx context.Context, q postgres.Querier, withImage bool) domain.Post {
	t.Helper()

	suffix := uniqueSuffix()
	p := domain.Post{
		Title: "Post " + suffix,
		Text:  "Body of post " + suffix,
	}
	if withImage {
		img := "https://images.example.com/" + suffix + ".png"
		p.Image = &img
	}

	err := q.QueryRow(ctx,
		`INSERT INTO posts (title, text, image) VALUES ($1, $2, $3) RETURNING id`,
		p.Title, p.Text, p.Image,
	).Scan(&p.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedPost insert: %v", err)
	}

	return p
}

// SeedPublication inserts a publication for the given media and post.
func SeedPublication(t *testing.T, pool *pgxpool.Pool, mediaID, postID int64, date time.Time) domain.Publication {
	t.Helper()

	p := domain.Publication{
		MediaID: mediaID,
		PostID:  postID,
		Date:    date.UTC().Truncate(time.Microsecond),
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO publications (media_id, post_id, date) VALUES ($1, $2, $3) RETURNING id`,
		p.MediaID, p.PostID, p.Date,
	).Scan(&p.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedPublication insert: %v", err)
	}

	return p
}

// Scenario is a media and a post created together, ready to be linked by
// publications.
type Scenario struct {
	Media domain.Media
	Post  domain.Post
}

// SeedScenario creates a media and a post (with image) in one transaction.
func SeedScenario(t *testing.T, pool *pgxpool.Pool) Scenario {
	t.Helper()

	var sc Scenario
	tm := postgres.NewTxManager(pool)
	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		sc.Media = seedMedia(t, ctx, q)
		sc.Post = seedPost(t, ctx, q, true)
		return nil
	})
	if err != nil {
		t.Fatalf("testhelper: SeedScenario: %v", err)
	}

	return sc
}

// CountPublications returns the number of publication rows referencing mediaID.
func CountPublications(t *testing.T, pool *pgxpool.Pool, mediaID int64) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM publications WHERE media_id = $1`, mediaID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountPublications: %v", err)
	}
	return n
}

// Date returns midnight UTC of the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
