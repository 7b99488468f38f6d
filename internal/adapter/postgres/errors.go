package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/publisher-backend/internal/domain"
)

// PostgreSQL error codes surfaced as storage failures.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// TagError converts pgx/pgconn errors to a tagged *domain.StorageError.
// context.DeadlineExceeded, context.Canceled and unrecognised errors are NOT
// tagged: they pass through wrapped with op.
func TagError(err error, op string) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}

	// pgx.ErrNoRows → no row affected
	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return fmt.Errorf("%s: %w", op, domain.NewStorageError(domain.FailureNoRows, err))
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s: %w", op, domain.NewStorageError(domain.FailureUniqueViolation, err))
		case codeForeignKeyViolation:
			return fmt.Errorf("%s: %w", op, domain.NewStorageError(domain.FailureForeignKeyViolation, err))
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}
