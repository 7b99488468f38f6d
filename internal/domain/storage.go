package domain

import (
	"errors"
	"fmt"
)

// StorageFailure tags a raw storage outcome independently of the backend.
type StorageFailure int

const (
	FailureUnknown StorageFailure = iota
	FailureUniqueViolation
	FailureForeignKeyViolation
	FailureNoRows
)

func (f StorageFailure) String() string {
	switch f {
	case FailureUniqueViolation:
		return "unique-violation"
	case FailureForeignKeyViolation:
		return "fk-violation"
	case FailureNoRows:
		return "no-row-affected"
	default:
		return "unknown"
	}
}

// StorageError is returned by repositories for every failed row operation.
// Repositories never return domain sentinels; Classify turns the tag into one.
type StorageError struct {
	Failure StorageFailure
	Err     error
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return "storage: " + e.Failure.String()
	}
	return fmt.Sprintf("storage: %s: %v", e.Failure, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NewStorageError tags err with the given failure.
func NewStorageError(failure StorageFailure, err error) *StorageError {
	return &StorageError{Failure: failure, Err: err}
}

// FailureOf returns the storage tag carried by err, or FailureUnknown.
func FailureOf(err error) StorageFailure {
	var se *StorageError
	if errors.As(err, &se) {
		return se.Failure
	}
	return FailureUnknown
}

// classification is the canonical mapping of storage failures per entity.
// A missing cell means the failure is not expected for that entity and is
// propagated unclassified.
var classification = map[EntityType]map[StorageFailure]error{
	EntityTypeMedia: {
		FailureUniqueViolation: ErrAlreadyExists,
		FailureNoRows:          ErrNotFound,
	},
	EntityTypePost: {
		FailureNoRows: ErrNotFound,
	},
	EntityTypePublication: {
		// The storage does not report which of media_id/post_id failed.
		FailureForeignKeyViolation: ErrNotFound,
		FailureNoRows:              ErrNotFound,
	},
}

// Classify maps a storage failure of entity to a domain error.
// Unclassified errors (including nil) and errors of an unknown entity are
// returned unchanged.
func Classify(err error, entity EntityType) error {
	if err == nil || !entity.IsValid() {
		return err
	}

	var se *StorageError
	if !errors.As(err, &se) {
		return err
	}

	sentinel, ok := classification[entity][se.Failure]
	if !ok {
		return err
	}

	return fmt.Errorf("%s: %w", entity, sentinel)
}
