package db

import (
	"errors"

	"github.com/lib/pq"
)

const (
	DuplicateEntry       pq.ErrorCode = "23505"
	EntryTooLong         pq.ErrorCode = "22001"
	SerializationFailure pq.ErrorCode = "40001"
)

// IsUniqueViolation reports whether err is a unique-constraint violation,
// optionally on a specific constraint name.
func IsUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if pqErr.Code != DuplicateEntry {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}

// IsSerializationFailure reports whether err is a serializable-isolation
// conflict, which callers may retry.
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == SerializationFailure
}
