package errs

import (
	"errors"
	"fmt"
)

// EntityNotFoundError is returned when a lookup or an update targets an id
// that does not exist.
type EntityNotFoundError struct {
	EntityType string
	Identifier string
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.EntityType, e.Identifier)
}

// NewEntityNotFoundError creates a new entity-not-found error.
func NewEntityNotFoundError(entityType, identifier string) *EntityNotFoundError {
	return &EntityNotFoundError{EntityType: entityType, Identifier: identifier}
}

// DuplicateEntityError is returned when a save violates a unique constraint.
type DuplicateEntityError struct {
	EntityType string
	Field      string
	Value      string
}

func (e *DuplicateEntityError) Error() string {
	return fmt.Sprintf("%s already exists: %s=%s", e.EntityType, e.Field, e.Value)
}

// NewDuplicateEntityError creates a new duplicate-entity error.
func NewDuplicateEntityError(entityType, field, value string) *DuplicateEntityError {
	return &DuplicateEntityError{EntityType: entityType, Field: field, Value: value}
}

// DatabaseError wraps connectivity, transaction or other infrastructure
// failures. It is the only repository error kind eligible for retry.
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("database error during %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("database error during %s", e.Op)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// NewDatabaseError wraps an infrastructure failure.
func NewDatabaseError(op string, err error) *DatabaseError {
	return &DatabaseError{Op: op, Err: err}
}

// IsNotFound reports whether err is an EntityNotFoundError.
func IsNotFound(err error) bool {
	var target *EntityNotFoundError
	return errors.As(err, &target)
}

// IsDuplicate reports whether err is a DuplicateEntityError.
func IsDuplicate(err error) bool {
	var target *DuplicateEntityError
	return errors.As(err, &target)
}

// IsRetryable reports whether err is a DatabaseError, the only repository
// error kind that a caller may retry.
func IsRetryable(err error) bool {
	var target *DatabaseError
	return errors.As(err, &target)
}

// IsRepositoryError reports whether err belongs to the repository taxonomy.
func IsRepositoryError(err error) bool {
	return IsNotFound(err) || IsDuplicate(err) || IsRetryable(err)
}
