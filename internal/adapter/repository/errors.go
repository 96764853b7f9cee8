// Package repository implements the persistence contracts on GORM with
// PostgreSQL. Backend failures are translated into the errs taxonomy here;
// nothing above this layer sees a gorm or driver error.
package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
)

// isUniqueViolation reports whether err is a unique-constraint violation.
// The pgx driver surfaces SQLSTATE 23505 in the message; gorm additionally
// normalizes it when translation is enabled.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") || strings.Contains(msg, "duplicate key value")
}

// translateSaveError maps an insert failure to the taxonomy. Unique
// violations become DuplicateEntityError with the given field and value;
// everything else is infrastructural.
func translateSaveError(err error, entityType, field, value, op string) error {
	if isUniqueViolation(err) {
		return errs.NewDuplicateEntityError(entityType, field, value)
	}
	return errs.NewDatabaseError(op, err)
}

// paginate applies a 1-indexed page to the query. Callers normalize page
// and itemsPerPage before they reach this layer.
func paginate(query *gorm.DB, page, itemsPerPage int) *gorm.DB {
	offset := (page - 1) * itemsPerPage
	return query.Offset(offset).Limit(itemsPerPage)
}
