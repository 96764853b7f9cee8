// Package usecase implements the application operations on top of the
// domain layer. Use cases rebuild value objects from DTO input, enforce
// ownership rules, and hand repository errors to the HTTP layer unchanged.
package usecase

import (
	"github.com/google/uuid"

	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
)

// Actor identifies the authenticated caller of a use case, extracted from
// the JWT by the auth middleware.
type Actor struct {
	ID   uuid.UUID
	Role vo.Role
}

// IsAdmin reports whether the caller has the ADMIN role.
func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

// Owns reports whether the caller owns the resource or is an admin.
func (a Actor) Owns(ownerID uuid.UUID) bool {
	return a.ID == ownerID || a.IsAdmin()
}
