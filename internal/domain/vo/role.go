package vo

import "github.com/kikiru328/LLearn-sub001/internal/domain/errs"

// Role is a user role.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// NewRole validates raw against the closed set {USER, ADMIN}.
func NewRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleUser, RoleAdmin:
		return Role(raw), nil
	default:
		return "", errs.NewValidationError("role", "role_invalid", "role must be USER or ADMIN")
	}
}

// IsAdmin reports whether the role is ADMIN.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

func (r Role) String() string { return string(r) }
