package usecase

import "errors"

// Sentinel errors of the application layer. The HTTP layer maps them to
// status codes; repository taxonomy errors pass through unchanged.
var (
	// ErrInvalidCredentials hides whether the email or the password was
	// wrong, and also covers withdrawn accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden means the caller is authenticated but not allowed to
	// touch the resource.
	ErrForbidden = errors.New("forbidden")
)
