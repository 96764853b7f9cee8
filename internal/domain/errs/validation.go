package errs

import "fmt"

// ValidationError is returned when a value object or an entity rejects its
// input. Rule carries the machine-readable name of the violated rule.
type ValidationError struct {
	Field   string
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Field, e.Message, e.Rule)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, rule, message string) *ValidationError {
	return &ValidationError{Field: field, Rule: rule, Message: message}
}
