// Package vo contains the self-validating value objects of the curriculum
// domain. Every constructor trims and normalizes its input, rejects rule
// violations with *errs.ValidationError and stores the canonical form.
// Value objects are immutable and compared by value.
package vo

import (
	"strings"
	"unicode/utf8"

	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
)

// Title bounds, in runes after trimming.
const (
	TitleMinLength = 1
	TitleMaxLength = 100
)

// Title is a curriculum title.
type Title struct {
	value string
}

// NewTitle trims raw and validates the length bounds.
func NewTitle(raw string) (Title, error) {
	trimmed := strings.TrimSpace(raw)
	length := utf8.RuneCountInString(trimmed)

	if length < TitleMinLength {
		return Title{}, errs.NewValidationError("title", "title_empty", "title must not be empty")
	}
	if length > TitleMaxLength {
		return Title{}, errs.NewValidationError("title", "title_too_long", "title must be at most 100 characters")
	}

	return Title{value: trimmed}, nil
}

// Value returns the canonical title string.
func (t Title) Value() string { return t.value }

func (t Title) String() string { return t.value }

// IsZero reports whether the title is the zero value.
func (t Title) IsZero() bool { return t.value == "" }
