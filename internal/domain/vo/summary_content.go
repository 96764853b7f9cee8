package vo

import (
	"strings"
	"unicode/utf8"

	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
)

// SummaryContent bounds, in runes after trimming.
const (
	SummaryContentMinLength = 300
	SummaryContentMaxLength = 10000
)

// SummaryContent is the body text of a weekly summary.
type SummaryContent struct {
	value string
}

// NewSummaryContent trims raw and validates the length bounds.
func NewSummaryContent(raw string) (SummaryContent, error) {
	trimmed := strings.TrimSpace(raw)
	length := utf8.RuneCountInString(trimmed)

	if length < SummaryContentMinLength {
		return SummaryContent{}, errs.NewValidationError("content", "summary_content_too_short", "summary content must be at least 300 characters")
	}
	if length > SummaryContentMaxLength {
		return SummaryContent{}, errs.NewValidationError("content", "summary_content_too_long", "summary content must be at most 10000 characters")
	}

	return SummaryContent{value: trimmed}, nil
}

// Value returns the canonical content.
func (c SummaryContent) Value() string { return c.value }

// Length returns the canonical content length in runes.
func (c SummaryContent) Length() int { return utf8.RuneCountInString(c.value) }
