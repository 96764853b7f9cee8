package vo

import (
	"strings"

	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
)

// FeedbackComment is the body of a machine-generated feedback.
type FeedbackComment struct {
	value string
}

// NewFeedbackComment trims raw and rejects empty input.
func NewFeedbackComment(raw string) (FeedbackComment, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return FeedbackComment{}, errs.NewValidationError("comment", "feedback_comment_empty", "feedback comment must not be empty")
	}
	return FeedbackComment{value: trimmed}, nil
}

// Value returns the canonical comment.
func (c FeedbackComment) Value() string { return c.value }
