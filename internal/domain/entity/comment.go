package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
)

// Comment content bounds, in runes after trimming.
const (
	CommentMinLength = 1
	CommentMaxLength = 1000
)

// Comment is a user comment on a summary. Its lifecycle is independent of
// the summary's feedback.
type Comment struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	SummaryID uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewComment validates the structural invariants and builds a Comment.
func NewComment(id, userID, summaryID uuid.UUID, content string, createdAt, updatedAt time.Time) (*Comment, error) {
	if id == uuid.Nil {
		return nil, errs.NewValidationError("id", "id_empty", "comment id must not be empty")
	}
	if userID == uuid.Nil {
		return nil, errs.NewValidationError("user_id", "user_id_empty", "comment author must not be empty")
	}
	if summaryID == uuid.Nil {
		return nil, errs.NewValidationError("summary_id", "summary_id_empty", "comment summary must not be empty")
	}
	canonical, err := validateCommentContent(content)
	if err != nil {
		return nil, err
	}
	if createdAt.IsZero() || updatedAt.IsZero() {
		return nil, errs.NewValidationError("timestamps", "timestamp_zero", "created_at and updated_at must be set")
	}

	return &Comment{
		ID:        id,
		UserID:    userID,
		SummaryID: summaryID,
		Content:   canonical,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func validateCommentContent(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	length := utf8.RuneCountInString(trimmed)
	if length < CommentMinLength || length > CommentMaxLength {
		return "", errs.NewValidationError("content", "comment_length", "comment must be between 1 and 1000 characters")
	}
	return trimmed, nil
}

// Edit replaces the comment content after validation.
func (c *Comment) Edit(newContent string) error {
	canonical, err := validateCommentContent(newContent)
	if err != nil {
		return err
	}
	c.Content = canonical
	c.UpdatedAt = time.Now().UTC()
	return nil
}
