package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
)

// Feedback is the machine-generated review of one summary. Each summary has
// at most one feedback.
type Feedback struct {
	ID        uuid.UUID
	SummaryID uuid.UUID
	Reviewer  string
	Comment   vo.FeedbackComment
	CreatedAt time.Time
}

// NewFeedback validates the structural invariants and builds a Feedback.
// Reviewer tags the generating model, e.g. "GPT-4".
func NewFeedback(id, summaryID uuid.UUID, reviewer string, comment vo.FeedbackComment, createdAt time.Time) (*Feedback, error) {
	if id == uuid.Nil {
		return nil, errs.NewValidationError("id", "id_empty", "feedback id must not be empty")
	}
	if summaryID == uuid.Nil {
		return nil, errs.NewValidationError("summary_id", "summary_id_empty", "feedback summary must not be empty")
	}
	if strings.TrimSpace(reviewer) == "" {
		return nil, errs.NewValidationError("reviewer", "reviewer_empty", "feedback reviewer must not be empty")
	}
	if comment.Value() == "" {
		return nil, errs.NewValidationError("comment", "feedback_comment_empty", "feedback comment must be set")
	}
	if createdAt.IsZero() {
		return nil, errs.NewValidationError("timestamps", "timestamp_zero", "created_at must be set")
	}

	return &Feedback{
		ID:        id,
		SummaryID: summaryID,
		Reviewer:  strings.TrimSpace(reviewer),
		Comment:   comment,
		CreatedAt: createdAt,
	}, nil
}
