package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
)

// Summary is a weekly study summary posted against a curriculum week.
type Summary struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CurriculumID uuid.UUID
	WeekNumber   vo.WeekNumber
	Content      vo.SummaryContent
	IsPublic     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewSummary validates the structural invariants and builds a Summary.
func NewSummary(id, userID, curriculumID uuid.UUID, weekNumber vo.WeekNumber, content vo.SummaryContent, isPublic bool, createdAt, updatedAt time.Time) (*Summary, error) {
	if id == uuid.Nil {
		return nil, errs.NewValidationError("id", "id_empty", "summary id must not be empty")
	}
	if userID == uuid.Nil {
		return nil, errs.NewValidationError("user_id", "user_id_empty", "summary author must not be empty")
	}
	if curriculumID == uuid.Nil {
		return nil, errs.NewValidationError("curriculum_id", "curriculum_id_empty", "summary curriculum must not be empty")
	}
	if content.Value() == "" {
		return nil, errs.NewValidationError("content", "summary_content_empty", "summary content must be set")
	}
	if createdAt.IsZero() || updatedAt.IsZero() {
		return nil, errs.NewValidationError("timestamps", "timestamp_zero", "created_at and updated_at must be set")
	}

	return &Summary{
		ID:           id,
		UserID:       userID,
		CurriculumID: curriculumID,
		WeekNumber:   weekNumber,
		Content:      content,
		IsPublic:     isPublic,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}

// UpdateContent replaces the summary body.
func (s *Summary) UpdateContent(content vo.SummaryContent) {
	s.Content = content
	s.touch()
}

// ToggleVisibility flips the public flag.
func (s *Summary) ToggleVisibility() {
	s.IsPublic = !s.IsPublic
	s.touch()
}

func (s *Summary) touch() {
	s.UpdatedAt = time.Now().UTC()
}
