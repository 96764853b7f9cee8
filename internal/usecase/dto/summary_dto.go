package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
)

// CreateSummaryParams is the weekly summary submission request.
type CreateSummaryParams struct {
	WeekNumber int    `json:"week_number" validate:"required,min=1,max=24"`
	Content    string `json:"content" validate:"required,min=300,max=10000"`
	IsPublic   bool   `json:"is_public"`
}

// UpdateSummaryParams is the partial-update request; nil fields keep their
// current value.
type UpdateSummaryParams struct {
	Content  *string `json:"content" validate:"omitempty,min=300,max=10000"`
	IsPublic *bool   `json:"is_public"`
}

// SummaryResponse is the outbound summary shape.
type SummaryResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	CurriculumID  uuid.UUID `json:"curriculum_id"`
	WeekNumber    int       `json:"week_number"`
	Content       string    `json:"content"`
	ContentLength int       `json:"content_length"`
	IsPublic      bool      `json:"is_public"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewSummaryResponse converts a summary entity to its outbound shape.
func NewSummaryResponse(summary *entity.Summary) *SummaryResponse {
	if summary == nil {
		return nil
	}
	return &SummaryResponse{
		ID:            summary.ID,
		UserID:        summary.UserID,
		CurriculumID:  summary.CurriculumID,
		WeekNumber:    summary.WeekNumber.Value(),
		Content:       summary.Content.Value(),
		ContentLength: summary.Content.Length(),
		IsPublic:      summary.IsPublic,
		CreatedAt:     summary.CreatedAt,
		UpdatedAt:     summary.UpdatedAt,
	}
}

// SummaryListResponse is one page of summaries.
type SummaryListResponse struct {
	Meta  PageMeta           `json:"meta"`
	Items []*SummaryResponse `json:"items"`
}

// NewSummaryListResponse builds a summary page.
func NewSummaryListResponse(total int64, page, itemsPerPage int, summaries []*entity.Summary) *SummaryListResponse {
	items := make([]*SummaryResponse, len(summaries))
	for i, summary := range summaries {
		items[i] = NewSummaryResponse(summary)
	}
	return &SummaryListResponse{Meta: NewPageMeta(total, page, itemsPerPage), Items: items}
}
