package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
)

// WeekTopicParams is one week entry of a create or week-edit request.
type WeekTopicParams struct {
	WeekNumber int    `json:"week_number" validate:"required,min=1,max=24"`
	Topic      string `json:"topic" validate:"required,max=255"`
}

// CreateCurriculumParams is the curriculum creation request. Visibility
// defaults to PRIVATE when omitted.
type CreateCurriculumParams struct {
	Title      string            `json:"title" validate:"required,max=100"`
	Goal       string            `json:"goal" validate:"max=500"`
	Visibility string            `json:"visibility" validate:"omitempty,oneof=PUBLIC PRIVATE"`
	Weeks      []WeekTopicParams `json:"weeks" validate:"omitempty,max=24,dive"`
}

// UpdateCurriculumParams is the partial-update request; nil fields keep
// their current value.
type UpdateCurriculumParams struct {
	Title *string `json:"title" validate:"omitempty,min=1,max=100"`
	Goal  *string `json:"goal" validate:"omitempty,max=500"`
}

// WeekTopicResponse is the outbound week shape.
type WeekTopicResponse struct {
	WeekNumber int    `json:"week_number"`
	Topic      string `json:"topic"`
}

// CurriculumResponse is the outbound curriculum shape. Weeks keep their
// authoring order.
type CurriculumResponse struct {
	ID         uuid.UUID           `json:"id"`
	UserID     uuid.UUID           `json:"user_id"`
	Title      string              `json:"title"`
	Goal       string              `json:"goal,omitempty"`
	Visibility string              `json:"visibility"`
	Weeks      []WeekTopicResponse `json:"weeks"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// NewCurriculumResponse converts a curriculum entity to its outbound shape.
func NewCurriculumResponse(curriculum *entity.Curriculum) *CurriculumResponse {
	if curriculum == nil {
		return nil
	}
	weeks := make([]WeekTopicResponse, len(curriculum.Weeks))
	for i, w := range curriculum.Weeks {
		weeks[i] = WeekTopicResponse{WeekNumber: w.WeekNumber.Value(), Topic: w.Topic}
	}
	return &CurriculumResponse{
		ID:         curriculum.ID,
		UserID:     curriculum.UserID,
		Title:      curriculum.Title.Value(),
		Goal:       curriculum.Goal.Value(),
		Visibility: curriculum.Visibility.String(),
		Weeks:      weeks,
		CreatedAt:  curriculum.CreatedAt,
		UpdatedAt:  curriculum.UpdatedAt,
	}
}

// CurriculumListResponse is one page of curricula.
type CurriculumListResponse struct {
	Meta  PageMeta              `json:"meta"`
	Items []*CurriculumResponse `json:"items"`
}

// NewCurriculumListResponse builds a curriculum page.
func NewCurriculumListResponse(total int64, page, itemsPerPage int, curricula []*entity.Curriculum) *CurriculumListResponse {
	items := make([]*CurriculumResponse, len(curricula))
	for i, curriculum := range curricula {
		items[i] = NewCurriculumResponse(curriculum)
	}
	return &CurriculumListResponse{Meta: NewPageMeta(total, page, itemsPerPage), Items: items}
}
