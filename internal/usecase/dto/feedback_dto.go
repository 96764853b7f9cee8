package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
)

// CreateFeedbackParams records the generated review of one summary.
type CreateFeedbackParams struct {
	Reviewer string `json:"reviewer" validate:"required,max=100"`
	Comment  string `json:"comment" validate:"required"`
}

// FeedbackResponse is the outbound feedback shape.
type FeedbackResponse struct {
	ID        uuid.UUID `json:"id"`
	SummaryID uuid.UUID `json:"summary_id"`
	Reviewer  string    `json:"reviewer"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// NewFeedbackResponse converts a feedback entity to its outbound shape.
func NewFeedbackResponse(feedback *entity.Feedback) *FeedbackResponse {
	if feedback == nil {
		return nil
	}
	return &FeedbackResponse{
		ID:        feedback.ID,
		SummaryID: feedback.SummaryID,
		Reviewer:  feedback.Reviewer,
		Comment:   feedback.Comment.Value(),
		CreatedAt: feedback.CreatedAt,
	}
}

// FeedbackListResponse is one page of feedbacks.
type FeedbackListResponse struct {
	Meta  PageMeta            `json:"meta"`
	Items []*FeedbackResponse `json:"items"`
}

// NewFeedbackListResponse builds a feedback page.
func NewFeedbackListResponse(total int64, page, itemsPerPage int, feedbacks []*entity.Feedback) *FeedbackListResponse {
	items := make([]*FeedbackResponse, len(feedbacks))
	for i, feedback := range feedbacks {
		items[i] = NewFeedbackResponse(feedback)
	}
	return &FeedbackListResponse{Meta: NewPageMeta(total, page, itemsPerPage), Items: items}
}

// CreatePromptLogParams records one LLM round-trip behind a feedback.
type CreatePromptLogParams struct {
	Prompt         string  `json:"prompt" validate:"required"`
	Response       string  `json:"response"`
	ModelName      string  `json:"model_name" validate:"required,max=100"`
	LatencySeconds float64 `json:"latency_seconds" validate:"min=0"`
}

// PromptLogResponse is the outbound prompt log shape.
type PromptLogResponse struct {
	ID             uuid.UUID `json:"id"`
	SummaryID      uuid.UUID `json:"summary_id"`
	Prompt         string    `json:"prompt"`
	Response       string    `json:"response,omitempty"`
	ModelName      string    `json:"model_name"`
	LatencySeconds float64   `json:"latency_seconds"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewPromptLogResponse converts a prompt log entity to its outbound shape.
func NewPromptLogResponse(log *entity.PromptLog) *PromptLogResponse {
	if log == nil {
		return nil
	}
	return &PromptLogResponse{
		ID:             log.ID,
		SummaryID:      log.SummaryID,
		Prompt:         log.Prompt,
		Response:       log.Response,
		ModelName:      log.ModelName,
		LatencySeconds: log.LatencySeconds,
		CreatedAt:      log.CreatedAt,
	}
}

// PromptLogListResponse is one page of prompt logs.
type PromptLogListResponse struct {
	Meta  PageMeta             `json:"meta"`
	Items []*PromptLogResponse `json:"items"`
}

// NewPromptLogListResponse builds a prompt log page.
func NewPromptLogListResponse(total int64, page, itemsPerPage int, logs []*entity.PromptLog) *PromptLogListResponse {
	items := make([]*PromptLogResponse, len(logs))
	for i, log := range logs {
		items[i] = NewPromptLogResponse(log)
	}
	return &PromptLogListResponse{Meta: NewPageMeta(total, page, itemsPerPage), Items: items}
}
