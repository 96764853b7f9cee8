package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
)

// PromptLog records one LLM round-trip made while generating feedback for a
// summary. Logs are append-only.
type PromptLog struct {
	ID             uuid.UUID
	SummaryID      uuid.UUID
	Prompt         string
	Response       string
	ModelName      string
	LatencySeconds float64
	CreatedAt      time.Time
}

// NewPromptLog validates the structural invariants and builds a PromptLog.
func NewPromptLog(id, summaryID uuid.UUID, prompt, response, modelName string, latencySeconds float64, createdAt time.Time) (*PromptLog, error) {
	if id == uuid.Nil {
		return nil, errs.NewValidationError("id", "id_empty", "prompt log id must not be empty")
	}
	if summaryID == uuid.Nil {
		return nil, errs.NewValidationError("summary_id", "summary_id_empty", "prompt log summary must not be empty")
	}
	if strings.TrimSpace(prompt) == "" {
		return nil, errs.NewValidationError("prompt", "prompt_empty", "prompt must not be empty")
	}
	if strings.TrimSpace(modelName) == "" {
		return nil, errs.NewValidationError("model_name", "model_name_empty", "model name must not be empty")
	}
	if latencySeconds < 0 {
		return nil, errs.NewValidationError("latency", "latency_negative", "latency must not be negative")
	}
	if createdAt.IsZero() {
		return nil, errs.NewValidationError("timestamps", "timestamp_zero", "created_at must be set")
	}

	return &PromptLog{
		ID:             id,
		SummaryID:      summaryID,
		Prompt:         prompt,
		Response:       response,
		ModelName:      modelName,
		LatencySeconds: latencySeconds,
		CreatedAt:      createdAt,
	}, nil
}
