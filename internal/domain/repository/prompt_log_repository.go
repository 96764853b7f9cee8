package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
)

// PromptLogRepository persists PromptLog records. Logs are append-only, so
// the contract has no update or delete.
type PromptLogRepository interface {
	Save(ctx context.Context, log *entity.PromptLog) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PromptLog, error)
	FindBySummary(ctx context.Context, summaryID uuid.UUID, page, itemsPerPage int) (int64, []*entity.PromptLog, error)
	CountBySummary(ctx context.Context, summaryID uuid.UUID) (int64, error)
}
