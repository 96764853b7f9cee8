package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
)

// CommentRepository persists Comment aggregates.
type CommentRepository interface {
	Save(ctx context.Context, comment *entity.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)
	Update(ctx context.Context, comment *entity.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindBySummary(ctx context.Context, summaryID uuid.UUID, page, itemsPerPage int) (int64, []*entity.Comment, error)
	CountBySummary(ctx context.Context, summaryID uuid.UUID) (int64, error)
}
