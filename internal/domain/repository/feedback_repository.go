package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
)

// FeedbackRepository persists Feedback aggregates. A summary owns at most
// one feedback; Save reports DuplicateEntityError for a second one.
type FeedbackRepository interface {
	Save(ctx context.Context, feedback *entity.Feedback) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error)
	FindBySummary(ctx context.Context, summaryID uuid.UUID) (*entity.Feedback, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsBySummary(ctx context.Context, summaryID uuid.UUID) (bool, error)
	FindByUser(ctx context.Context, userID uuid.UUID, page, itemsPerPage int) (int64, []*entity.Feedback, error)
	FindByCurriculum(ctx context.Context, curriculumID uuid.UUID, page, itemsPerPage int) (int64, []*entity.Feedback, error)
}
