package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
)

// SummaryRepository persists Summary aggregates.
type SummaryRepository interface {
	Save(ctx context.Context, summary *entity.Summary) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Summary, error)
	Update(ctx context.Context, summary *entity.Summary) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByCurriculum(ctx context.Context, curriculumID uuid.UUID, page, itemsPerPage int) (int64, []*entity.Summary, error)
	FindByUser(ctx context.Context, userID uuid.UUID, page, itemsPerPage int) (int64, []*entity.Summary, error)
	ExistsByCurriculumAndWeek(ctx context.Context, curriculumID uuid.UUID, weekNumber int) (bool, error)
	CountByCurriculum(ctx context.Context, curriculumID uuid.UUID) (int64, error)
}
