package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
)

// CurriculumRepository persists Curriculum aggregates including their week
// topics. Week topics are saved and loaded with the parent and cascade on
// delete.
type CurriculumRepository interface {
	Save(ctx context.Context, curriculum *entity.Curriculum) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Curriculum, error)
	Update(ctx context.Context, curriculum *entity.Curriculum) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByUser(ctx context.Context, userID uuid.UUID, page, itemsPerPage int) (int64, []*entity.Curriculum, error)
	FindPublic(ctx context.Context, page, itemsPerPage int) (int64, []*entity.Curriculum, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
