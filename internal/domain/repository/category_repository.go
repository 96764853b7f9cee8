package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
)

// CategoryRepository persists Category aggregates.
type CategoryRepository interface {
	Save(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindByName(ctx context.Context, name vo.CategoryName) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByName(ctx context.Context, name vo.CategoryName) (bool, error)
	// FindActive returns active categories ordered by sort order.
	FindActive(ctx context.Context) ([]*entity.Category, error)
	FindAll(ctx context.Context, page, itemsPerPage int) (int64, []*entity.Category, error)
}
