package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
)

// TagRepository persists Tag aggregates.
type TagRepository interface {
	Save(ctx context.Context, tag *entity.Tag) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tag, error)
	FindByName(ctx context.Context, name vo.TagName) (*entity.Tag, error)
	Update(ctx context.Context, tag *entity.Tag) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByName(ctx context.Context, name vo.TagName) (bool, error)
	FindAll(ctx context.Context, page, itemsPerPage int) (int64, []*entity.Tag, error)
	FindPopular(ctx context.Context, limit int) ([]*entity.Tag, error)

	// FindOrCreateByNames resolves each name to an existing tag or inserts a
	// fresh one with usage count zero. Under concurrent callers with
	// overlapping name sets at most one row exists per distinct name; the
	// returned slice preserves the input order.
	FindOrCreateByNames(ctx context.Context, names []vo.TagName, createdBy uuid.UUID) ([]*entity.Tag, error)
}
