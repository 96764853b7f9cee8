package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
)

// LikeRepository persists Like aggregates. Save reports
// DuplicateEntityError when the (user, target type, target id) triple
// already exists.
type LikeRepository interface {
	Save(ctx context.Context, like *entity.Like) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Like, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUserAndTarget(ctx context.Context, userID uuid.UUID, targetType vo.LikeTargetType, targetID uuid.UUID) error
	ExistsByUserAndTarget(ctx context.Context, userID uuid.UUID, targetType vo.LikeTargetType, targetID uuid.UUID) (bool, error)
	CountByTarget(ctx context.Context, targetType vo.LikeTargetType, targetID uuid.UUID) (int64, error)
}
