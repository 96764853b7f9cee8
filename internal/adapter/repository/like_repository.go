package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kikiru328/LLearn-sub001/internal/adapter/mapper"
	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
	"github.com/kikiru328/LLearn-sub001/internal/domain/repository"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
	"github.com/kikiru328/LLearn-sub001/internal/infrastructure/db/model"
)

type LikeRepositoryImpl struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewLikeRepository creates the GORM-backed like repository.
func NewLikeRepository(db *gorm.DB, logger *zap.Logger) repository.LikeRepository {
	return &LikeRepositoryImpl{db: db, logger: logger}
}

// Save inserts a like. A repeat like on the same target hits the composite
// unique index and becomes DuplicateEntityError.
func (r *LikeRepositoryImpl) Save(ctx context.Context, like *entity.Like) error {
	likeModel := mapper.LikeToModel(like)

	if err := r.db.WithContext(ctx).Create(likeModel).Error; err != nil {
		r.logger.Error("Failed to save like",
			zap.String("user_id", like.UserID.String()),
			zap.String("target_type", like.TargetType.String()),
			zap.String("target_id", like.TargetID.String()),
			zap.Error(err))
		value := fmt.Sprintf("%s/%s/%s", like.UserID, like.TargetType, like.TargetID)
		return translateSaveError(err, "like", "user_target", value, "like.save")
	}
	return nil
}

// FindByID returns (nil, nil) when no like has the id.
func (r *LikeRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.Like, error) {
	var likeModel model.LikeModel

	if err := r.db.WithContext(ctx).First(&likeModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errs.NewDatabaseError("like.find_by_id", err)
	}

	like, err := mapper.LikeFromModel(&likeModel)
	if err != nil {
		return nil, errs.NewDatabaseError("like.find_by_id", err)
	}
	return like, nil
}

// Delete removes the row. A missing id becomes EntityNotFoundError.
func (r *LikeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.LikeModel{}, "id = ?", id)

	if result.Error != nil {
		r.logger.Error("Failed to delete like",
			zap.String("like_id", id.String()),
			zap.Error(result.Error))
		return errs.NewDatabaseError("like.delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewEntityNotFoundError("like", id.String())
	}
	return nil
}

// DeleteByUserAndTarget removes the user's like on one target. An unlike
// without a prior like becomes EntityNotFoundError.
func (r *LikeRepositoryImpl) DeleteByUserAndTarget(ctx context.Context, userID uuid.UUID, targetType vo.LikeTargetType, targetID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType.String(), targetID).
		Delete(&model.LikeModel{})

	if result.Error != nil {
		r.logger.Error("Failed to delete like by target",
			zap.String("user_id", userID.String()),
			zap.String("target_id", targetID.String()),
			zap.Error(result.Error))
		return errs.NewDatabaseError("like.delete_by_user_and_target", result.Error)
	}
	if result.RowsAffected == 0 {
		identifier := fmt.Sprintf("%s/%s/%s", userID, targetType, targetID)
		return errs.NewEntityNotFoundError("like", identifier)
	}
	return nil
}

// ExistsByUserAndTarget reports whether the user already likes the target.
func (r *LikeRepositoryImpl) ExistsByUserAndTarget(ctx context.Context, userID uuid.UUID, targetType vo.LikeTargetType, targetID uuid.UUID) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType.String(), targetID).
		Count(&count).Error
	if err != nil {
		return false, errs.NewDatabaseError("like.exists_by_user_and_target", err)
	}
	return count > 0, nil
}

// CountByTarget counts likes on one target.
func (r *LikeRepositoryImpl) CountByTarget(ctx context.Context, targetType vo.LikeTargetType, targetID uuid.UUID) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Where("target_type = ? AND target_id = ?", targetType.String(), targetID).
		Count(&count).Error
	if err != nil {
		return 0, errs.NewDatabaseError("like.count_by_target", err)
	}
	return count, nil
}
