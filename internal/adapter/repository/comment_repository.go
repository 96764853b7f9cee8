package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kikiru328/LLearn-sub001/internal/adapter/mapper"
	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
	"github.com/kikiru328/LLearn-sub001/internal/domain/repository"
	"github.com/kikiru328/LLearn-sub001/internal/infrastructure/db/model"
)

type CommentRepositoryImpl struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewCommentRepository creates the GORM-backed comment repository.
func NewCommentRepository(db *gorm.DB, logger *zap.Logger) repository.CommentRepository {
	return &CommentRepositoryImpl{db: db, logger: logger}
}

// Save inserts a new comment.
func (r *CommentRepositoryImpl) Save(ctx context.Context, comment *entity.Comment) error {
	commentModel := mapper.CommentToModel(comment)

	if err := r.db.WithContext(ctx).Create(commentModel).Error; err != nil {
		r.logger.Error("Failed to save comment",
			zap.String("comment_id", comment.ID.String()),
			zap.Error(err))
		return translateSaveError(err, "comment", "id", comment.ID.String(), "comment.save")
	}
	return nil
}

// FindByID returns (nil, nil) when no comment has the id.
func (r *CommentRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var commentModel model.CommentModel

	if err := r.db.WithContext(ctx).First(&commentModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errs.NewDatabaseError("comment.find_by_id", err)
	}

	return mapper.CommentFromModel(&commentModel), nil
}

// Update rewrites the content. A missing id becomes EntityNotFoundError.
func (r *CommentRepositoryImpl) Update(ctx context.Context, comment *entity.Comment) error {
	commentModel := mapper.CommentToModel(comment)

	result := r.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("id = ?", commentModel.ID).
		Select("content", "updated_at").
		Updates(commentModel)

	if result.Error != nil {
		r.logger.Error("Failed to update comment",
			zap.String("comment_id", comment.ID.String()),
			zap.Error(result.Error))
		return errs.NewDatabaseError("comment.update", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewEntityNotFoundError("comment", comment.ID.String())
	}
	return nil
}

// Delete removes the row. A missing id becomes EntityNotFoundError.
func (r *CommentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CommentModel{}, "id = ?", id)

	if result.Error != nil {
		r.logger.Error("Failed to delete comment",
			zap.String("comment_id", id.String()),
			zap.Error(result.Error))
		return errs.NewDatabaseError("comment.delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewEntityNotFoundError("comment", id.String())
	}
	return nil
}

// FindBySummary lists comments on one summary oldest first, the reading
// order of a thread.
func (r *CommentRepositoryImpl) FindBySummary(ctx context.Context, summaryID uuid.UUID, page, itemsPerPage int) (int64, []*entity.Comment, error) {
	query := r.db.WithContext(ctx).Model(&model.CommentModel{}).Where("summary_id = ?", summaryID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, nil, errs.NewDatabaseError("comment.find_by_summary", err)
	}

	var models []model.CommentModel
	err := paginate(r.db.WithContext(ctx).
		Where("summary_id = ?", summaryID).
		Order("created_at ASC"), page, itemsPerPage).
		Find(&models).Error
	if err != nil {
		return 0, nil, errs.NewDatabaseError("comment.find_by_summary", err)
	}

	return total, mapper.CommentsFromModels(models), nil
}

// CountBySummary counts comments on one summary.
func (r *CommentRepositoryImpl) CountBySummary(ctx context.Context, summaryID uuid.UUID) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("summary_id = ?", summaryID).
		Count(&count).Error
	if err != nil {
		return 0, errs.NewDatabaseError("comment.count_by_summary", err)
	}
	return count, nil
}
