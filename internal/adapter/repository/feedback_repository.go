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

type FeedbackRepositoryImpl struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewFeedbackRepository creates the GORM-backed feedback repository.
func NewFeedbackRepository(db *gorm.DB, logger *zap.Logger) repository.FeedbackRepository {
	return &FeedbackRepositoryImpl{db: db, logger: logger}
}

// Save inserts a feedback. A second feedback for the same summary hits the
// unique index and becomes DuplicateEntityError.
func (r *FeedbackRepositoryImpl) Save(ctx context.Context, feedback *entity.Feedback) error {
	feedbackModel := mapper.FeedbackToModel(feedback)

	if err := r.db.WithContext(ctx).Create(feedbackModel).Error; err != nil {
		r.logger.Error("Failed to save feedback",
			zap.String("summary_id", feedback.SummaryID.String()),
			zap.Error(err))
		return translateSaveError(err, "feedback", "summary_id", feedback.SummaryID.String(), "feedback.save")
	}
	return nil
}

// FindByID returns (nil, nil) when no feedback has the id.
func (r *FeedbackRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error) {
	var feedbackModel model.FeedbackModel

	if err := r.db.WithContext(ctx).First(&feedbackModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errs.NewDatabaseError("feedback.find_by_id", err)
	}

	feedback, err := mapper.FeedbackFromModel(&feedbackModel)
	if err != nil {
		return nil, errs.NewDatabaseError("feedback.find_by_id", err)
	}
	return feedback, nil
}

// FindBySummary returns the summary's single feedback, or (nil, nil).
func (r *FeedbackRepositoryImpl) FindBySummary(ctx context.Context, summaryID uuid.UUID) (*entity.Feedback, error) {
	var feedbackModel model.FeedbackModel

	err := r.db.WithContext(ctx).Where("summary_id = ?", summaryID).First(&feedbackModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errs.NewDatabaseError("feedback.find_by_summary", err)
	}

	feedback, err := mapper.FeedbackFromModel(&feedbackModel)
	if err != nil {
		return nil, errs.NewDatabaseError("feedback.find_by_summary", err)
	}
	return feedback, nil
}

// Delete removes the row. A missing id becomes EntityNotFoundError.
func (r *FeedbackRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.FeedbackModel{}, "id = ?", id)

	if result.Error != nil {
		r.logger.Error("Failed to delete feedback",
			zap.String("feedback_id", id.String()),
			zap.Error(result.Error))
		return errs.NewDatabaseError("feedback.delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewEntityNotFoundError("feedback", id.String())
	}
	return nil
}

// ExistsBySummary reports whether the summary already has feedback.
func (r *FeedbackRepositoryImpl) ExistsBySummary(ctx context.Context, summaryID uuid.UUID) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.FeedbackModel{}).
		Where("summary_id = ?", summaryID).
		Count(&count).Error
	if err != nil {
		return false, errs.NewDatabaseError("feedback.exists_by_summary", err)
	}
	return count > 0, nil
}

// FindByUser lists feedbacks on one author's summaries newest first. The
// join goes through summaries because feedback rows carry no author.
func (r *FeedbackRepositoryImpl) FindByUser(ctx context.Context, userID uuid.UUID, page, itemsPerPage int) (int64, []*entity.Feedback, error) {
	base := r.db.WithContext(ctx).
		Model(&model.FeedbackModel{}).
		Joins("JOIN summaries ON summaries.id = feedbacks.summary_id").
		Where("summaries.user_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return 0, nil, errs.NewDatabaseError("feedback.find_by_user", err)
	}

	var models []model.FeedbackModel
	err := paginate(r.db.WithContext(ctx).
		Joins("JOIN summaries ON summaries.id = feedbacks.summary_id").
		Where("summaries.user_id = ?", userID).
		Order("feedbacks.created_at DESC"), page, itemsPerPage).
		Find(&models).Error
	if err != nil {
		return 0, nil, errs.NewDatabaseError("feedback.find_by_user", err)
	}

	feedbacks, err := mapper.FeedbacksFromModels(models)
	if err != nil {
		return 0, nil, errs.NewDatabaseError("feedback.find_by_user", err)
	}
	return total, feedbacks, nil
}

// FindByCurriculum lists feedbacks on one curriculum's summaries newest
// first.
func (r *FeedbackRepositoryImpl) FindByCurriculum(ctx context.Context, curriculumID uuid.UUID, page, itemsPerPage int) (int64, []*entity.Feedback, error) {
	base := r.db.WithContext(ctx).
		Model(&model.FeedbackModel{}).
		Joins("JOIN summaries ON summaries.id = feedbacks.summary_id").
		Where("summaries.curriculum_id = ?", curriculumID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return 0, nil, errs.NewDatabaseError("feedback.find_by_curriculum", err)
	}

	var models []model.FeedbackModel
	err := paginate(r.db.WithContext(ctx).
		Joins("JOIN summaries ON summaries.id = feedbacks.summary_id").
		Where("summaries.curriculum_id = ?", curriculumID).
		Order("feedbacks.created_at DESC"), page, itemsPerPage).
		Find(&models).Error
	if err != nil {
		return 0, nil, errs.NewDatabaseError("feedback.find_by_curriculum", err)
	}

	feedbacks, err := mapper.FeedbacksFromModels(models)
	if err != nil {
		return 0, nil, errs.NewDatabaseError("feedback.find_by_curriculum", err)
	}
	return total, feedbacks, nil
}
