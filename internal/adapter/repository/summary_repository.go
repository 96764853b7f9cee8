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

type SummaryRepositoryImpl struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewSummaryRepository creates the GORM-backed summary repository.
func NewSummaryRepository(db *gorm.DB, logger *zap.Logger) repository.SummaryRepository {
	return &SummaryRepositoryImpl{db: db, logger: logger}
}

// Save inserts a new summary.
func (r *SummaryRepositoryImpl) Save(ctx context.Context, summary *entity.Summary) error {
	summaryModel := mapper.SummaryToModel(summary)

	if err := r.db.WithContext(ctx).Create(summaryModel).Error; err != nil {
		r.logger.Error("Failed to save summary",
			zap.String("summary_id", summary.ID.String()),
			zap.Error(err))
		return translateSaveError(err, "summary", "id", summary.ID.String(), "summary.save")
	}
	return nil
}

// FindByID returns (nil, nil) when no summary has the id.
func (r *SummaryRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.Summary, error) {
	var summaryModel model.SummaryModel

	if err := r.db.WithContext(ctx).First(&summaryModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errs.NewDatabaseError("summary.find_by_id", err)
	}

	summary, err := mapper.SummaryFromModel(&summaryModel)
	if err != nil {
		return nil, errs.NewDatabaseError("summary.find_by_id", err)
	}
	return summary, nil
}

// Update rewrites the row. A missing id becomes EntityNotFoundError.
func (r *SummaryRepositoryImpl) Update(ctx context.Context, summary *entity.Summary) error {
	summaryModel := mapper.SummaryToModel(summary)

	result := r.db.WithContext(ctx).
		Model(&model.SummaryModel{}).
		Where("id = ?", summaryModel.ID).
		Select("content", "is_public", "updated_at").
		Updates(summaryModel)

	if result.Error != nil {
		r.logger.Error("Failed to update summary",
			zap.String("summary_id", summary.ID.String()),
			zap.Error(result.Error))
		return errs.NewDatabaseError("summary.update", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewEntityNotFoundError("summary", summary.ID.String())
	}
	return nil
}

// Delete removes the row. Feedback, comments and prompt logs cascade.
func (r *SummaryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.SummaryModel{}, "id = ?", id)

	if result.Error != nil {
		r.logger.Error("Failed to delete summary",
			zap.String("summary_id", id.String()),
			zap.Error(result.Error))
		return errs.NewDatabaseError("summary.delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewEntityNotFoundError("summary", id.String())
	}
	return nil
}

// FindByCurriculum lists summaries of one curriculum by week, then newest
// first within a week.
func (r *SummaryRepositoryImpl) FindByCurriculum(ctx context.Context, curriculumID uuid.UUID, page, itemsPerPage int) (int64, []*entity.Summary, error) {
	query := r.db.WithContext(ctx).Model(&model.SummaryModel{}).Where("curriculum_id = ?", curriculumID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, nil, errs.NewDatabaseError("summary.find_by_curriculum", err)
	}

	var models []model.SummaryModel
	err := paginate(r.db.WithContext(ctx).
		Where("curriculum_id = ?", curriculumID).
		Order("week_number ASC, created_at DESC"), page, itemsPerPage).
		Find(&models).Error
	if err != nil {
		return 0, nil, errs.NewDatabaseError("summary.find_by_curriculum", err)
	}

	summaries, err := mapper.SummariesFromModels(models)
	if err != nil {
		return 0, nil, errs.NewDatabaseError("summary.find_by_curriculum", err)
	}
	return total, summaries, nil
}

// FindByUser lists summaries of one author newest first.
func (r *SummaryRepositoryImpl) FindByUser(ctx context.Context, userID uuid.UUID, page, itemsPerPage int) (int64, []*entity.Summary, error) {
	query := r.db.WithContext(ctx).Model(&model.SummaryModel{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, nil, errs.NewDatabaseError("summary.find_by_user", err)
	}

	var models []model.SummaryModel
	err := paginate(r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC"), page, itemsPerPage).
		Find(&models).Error
	if err != nil {
		return 0, nil, errs.NewDatabaseError("summary.find_by_user", err)
	}

	summaries, err := mapper.SummariesFromModels(models)
	if err != nil {
		return 0, nil, errs.NewDatabaseError("summary.find_by_user", err)
	}
	return total, summaries, nil
}

// ExistsByCurriculumAndWeek reports whether the week already has a summary.
func (r *SummaryRepositoryImpl) ExistsByCurriculumAndWeek(ctx context.Context, curriculumID uuid.UUID, weekNumber int) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.SummaryModel{}).
		Where("curriculum_id = ? AND week_number = ?", curriculumID, weekNumber).
		Count(&count).Error
	if err != nil {
		return false, errs.NewDatabaseError("summary.exists_by_curriculum_and_week", err)
	}
	return count > 0, nil
}

// CountByCurriculum counts summaries of one curriculum.
func (r *SummaryRepositoryImpl) CountByCurriculum(ctx context.Context, curriculumID uuid.UUID) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.SummaryModel{}).
		Where("curriculum_id = ?", curriculumID).
		Count(&count).Error
	if err != nil {
		return 0, errs.NewDatabaseError("summary.count_by_curriculum", err)
	}
	return count, nil
}
