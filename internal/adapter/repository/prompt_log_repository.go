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

type PromptLogRepositoryImpl struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPromptLogRepository creates the GORM-backed prompt log repository.
func NewPromptLogRepository(db *gorm.DB, logger *zap.Logger) repository.PromptLogRepository {
	return &PromptLogRepositoryImpl{db: db, logger: logger}
}

// Save appends one log record.
func (r *PromptLogRepositoryImpl) Save(ctx context.Context, log *entity.PromptLog) error {
	logModel := mapper.PromptLogToModel(log)

	if err := r.db.WithContext(ctx).Create(logModel).Error; err != nil {
		r.logger.Error("Failed to save prompt log",
			zap.String("summary_id", log.SummaryID.String()),
			zap.Error(err))
		return translateSaveError(err, "prompt_log", "id", log.ID.String(), "prompt_log.save")
	}
	return nil
}

// FindByID returns (nil, nil) when no log has the id.
func (r *PromptLogRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.PromptLog, error) {
	var logModel model.PromptLogModel

	if err := r.db.WithContext(ctx).First(&logModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errs.NewDatabaseError("prompt_log.find_by_id", err)
	}

	return mapper.PromptLogFromModel(&logModel), nil
}

// FindBySummary lists log records of one summary newest first.
func (r *PromptLogRepositoryImpl) FindBySummary(ctx context.Context, summaryID uuid.UUID, page, itemsPerPage int) (int64, []*entity.PromptLog, error) {
	query := r.db.WithContext(ctx).Model(&model.PromptLogModel{}).Where("summary_id = ?", summaryID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, nil, errs.NewDatabaseError("prompt_log.find_by_summary", err)
	}

	var models []model.PromptLogModel
	err := paginate(r.db.WithContext(ctx).
		Where("summary_id = ?", summaryID).
		Order("created_at DESC"), page, itemsPerPage).
		Find(&models).Error
	if err != nil {
		return 0, nil, errs.NewDatabaseError("prompt_log.find_by_summary", err)
	}

	return total, mapper.PromptLogsFromModels(models), nil
}

// CountBySummary counts log records of one summary.
func (r *PromptLogRepositoryImpl) CountBySummary(ctx context.Context, summaryID uuid.UUID) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.PromptLogModel{}).
		Where("summary_id = ?", summaryID).
		Count(&count).Error
	if err != nil {
		return 0, errs.NewDatabaseError("prompt_log.count_by_summary", err)
	}
	return count, nil
}
