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
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
	"github.com/kikiru328/LLearn-sub001/internal/infrastructure/db/model"
)

type CurriculumRepositoryImpl struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewCurriculumRepository creates the GORM-backed curriculum repository.
func NewCurriculumRepository(db *gorm.DB, logger *zap.Logger) repository.CurriculumRepository {
	return &CurriculumRepositoryImpl{db: db, logger: logger}
}

func preloadWeeks(db *gorm.DB) *gorm.DB {
	return db.Preload("Weeks", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

// Save inserts a new curriculum with its week rows in one transaction.
func (r *CurriculumRepositoryImpl) Save(ctx context.Context, curriculum *entity.Curriculum) error {
	curriculumModel := mapper.CurriculumToModel(curriculum)

	if err := r.db.WithContext(ctx).Create(curriculumModel).Error; err != nil {
		r.logger.Error("Failed to save curriculum",
			zap.String("curriculum_id", curriculum.ID.String()),
			zap.Error(err))
		return translateSaveError(err, "curriculum", "id", curriculum.ID.String(), "curriculum.save")
	}
	return nil
}

// FindByID returns (nil, nil) when no curriculum has the id. Weeks load in
// authoring order.
func (r *CurriculumRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.Curriculum, error) {
	var curriculumModel model.CurriculumModel

	err := preloadWeeks(r.db.WithContext(ctx)).First(&curriculumModel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errs.NewDatabaseError("curriculum.find_by_id", err)
	}

	curriculum, err := mapper.CurriculumFromModel(&curriculumModel)
	if err != nil {
		return nil, errs.NewDatabaseError("curriculum.find_by_id", err)
	}
	return curriculum, nil
}

// Update rewrites the curriculum row and replaces its week rows wholesale
// inside one transaction. A missing id becomes EntityNotFoundError.
func (r *CurriculumRepositoryImpl) Update(ctx context.Context, curriculum *entity.Curriculum) error {
	curriculumModel := mapper.CurriculumToModel(curriculum)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.CurriculumModel{}).
			Where("id = ?", curriculumModel.ID).
			Select("title", "goal", "visibility", "updated_at").
			Updates(curriculumModel)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewEntityNotFoundError("curriculum", curriculum.ID.String())
		}

		if err := tx.Where("curriculum_id = ?", curriculumModel.ID).
			Delete(&model.WeekTopicModel{}).Error; err != nil {
			return err
		}
		if len(curriculumModel.Weeks) == 0 {
			return nil
		}
		return tx.Create(&curriculumModel.Weeks).Error
	})

	if err != nil {
		if errs.IsNotFound(err) {
			return err
		}
		r.logger.Error("Failed to update curriculum",
			zap.String("curriculum_id", curriculum.ID.String()),
			zap.Error(err))
		return errs.NewDatabaseError("curriculum.update", err)
	}
	return nil
}

// Delete removes the curriculum; week rows cascade.
func (r *CurriculumRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CurriculumModel{}, "id = ?", id)

	if result.Error != nil {
		r.logger.Error("Failed to delete curriculum",
			zap.String("curriculum_id", id.String()),
			zap.Error(result.Error))
		return errs.NewDatabaseError("curriculum.delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewEntityNotFoundError("curriculum", id.String())
	}
	return nil
}

// FindByUser lists curricula of one owner newest first.
func (r *CurriculumRepositoryImpl) FindByUser(ctx context.Context, userID uuid.UUID, page, itemsPerPage int) (int64, []*entity.Curriculum, error) {
	query := r.db.WithContext(ctx).Model(&model.CurriculumModel{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, nil, errs.NewDatabaseError("curriculum.find_by_user", err)
	}

	var models []model.CurriculumModel
	err := paginate(preloadWeeks(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at DESC"), page, itemsPerPage).
		Find(&models).Error
	if err != nil {
		return 0, nil, errs.NewDatabaseError("curriculum.find_by_user", err)
	}

	curricula, err := mapper.CurriculumsFromModels(models)
	if err != nil {
		return 0, nil, errs.NewDatabaseError("curriculum.find_by_user", err)
	}
	return total, curricula, nil
}

// FindPublic lists PUBLIC curricula of all users newest first.
func (r *CurriculumRepositoryImpl) FindPublic(ctx context.Context, page, itemsPerPage int) (int64, []*entity.Curriculum, error) {
	query := r.db.WithContext(ctx).Model(&model.CurriculumModel{}).
		Where("visibility = ?", vo.VisibilityPublic.String())

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, nil, errs.NewDatabaseError("curriculum.find_public", err)
	}

	var models []model.CurriculumModel
	err := paginate(preloadWeeks(r.db.WithContext(ctx)).
		Where("visibility = ?", vo.VisibilityPublic.String()).
		Order("created_at DESC"), page, itemsPerPage).
		Find(&models).Error
	if err != nil {
		return 0, nil, errs.NewDatabaseError("curriculum.find_public", err)
	}

	curricula, err := mapper.CurriculumsFromModels(models)
	if err != nil {
		return 0, nil, errs.NewDatabaseError("curriculum.find_public", err)
	}
	return total, curricula, nil
}

// CountByUser counts curricula of one owner.
func (r *CurriculumRepositoryImpl) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.CurriculumModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, errs.NewDatabaseError("curriculum.count_by_user", err)
	}
	return count, nil
}
