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

type CategoryRepositoryImpl struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewCategoryRepository creates the GORM-backed category repository.
func NewCategoryRepository(db *gorm.DB, logger *zap.Logger) repository.CategoryRepository {
	return &CategoryRepositoryImpl{db: db, logger: logger}
}

// Save inserts a new category. A taken name becomes DuplicateEntityError.
func (r *CategoryRepositoryImpl) Save(ctx context.Context, category *entity.Category) error {
	categoryModel := mapper.CategoryToModel(category)

	if err := r.db.WithContext(ctx).Create(categoryModel).Error; err != nil {
		r.logger.Error("Failed to save category",
			zap.String("name", category.Name.Value()),
			zap.Error(err))
		return translateSaveError(err, "category", "name", category.Name.Value(), "category.save")
	}
	return nil
}

// FindByID returns (nil, nil) when no category has the id.
func (r *CategoryRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel

	if err := r.db.WithContext(ctx).First(&categoryModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errs.NewDatabaseError("category.find_by_id", err)
	}

	category, err := mapper.CategoryFromModel(&categoryModel)
	if err != nil {
		return nil, errs.NewDatabaseError("category.find_by_id", err)
	}
	return category, nil
}

// FindByName looks a category up by name, (nil, nil) when absent.
func (r *CategoryRepositoryImpl) FindByName(ctx context.Context, name vo.CategoryName) (*entity.Category, error) {
	var categoryModel model.CategoryModel

	err := r.db.WithContext(ctx).Where("name = ?", name.Value()).First(&categoryModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errs.NewDatabaseError("category.find_by_name", err)
	}

	category, err := mapper.CategoryFromModel(&categoryModel)
	if err != nil {
		return nil, errs.NewDatabaseError("category.find_by_name", err)
	}
	return category, nil
}

// Update rewrites the row. A missing id becomes EntityNotFoundError; a name
// collision with another category becomes DuplicateEntityError.
func (r *CategoryRepositoryImpl) Update(ctx context.Context, category *entity.Category) error {
	categoryModel := mapper.CategoryToModel(category)

	result := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ?", categoryModel.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(categoryModel)

	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return errs.NewDuplicateEntityError("category", "name", category.Name.Value())
		}
		r.logger.Error("Failed to update category",
			zap.String("category_id", category.ID.String()),
			zap.Error(result.Error))
		return errs.NewDatabaseError("category.update", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewEntityNotFoundError("category", category.ID.String())
	}
	return nil
}

// Delete removes the row. A missing id becomes EntityNotFoundError.
func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CategoryModel{}, "id = ?", id)

	if result.Error != nil {
		r.logger.Error("Failed to delete category",
			zap.String("category_id", id.String()),
			zap.Error(result.Error))
		return errs.NewDatabaseError("category.delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewEntityNotFoundError("category", id.String())
	}
	return nil
}

// ExistsByName reports whether any category has the name.
func (r *CategoryRepositoryImpl) ExistsByName(ctx context.Context, name vo.CategoryName) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("name = ?", name.Value()).
		Count(&count).Error
	if err != nil {
		return false, errs.NewDatabaseError("category.exists_by_name", err)
	}
	return count > 0, nil
}

// FindActive lists active categories in display order.
func (r *CategoryRepositoryImpl) FindActive(ctx context.Context) ([]*entity.Category, error) {
	var models []model.CategoryModel

	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, name ASC").
		Find(&models).Error
	if err != nil {
		return nil, errs.NewDatabaseError("category.find_active", err)
	}

	categories, err := mapper.CategoriesFromModels(models)
	if err != nil {
		return nil, errs.NewDatabaseError("category.find_active", err)
	}
	return categories, nil
}

// FindAll lists every category, active or not, in display order.
func (r *CategoryRepositoryImpl) FindAll(ctx context.Context, page, itemsPerPage int) (int64, []*entity.Category, error) {
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.CategoryModel{}).Count(&total).Error; err != nil {
		return 0, nil, errs.NewDatabaseError("category.find_all", err)
	}

	var models []model.CategoryModel
	err := paginate(r.db.WithContext(ctx).Order("sort_order ASC, name ASC"), page, itemsPerPage).
		Find(&models).Error
	if err != nil {
		return 0, nil, errs.NewDatabaseError("category.find_all", err)
	}

	categories, err := mapper.CategoriesFromModels(models)
	if err != nil {
		return 0, nil, errs.NewDatabaseError("category.find_all", err)
	}
	return total, categories, nil
}
