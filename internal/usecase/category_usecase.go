package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
	"github.com/kikiru328/LLearn-sub001/internal/domain/repository"
	"github.com/kikiru328/LLearn-sub001/internal/domain/service"
	"github.com/kikiru328/LLearn-sub001/internal/usecase/dto"
)

// CategoryUseCase handles the admin-curated category catalog.
type CategoryUseCase struct {
	logger             *zap.Logger
	tagService         *service.TagService
	categoryRepository repository.CategoryRepository
}

// NewCategoryUseCase creates the category use case.
func NewCategoryUseCase(logger *zap.Logger, tagService *service.TagService, categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{logger: logger, tagService: tagService, categoryRepository: categoryRepo}
}

// CreateCategory adds a category. Admin only; a taken name is rejected.
func (uc *CategoryUseCase) CreateCategory(ctx context.Context, actor Actor, params dto.CreateCategoryParams) (*dto.CategoryResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	if _, err := uc.tagService.ValidateCategoryCreation(ctx, params.Name, uuid.Nil); err != nil {
		return nil, err
	}

	category, err := uc.tagService.CreateCategory(ctx, uuid.New(), params.Name, params.Description, params.Color, params.Icon, params.SortOrder, time.Time{})
	if err != nil {
		return nil, err
	}

	if err := uc.categoryRepository.Save(ctx, category); err != nil {
		return nil, err
	}

	uc.logger.Info("Category created",
		zap.String("category_id", category.ID.String()),
		zap.String("name", category.Name.Value()))
	return dto.NewCategoryResponse(category), nil
}

// UpdateCategory applies a partial change. Admin only; renaming to another
// category's name is rejected.
func (uc *CategoryUseCase) UpdateCategory(ctx context.Context, actor Actor, id uuid.UUID, params dto.UpdateCategoryParams) (*dto.CategoryResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	category, err := uc.categoryRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errs.NewEntityNotFoundError("category", id.String())
	}

	if params.Name != nil {
		name, err := uc.tagService.ValidateCategoryCreation(ctx, *params.Name, category.ID)
		if err != nil {
			return nil, err
		}
		category.Rename(name)
	}
	if params.Description != nil {
		category.Description = *params.Description
	}
	if params.Color != nil {
		category.Color = *params.Color
	}
	if params.Icon != nil {
		category.Icon = *params.Icon
	}
	if params.SortOrder != nil {
		category.SortOrder = *params.SortOrder
	}
	if params.IsActive != nil {
		if *params.IsActive {
			category.Activate()
		} else {
			category.Deactivate()
		}
	}

	if err := uc.categoryRepository.Update(ctx, category); err != nil {
		return nil, err
	}
	return dto.NewCategoryResponse(category), nil
}

// DeleteCategory removes a category. Admin only.
func (uc *CategoryUseCase) DeleteCategory(ctx context.Context, actor Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}

	if err := uc.categoryRepository.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("Category deleted", zap.String("category_id", id.String()))
	return nil
}

// GetCategory returns one category by id.
func (uc *CategoryUseCase) GetCategory(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error) {
	category, err := uc.categoryRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errs.NewEntityNotFoundError("category", id.String())
	}
	return dto.NewCategoryResponse(category), nil
}

// ListActive lists the active categories in display order, the public
// catalog view.
func (uc *CategoryUseCase) ListActive(ctx context.Context) ([]*dto.CategoryResponse, error) {
	categories, err := uc.categoryRepository.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewCategoryResponses(categories), nil
}

// ListAll pages all categories, active or not. Admin only.
func (uc *CategoryUseCase) ListAll(ctx context.Context, actor Actor, pageParams dto.PageParams) (*dto.CategoryListResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	page, itemsPerPage := pageParams.Normalized()
	total, categories, err := uc.categoryRepository.FindAll(ctx, page, itemsPerPage)
	if err != nil {
		return nil, err
	}
	return dto.NewCategoryListResponse(total, page, itemsPerPage, categories), nil
}
