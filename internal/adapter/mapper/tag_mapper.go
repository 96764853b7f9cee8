package mapper

import (
	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
	"github.com/kikiru328/LLearn-sub001/internal/infrastructure/db/model"
)

// TagToModel converts a tag entity to its DB model.
func TagToModel(tag *entity.Tag) *model.TagModel {
	if tag == nil {
		return nil
	}

	return &model.TagModel{
		ID:         tag.ID,
		Name:       tag.Name.Value(),
		UsageCount: tag.UsageCount,
		CreatedBy:  tag.CreatedBy,
		CreatedAt:  tag.CreatedAt,
		UpdatedAt:  tag.UpdatedAt,
	}
}

// TagFromModel converts a DB model back to a tag entity.
func TagFromModel(m *model.TagModel) (*entity.Tag, error) {
	if m == nil {
		return nil, nil
	}

	name, err := vo.NewTagName(m.Name)
	if err != nil {
		return nil, err
	}

	return &entity.Tag{
		ID:         m.ID,
		Name:       name,
		UsageCount: m.UsageCount,
		CreatedBy:  m.CreatedBy,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}, nil
}

// TagsFromModels converts a slice of DB models to tag entities.
func TagsFromModels(models []model.TagModel) ([]*entity.Tag, error) {
	tags := make([]*entity.Tag, len(models))
	for i := range models {
		tag, err := TagFromModel(&models[i])
		if err != nil {
			return nil, err
		}
		tags[i] = tag
	}
	return tags, nil
}

// CategoryToModel converts a category entity to its DB model.
func CategoryToModel(category *entity.Category) *model.CategoryModel {
	if category == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:          category.ID,
		Name:        category.Name.Value(),
		Description: category.Description,
		Color:       category.Color,
		Icon:        category.Icon,
		SortOrder:   category.SortOrder,
		IsActive:    category.IsActive,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

// CategoryFromModel converts a DB model back to a category entity.
func CategoryFromModel(m *model.CategoryModel) (*entity.Category, error) {
	if m == nil {
		return nil, nil
	}

	name, err := vo.NewCategoryName(m.Name)
	if err != nil {
		return nil, err
	}

	return &entity.Category{
		ID:          m.ID,
		Name:        name,
		Description: m.Description,
		Color:       m.Color,
		Icon:        m.Icon,
		SortOrder:   m.SortOrder,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}

// CategoriesFromModels converts a slice of DB models to category entities.
func CategoriesFromModels(models []model.CategoryModel) ([]*entity.Category, error) {
	categories := make([]*entity.Category, len(models))
	for i := range models {
		category, err := CategoryFromModel(&models[i])
		if err != nil {
			return nil, err
		}
		categories[i] = category
	}
	return categories, nil
}
