package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
)

// CreateTagParams creates or reuses a tag by name.
type CreateTagParams struct {
	Name string `json:"name" validate:"required,min=1,max=20"`
}

// ResolveTagsParams resolves a batch of names to tags, creating the missing
// ones. Blank entries and duplicates are dropped before resolution.
type ResolveTagsParams struct {
	Names []string `json:"names" validate:"required,min=1,max=10,dive,max=20"`
}

// TagResponse is the outbound tag shape.
type TagResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	UsageCount int       `json:"usage_count"`
	IsPopular  bool      `json:"is_popular"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewTagResponse converts a tag entity to its outbound shape.
func NewTagResponse(tag *entity.Tag) *TagResponse {
	if tag == nil {
		return nil
	}
	return &TagResponse{
		ID:         tag.ID,
		Name:       tag.Name.Value(),
		UsageCount: tag.UsageCount,
		IsPopular:  tag.IsPopular(),
		CreatedAt:  tag.CreatedAt,
	}
}

// NewTagResponses converts a batch of tag entities.
func NewTagResponses(tags []*entity.Tag) []*TagResponse {
	items := make([]*TagResponse, len(tags))
	for i, tag := range tags {
		items[i] = NewTagResponse(tag)
	}
	return items
}

// TagListResponse is one page of tags.
type TagListResponse struct {
	Meta  PageMeta       `json:"meta"`
	Items []*TagResponse `json:"items"`
}

// NewTagListResponse builds a tag page.
func NewTagListResponse(total int64, page, itemsPerPage int, tags []*entity.Tag) *TagListResponse {
	return &TagListResponse{Meta: NewPageMeta(total, page, itemsPerPage), Items: NewTagResponses(tags)}
}

// CreateCategoryParams creates an admin-curated category.
type CreateCategoryParams struct {
	Name        string `json:"name" validate:"required,min=2,max=30"`
	Description string `json:"description" validate:"max=500"`
	Color       string `json:"color" validate:"required,max=20"`
	Icon        string `json:"icon" validate:"max=50"`
	SortOrder   int    `json:"sort_order" validate:"min=0"`
}

// UpdateCategoryParams is the partial-update request; nil fields keep
// their current value.
type UpdateCategoryParams struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=30"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Color       *string `json:"color" validate:"omitempty,max=20"`
	Icon        *string `json:"icon" validate:"omitempty,max=50"`
	SortOrder   *int    `json:"sort_order" validate:"omitempty,min=0"`
	IsActive    *bool   `json:"is_active"`
}

// CategoryResponse is the outbound category shape.
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon,omitempty"`
	SortOrder   int       `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewCategoryResponse converts a category entity to its outbound shape.
func NewCategoryResponse(category *entity.Category) *CategoryResponse {
	if category == nil {
		return nil
	}
	return &CategoryResponse{
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

// NewCategoryResponses converts a batch of category entities.
func NewCategoryResponses(categories []*entity.Category) []*CategoryResponse {
	items := make([]*CategoryResponse, len(categories))
	for i, category := range categories {
		items[i] = NewCategoryResponse(category)
	}
	return items
}

// CategoryListResponse is one page of categories.
type CategoryListResponse struct {
	Meta  PageMeta            `json:"meta"`
	Items []*CategoryResponse `json:"items"`
}

// NewCategoryListResponse builds a category page.
func NewCategoryListResponse(total int64, page, itemsPerPage int, categories []*entity.Category) *CategoryListResponse {
	return &CategoryListResponse{Meta: NewPageMeta(total, page, itemsPerPage), Items: NewCategoryResponses(categories)}
}
