package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
)

// Category is an admin-curated grouping for curricula.
type Category struct {
	ID          uuid.UUID
	Name        vo.CategoryName
	Description string
	Color       string
	Icon        string
	SortOrder   int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory validates the structural invariants and builds a Category.
// Description and icon are optional; color is required for the UI.
func NewCategory(id uuid.UUID, name vo.CategoryName, description, color, icon string, sortOrder int, isActive bool, createdAt, updatedAt time.Time) (*Category, error) {
	if id == uuid.Nil {
		return nil, errs.NewValidationError("id", "id_empty", "category id must not be empty")
	}
	if name.Value() == "" {
		return nil, errs.NewValidationError("name", "category_name_empty", "category name must be set")
	}
	if color == "" {
		return nil, errs.NewValidationError("color", "color_empty", "category color must not be empty")
	}
	if createdAt.IsZero() || updatedAt.IsZero() {
		return nil, errs.NewValidationError("timestamps", "timestamp_zero", "created_at and updated_at must be set")
	}

	return &Category{
		ID:          id,
		Name:        name,
		Description: description,
		Color:       color,
		Icon:        icon,
		SortOrder:   sortOrder,
		IsActive:    isActive,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

// Rename replaces the category name. Collision with another category is a
// domain-service concern, not checked here.
func (c *Category) Rename(name vo.CategoryName) {
	c.Name = name
	c.touch()
}

// Deactivate hides the category from listings.
func (c *Category) Deactivate() {
	c.IsActive = false
	c.touch()
}

// Activate restores a deactivated category.
func (c *Category) Activate() {
	c.IsActive = true
	c.touch()
}

func (c *Category) touch() {
	c.UpdatedAt = time.Now().UTC()
}
