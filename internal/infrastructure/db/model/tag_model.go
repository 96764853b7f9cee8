package model

import (
	"time"

	"github.com/google/uuid"
)

// TagModel maps the tags table.
type TagModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"size:20;not null;uniqueIndex:uq_tags_name"`
	UsageCount int       `gorm:"not null;default:0"`
	CreatedBy  uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM.
func (TagModel) TableName() string {
	return "tags"
}

// CategoryModel maps the categories table.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:30;not null;uniqueIndex:uq_categories_name"`
	Description string    `gorm:"size:500"`
	Color       string    `gorm:"size:20;not null"`
	Icon        string    `gorm:"size:50"`
	SortOrder   int       `gorm:"not null;default:0"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
