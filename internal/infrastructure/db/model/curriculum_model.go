package model

import (
	"time"

	"github.com/google/uuid"
)

// CurriculumModel maps the curriculums table.
type CurriculumModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Title      string    `gorm:"size:100;not null"`
	Goal       string    `gorm:"size:500"`
	Visibility string    `gorm:"size:10;not null;default:PRIVATE"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`

	User  UserModel        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Weeks []WeekTopicModel `gorm:"foreignKey:CurriculumID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM.
func (CurriculumModel) TableName() string {
	return "curriculums"
}

// WeekTopicModel maps the week_topics table. Rows order by position, the
// authoring order within the parent curriculum.
type WeekTopicModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CurriculumID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_week_topics_curriculum_week"`
	WeekNumber   int       `gorm:"not null;uniqueIndex:uq_week_topics_curriculum_week"`
	Topic        string    `gorm:"size:255;not null"`
	Position     int       `gorm:"not null"`
}

// TableName specifies the table name for GORM.
func (WeekTopicModel) TableName() string {
	return "week_topics"
}
