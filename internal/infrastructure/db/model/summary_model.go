package model

import (
	"time"

	"github.com/google/uuid"
)

// SummaryModel maps the summaries table.
type SummaryModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	CurriculumID uuid.UUID `gorm:"type:uuid;not null;index"`
	WeekNumber   int       `gorm:"not null"`
	Content      string    `gorm:"type:text;not null"`
	IsPublic     bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`

	User       UserModel       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Curriculum CurriculumModel `gorm:"foreignKey:CurriculumID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM.
func (SummaryModel) TableName() string {
	return "summaries"
}

// FeedbackModel maps the feedbacks table. The unique index on summary_id
// enforces the one-to-one with summaries.
type FeedbackModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SummaryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_feedbacks_summary"`
	Reviewer  string    `gorm:"size:100;not null"`
	Comment   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`

	Summary SummaryModel `gorm:"foreignKey:SummaryID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM.
func (FeedbackModel) TableName() string {
	return "feedbacks"
}

// PromptLogModel maps the prompt_logs table.
type PromptLogModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	SummaryID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Prompt         string    `gorm:"type:text;not null"`
	Response       string    `gorm:"type:text"`
	ModelName      string    `gorm:"size:100;not null"`
	LatencySeconds float64   `gorm:"not null"`
	CreatedAt      time.Time `gorm:"not null"`

	Summary SummaryModel `gorm:"foreignKey:SummaryID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM.
func (PromptLogModel) TableName() string {
	return "prompt_logs"
}
