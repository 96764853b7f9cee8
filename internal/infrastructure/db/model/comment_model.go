package model

import (
	"time"

	"github.com/google/uuid"
)

// CommentModel maps the comments table.
type CommentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	SummaryID uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"size:1000;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	User    UserModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Summary SummaryModel `gorm:"foreignKey:SummaryID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}

// LikeModel maps the likes table. The composite unique index enforces one
// like per user per target.
type LikeModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_likes_user_target"`
	TargetType string    `gorm:"size:20;not null;uniqueIndex:uq_likes_user_target"`
	TargetID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_likes_user_target"`
	CreatedAt  time.Time `gorm:"not null"`

	User UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM.
func (LikeModel) TableName() string {
	return "likes"
}
