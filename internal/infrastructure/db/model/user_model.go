// Package model holds the GORM table mappings. Domain entities never leak
// into this package; adapter mappers convert in both directions.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel maps the users table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"size:255;not null;uniqueIndex:uq_users_email"`
	Nickname     string    `gorm:"size:30;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	Role         string    `gorm:"type:user_role;not null;default:USER"`
	IsActive     bool      `gorm:"not null;default:true"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
