package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
)

// RegisterParams is the sign-up request.
type RegisterParams struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Nickname string `json:"nickname" validate:"required,min=2,max=30"`
}

// LoginParams is the login request.
type LoginParams struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileParams changes the caller's nickname.
type UpdateProfileParams struct {
	Nickname string `json:"nickname" validate:"required,min=2,max=30"`
}

// AuthTokens is the login response.
type AuthTokens struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// UserResponse is the outbound user shape. The password hash never leaves
// the use case layer.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Nickname  string    `json:"nickname"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserResponse converts a user entity to its outbound shape.
func NewUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Nickname:  user.Nickname,
		Role:      user.Role.String(),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// UserListResponse is one page of users.
type UserListResponse struct {
	Meta  PageMeta        `json:"meta"`
	Items []*UserResponse `json:"items"`
}

// NewUserListResponse builds a user page.
func NewUserListResponse(total int64, page, itemsPerPage int, users []*entity.User) *UserListResponse {
	items := make([]*UserResponse, len(users))
	for i, user := range users {
		items[i] = NewUserResponse(user)
	}
	return &UserListResponse{Meta: NewPageMeta(total, page, itemsPerPage), Items: items}
}
