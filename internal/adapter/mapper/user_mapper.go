// Package mapper converts between domain entities and GORM models. The
// conversion back into entities rebuilds value objects, so a corrupt row
// surfaces as an error instead of a half-valid aggregate.
package mapper

import (
	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
	"github.com/kikiru328/LLearn-sub001/internal/infrastructure/db/model"
)

// UserToModel converts a user entity to its DB model.
func UserToModel(user *entity.User) *model.UserModel {
	if user == nil {
		return nil
	}

	return &model.UserModel{
		ID:           user.ID,
		Email:        user.Email,
		Nickname:     user.Nickname,
		PasswordHash: user.PasswordHash,
		Role:         user.Role.String(),
		IsActive:     user.IsActive,
		IsAdmin:      user.IsAdmin,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// UserFromModel converts a DB model back to a user entity.
func UserFromModel(m *model.UserModel) (*entity.User, error) {
	if m == nil {
		return nil, nil
	}

	role, err := vo.NewRole(m.Role)
	if err != nil {
		return nil, err
	}

	return &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		Nickname:     m.Nickname,
		PasswordHash: m.PasswordHash,
		Role:         role,
		IsActive:     m.IsActive,
		IsAdmin:      m.IsAdmin,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}

// UsersFromModels converts a slice of DB models to user entities.
func UsersFromModels(models []model.UserModel) ([]*entity.User, error) {
	users := make([]*entity.User, len(models))
	for i := range models {
		user, err := UserFromModel(&models[i])
		if err != nil {
			return nil, err
		}
		users[i] = user
	}
	return users, nil
}
