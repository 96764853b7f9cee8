package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kikiru328/LLearn-sub001/internal/adapter/mapper"
	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
	"github.com/kikiru328/LLearn-sub001/internal/domain/repository"
	"github.com/kikiru328/LLearn-sub001/internal/infrastructure/db/model"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewUserRepository creates the GORM-backed user repository.
func NewUserRepository(db *gorm.DB, logger *zap.Logger) repository.UserRepository {
	return &UserRepositoryImpl{db: db, logger: logger}
}

// Save inserts a new user. A taken email becomes DuplicateEntityError.
func (r *UserRepositoryImpl) Save(ctx context.Context, user *entity.User) error {
	userModel := mapper.UserToModel(user)

	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		r.logger.Error("Failed to save user",
			zap.String("user_id", user.ID.String()),
			zap.Error(err))
		return translateSaveError(err, "user", "email", user.Email, "user.save")
	}
	return nil
}

// FindByID returns (nil, nil) when no user has the id.
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userModel model.UserModel

	if err := r.db.WithContext(ctx).First(&userModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errs.NewDatabaseError("user.find_by_id", err)
	}

	user, err := mapper.UserFromModel(&userModel)
	if err != nil {
		return nil, errs.NewDatabaseError("user.find_by_id", err)
	}
	return user, nil
}

// FindByEmail returns (nil, nil) when no user has the email.
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.UserModel

	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errs.NewDatabaseError("user.find_by_email", err)
	}

	user, err := mapper.UserFromModel(&userModel)
	if err != nil {
		return nil, errs.NewDatabaseError("user.find_by_email", err)
	}
	return user, nil
}

// Update rewrites the row. A missing id becomes EntityNotFoundError.
func (r *UserRepositoryImpl) Update(ctx context.Context, user *entity.User) error {
	userModel := mapper.UserToModel(user)

	result := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userModel.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(userModel)

	if result.Error != nil {
		r.logger.Error("Failed to update user",
			zap.String("user_id", user.ID.String()),
			zap.Error(result.Error))
		return errs.NewDatabaseError("user.update", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewEntityNotFoundError("user", user.ID.String())
	}
	return nil
}

// Delete removes the row. A missing id becomes EntityNotFoundError.
func (r *UserRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.UserModel{}, "id = ?", id)

	if result.Error != nil {
		r.logger.Error("Failed to delete user",
			zap.String("user_id", id.String()),
			zap.Error(result.Error))
		return errs.NewDatabaseError("user.delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewEntityNotFoundError("user", id.String())
	}
	return nil
}

// ExistsByEmail reports whether any user has the email.
func (r *UserRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, errs.NewDatabaseError("user.exists_by_email", err)
	}
	return count > 0, nil
}

// CountActive counts users that have not withdrawn.
func (r *UserRepositoryImpl) CountActive(ctx context.Context) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("is_active = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, errs.NewDatabaseError("user.count_active", err)
	}
	return count, nil
}

// FindAll lists users newest first with the shared pagination contract.
func (r *UserRepositoryImpl) FindAll(ctx context.Context, page, itemsPerPage int) (int64, []*entity.User, error) {
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.UserModel{}).Count(&total).Error; err != nil {
		return 0, nil, errs.NewDatabaseError("user.find_all", err)
	}

	var models []model.UserModel
	err := paginate(r.db.WithContext(ctx).Order("created_at DESC"), page, itemsPerPage).
		Find(&models).Error
	if err != nil {
		return 0, nil, errs.NewDatabaseError("user.find_all", err)
	}

	users, err := mapper.UsersFromModels(models)
	if err != nil {
		return 0, nil, errs.NewDatabaseError("user.find_all", err)
	}
	return total, users, nil
}
