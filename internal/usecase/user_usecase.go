package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
	"github.com/kikiru328/LLearn-sub001/internal/domain/repository"
	"github.com/kikiru328/LLearn-sub001/internal/usecase/dto"
)

// UserUseCase handles profile reads, nickname changes and withdrawal.
type UserUseCase struct {
	logger         *zap.Logger
	userRepository repository.UserRepository
}

// NewUserUseCase creates the user use case.
func NewUserUseCase(logger *zap.Logger, userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{logger: logger, userRepository: userRepo}
}

// GetProfile returns a user profile. Callers see themselves; admins see
// anyone.
func (uc *UserUseCase) GetProfile(ctx context.Context, actor Actor, userID uuid.UUID) (*dto.UserResponse, error) {
	if !actor.Owns(userID) {
		return nil, ErrForbidden
	}

	user, err := uc.userRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewEntityNotFoundError("user", userID.String())
	}
	return dto.NewUserResponse(user), nil
}

// UpdateProfile changes the caller's nickname.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, actor Actor, params dto.UpdateProfileParams) (*dto.UserResponse, error) {
	user, err := uc.userRepository.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewEntityNotFoundError("user", actor.ID.String())
	}

	if err := user.ChangeNickname(params.Nickname); err != nil {
		return nil, err
	}
	if err := uc.userRepository.Update(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("User profile updated", zap.String("user_id", user.ID.String()))
	return dto.NewUserResponse(user), nil
}

// Withdraw soft-deletes the caller's account. The row stays for audit;
// login is refused afterwards.
func (uc *UserUseCase) Withdraw(ctx context.Context, actor Actor) error {
	user, err := uc.userRepository.FindByID(ctx, actor.ID)
	if err != nil {
		return err
	}
	if user == nil {
		return errs.NewEntityNotFoundError("user", actor.ID.String())
	}

	user.Withdraw()
	if err := uc.userRepository.Update(ctx, user); err != nil {
		return err
	}

	uc.logger.Info("User withdrew", zap.String("user_id", user.ID.String()))
	return nil
}

// ListUsers pages through all accounts. Admin only.
func (uc *UserUseCase) ListUsers(ctx context.Context, actor Actor, pageParams dto.PageParams) (*dto.UserListResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	page, itemsPerPage := pageParams.Normalized()
	total, users, err := uc.userRepository.FindAll(ctx, page, itemsPerPage)
	if err != nil {
		return nil, err
	}
	return dto.NewUserListResponse(total, page, itemsPerPage, users), nil
}
