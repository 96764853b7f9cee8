package usecase

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
	"github.com/kikiru328/LLearn-sub001/internal/domain/repository"
	"github.com/kikiru328/LLearn-sub001/internal/domain/service"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
	"github.com/kikiru328/LLearn-sub001/internal/usecase/dto"
)

// AuthUseCase handles registration and login with JWT issuing.
type AuthUseCase struct {
	logger            *zap.Logger
	userRepository    repository.UserRepository
	hasher            service.PasswordHasher
	jwtSecret         []byte
	accessTokenExpiry time.Duration
}

// NewAuthUseCase creates the auth use case. expirySeconds configures the
// access token lifetime.
func NewAuthUseCase(
	logger *zap.Logger,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	jwtSecret string,
	expirySeconds int,
) *AuthUseCase {
	return &AuthUseCase{
		logger:            logger,
		userRepository:    userRepo,
		hasher:            hasher,
		jwtSecret:         []byte(jwtSecret),
		accessTokenExpiry: time.Duration(expirySeconds) * time.Second,
	}
}

// Register creates a new account with the USER role. A taken email
// surfaces as DuplicateEntityError from the save.
func (uc *AuthUseCase) Register(ctx context.Context, params dto.RegisterParams) (*dto.UserResponse, error) {
	exists, err := uc.userRepository.ExistsByEmail(ctx, params.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewDuplicateEntityError("user", "email", params.Email)
	}

	hash, err := uc.hasher.Hash(params.Password)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	now := time.Now().UTC()
	user, err := entity.NewUser(uuid.New(), params.Email, params.Nickname, hash, vo.RoleUser, true, false, now, now)
	if err != nil {
		return nil, err
	}

	if err := uc.userRepository.Save(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))
	return dto.NewUserResponse(user), nil
}

// Login verifies the credentials and issues an access token. A wrong
// email, a wrong password and a withdrawn account all yield the same
// ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, params dto.LoginParams) (*dto.AuthTokens, *dto.UserResponse, error) {
	user, err := uc.userRepository.FindByEmail(ctx, params.Email)
	if err != nil {
		return nil, nil, err
	}
	if user == nil || !user.IsActive {
		return nil, nil, ErrInvalidCredentials
	}
	if !user.VerifyPassword(params.Password, uc.hasher) {
		uc.logger.Warn("Login failed",
			zap.String("user_id", user.ID.String()))
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := uc.issueToken(user)
	if err != nil {
		uc.logger.Error("Failed to sign access token", zap.Error(err))
		return nil, nil, err
	}

	uc.logger.Info("User logged in", zap.String("user_id", user.ID.String()))
	return tokens, dto.NewUserResponse(user), nil
}

func (uc *AuthUseCase) issueToken(user *entity.User) (*dto.AuthTokens, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(uc.accessTokenExpiry)

	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": user.Role.String(),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &dto.AuthTokens{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}
