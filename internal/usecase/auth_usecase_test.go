package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
	"github.com/kikiru328/LLearn-sub001/internal/usecase"
	"github.com/kikiru328/LLearn-sub001/internal/usecase/dto"
)

const testJWTSecret = "test-secret"

func newAuthUseCase(userRepo *MockUserRepository) *usecase.AuthUseCase {
	return usecase.NewAuthUseCase(zap.NewNop(), userRepo, fakeHasher{}, testJWTSecret, 3600)
}

func activeUser(t *testing.T, email, password string) *entity.User {
	t.Helper()
	now := time.Now().UTC()
	hash, err := fakeHasher{}.Hash(password)
	require.NoError(t, err)
	user, err := entity.NewUser(uuid.New(), email, "learner", hash, vo.RoleUser, true, false, now, now)
	require.NoError(t, err)
	return user
}

func TestAuthUseCase_Register(t *testing.T) {
	ctx := context.Background()
	params := dto.RegisterParams{
		Email:    "learner@example.com",
		Password: "correct horse",
		Nickname: "learner",
	}

	t.Run("creates an active USER account", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := newAuthUseCase(userRepo)

		userRepo.On("ExistsByEmail", ctx, params.Email).Return(false, nil)
		userRepo.On("Save", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

		user, err := uc.Register(ctx, params)

		require.NoError(t, err)
		assert.Equal(t, params.Email, user.Email)
		assert.Equal(t, "USER", user.Role)
		assert.True(t, user.IsActive)
		userRepo.AssertExpectations(t)

		saved := userRepo.Calls[1].Arguments.Get(1).(*entity.User)
		assert.NotEqual(t, params.Password, saved.PasswordHash, "raw password must never be stored")
	})

	t.Run("rejects a taken email before saving", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := newAuthUseCase(userRepo)

		userRepo.On("ExistsByEmail", ctx, params.Email).Return(true, nil)

		_, err := uc.Register(ctx, params)

		assert.True(t, errs.IsDuplicate(err))
		userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("issues an HS256 token with subject and role claims", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := newAuthUseCase(userRepo)

		user := activeUser(t, "learner@example.com", "correct horse")
		userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)

		tokens, profile, err := uc.Login(ctx, dto.LoginParams{Email: user.Email, Password: "correct horse"})

		require.NoError(t, err)
		assert.Equal(t, "Bearer", tokens.TokenType)
		assert.Equal(t, user.ID, profile.ID)

		parsed, err := jwt.Parse(tokens.AccessToken, func(token *jwt.Token) (interface{}, error) {
			return []byte(testJWTSecret), nil
		})
		require.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, user.ID.String(), claims["sub"])
		assert.Equal(t, "USER", claims["role"])
	})

	t.Run("unknown email, wrong password and withdrawn account collapse to one error", func(t *testing.T) {
		user := activeUser(t, "learner@example.com", "correct horse")
		withdrawn := activeUser(t, "gone@example.com", "correct horse")
		withdrawn.Withdraw()

		cases := []struct {
			name     string
			email    string
			password string
			stored   *entity.User
		}{
			{name: "unknown email", email: "nobody@example.com", password: "correct horse", stored: nil},
			{name: "wrong password", email: user.Email, password: "wrong", stored: user},
			{name: "withdrawn account", email: withdrawn.Email, password: "correct horse", stored: withdrawn},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				userRepo := new(MockUserRepository)
				uc := newAuthUseCase(userRepo)

				if tc.stored == nil {
					userRepo.On("FindByEmail", ctx, tc.email).Return(nil, nil)
				} else {
					userRepo.On("FindByEmail", ctx, tc.email).Return(tc.stored, nil)
				}

				_, _, err := uc.Login(ctx, dto.LoginParams{Email: tc.email, Password: tc.password})
				assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
			})
		}
	})
}
