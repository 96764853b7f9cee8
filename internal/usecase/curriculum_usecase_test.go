package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
	"github.com/kikiru328/LLearn-sub001/internal/usecase"
	"github.com/kikiru328/LLearn-sub001/internal/usecase/dto"
)

func newCurriculumUseCase(repo *MockCurriculumRepository) *usecase.CurriculumUseCase {
	return usecase.NewCurriculumUseCase(zap.NewNop(), repo)
}

func TestCurriculumUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("visibility defaults to PRIVATE", func(t *testing.T) {
		repo := new(MockCurriculumRepository)
		uc := newCurriculumUseCase(repo)

		repo.On("Save", ctx, mock.AnythingOfType("*entity.Curriculum")).Return(nil)

		curriculum, err := uc.Create(ctx, userActor(), dto.CreateCurriculumParams{
			Title: "Backend basics",
			Weeks: []dto.WeekTopicParams{
				{WeekNumber: 1, Topic: "HTTP"},
				{WeekNumber: 2, Topic: "SQL"},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "PRIVATE", curriculum.Visibility)
		assert.Len(t, curriculum.Weeks, 2)
	})

	t.Run("duplicate week numbers fail validation", func(t *testing.T) {
		repo := new(MockCurriculumRepository)
		uc := newCurriculumUseCase(repo)

		_, err := uc.Create(ctx, userActor(), dto.CreateCurriculumParams{
			Title: "Backend basics",
			Weeks: []dto.WeekTopicParams{
				{WeekNumber: 1, Topic: "HTTP"},
				{WeekNumber: 1, Topic: "SQL"},
			},
		})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCurriculumUseCase_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("private curricula are hidden from other users as not found", func(t *testing.T) {
		repo := new(MockCurriculumRepository)
		uc := newCurriculumUseCase(repo)

		private := ownedCurriculum(t, uuid.New(), vo.VisibilityPrivate, 1)
		repo.On("FindByID", ctx, private.ID).Return(private, nil)

		_, err := uc.Get(ctx, userActor(), private.ID)
		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("anyone reads a public curriculum", func(t *testing.T) {
		repo := new(MockCurriculumRepository)
		uc := newCurriculumUseCase(repo)

		public := ownedCurriculum(t, uuid.New(), vo.VisibilityPublic, 1)
		repo.On("FindByID", ctx, public.ID).Return(public, nil)

		got, err := uc.Get(ctx, userActor(), public.ID)
		require.NoError(t, err)
		assert.Equal(t, public.ID, got.ID)
	})
}

func TestCurriculumUseCase_ToggleVisibility(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCurriculumRepository)
	uc := newCurriculumUseCase(repo)

	actor := userActor()
	curriculum := ownedCurriculum(t, actor.ID, vo.VisibilityPrivate)

	repo.On("FindByID", ctx, curriculum.ID).Return(curriculum, nil)
	repo.On("Update", ctx, curriculum).Return(nil)

	got, err := uc.ToggleVisibility(ctx, actor, curriculum.ID)

	require.NoError(t, err)
	assert.Equal(t, "PUBLIC", got.Visibility)
}

func TestCurriculumUseCase_WeekOperations(t *testing.T) {
	ctx := context.Background()

	t.Run("add rejects a taken week number", func(t *testing.T) {
		repo := new(MockCurriculumRepository)
		uc := newCurriculumUseCase(repo)

		actor := userActor()
		curriculum := ownedCurriculum(t, actor.ID, vo.VisibilityPrivate, 1)
		repo.On("FindByID", ctx, curriculum.ID).Return(curriculum, nil)

		_, err := uc.AddWeek(ctx, actor, curriculum.ID, dto.WeekTopicParams{WeekNumber: 1, Topic: "Again"})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("remove persists the shrunk plan", func(t *testing.T) {
		repo := new(MockCurriculumRepository)
		uc := newCurriculumUseCase(repo)

		actor := userActor()
		curriculum := ownedCurriculum(t, actor.ID, vo.VisibilityPrivate, 1, 2)
		repo.On("FindByID", ctx, curriculum.ID).Return(curriculum, nil)
		repo.On("Update", ctx, curriculum).Return(nil)

		got, err := uc.RemoveWeek(ctx, actor, curriculum.ID, 1)

		require.NoError(t, err)
		assert.Len(t, got.Weeks, 1)
		assert.Equal(t, 2, got.Weeks[0].WeekNumber)
	})

	t.Run("mutating someone else's plan is forbidden", func(t *testing.T) {
		repo := new(MockCurriculumRepository)
		uc := newCurriculumUseCase(repo)

		curriculum := ownedCurriculum(t, uuid.New(), vo.VisibilityPublic, 1)
		repo.On("FindByID", ctx, curriculum.ID).Return(curriculum, nil)

		_, err := uc.AddWeek(ctx, userActor(), curriculum.ID, dto.WeekTopicParams{WeekNumber: 2, Topic: "SQL"})
		assert.ErrorIs(t, err, usecase.ErrForbidden)
	})
}
