package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
	"github.com/kikiru328/LLearn-sub001/internal/domain/service"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
	"github.com/kikiru328/LLearn-sub001/internal/usecase"
	"github.com/kikiru328/LLearn-sub001/internal/usecase/dto"
)

func newTagUseCase(tagRepo *MockTagRepository) *usecase.TagUseCase {
	tagService := service.NewTagService(tagRepo, new(MockCategoryRepository))
	return usecase.NewTagUseCase(zap.NewNop(), tagService, tagRepo)
}

func storedTag(t *testing.T, name string, usageCount int) *entity.Tag {
	t.Helper()
	tagName, err := vo.NewTagName(name)
	require.NoError(t, err)
	now := time.Now().UTC()
	tag, err := entity.NewTag(uuid.New(), tagName, usageCount, uuid.New(), now, now)
	require.NoError(t, err)
	return tag
}

func userActor() usecase.Actor {
	return usecase.Actor{ID: uuid.New(), Role: vo.RoleUser}
}

func adminActor() usecase.Actor {
	return usecase.Actor{ID: uuid.New(), Role: vo.RoleAdmin}
}

func TestTagUseCase_CreateTag(t *testing.T) {
	ctx := context.Background()
	golang, _ := vo.NewTagName("golang")

	t.Run("saves a fresh tag", func(t *testing.T) {
		tagRepo := new(MockTagRepository)
		uc := newTagUseCase(tagRepo)

		tagRepo.On("FindByName", ctx, golang).Return(nil, nil).Once()
		tagRepo.On("Save", ctx, mock.AnythingOfType("*entity.Tag")).Return(nil)

		tag, err := uc.CreateTag(ctx, userActor(), dto.CreateTagParams{Name: "GoLang"})

		require.NoError(t, err)
		assert.Equal(t, "golang", tag.Name)
		assert.Equal(t, 0, tag.UsageCount)
		tagRepo.AssertExpectations(t)
	})

	t.Run("recovers a lost creation race by reusing the winner's row", func(t *testing.T) {
		tagRepo := new(MockTagRepository)
		uc := newTagUseCase(tagRepo)

		winner := storedTag(t, "golang", 3)

		// The pre-check sees no tag, the insert collides, the re-read
		// finds the concurrently created row.
		tagRepo.On("FindByName", ctx, golang).Return(nil, nil).Once()
		tagRepo.On("Save", ctx, mock.AnythingOfType("*entity.Tag")).
			Return(errs.NewDuplicateEntityError("tag", "name", "golang"))
		tagRepo.On("FindByName", ctx, golang).Return(winner, nil).Once()

		tag, err := uc.CreateTag(ctx, userActor(), dto.CreateTagParams{Name: "golang"})

		require.NoError(t, err)
		assert.Equal(t, winner.ID, tag.ID)
		assert.Equal(t, 3, tag.UsageCount)
		tagRepo.AssertExpectations(t)
	})
}

func TestTagUseCase_ResolveTags(t *testing.T) {
	ctx := context.Background()
	actor := userActor()

	tagRepo := new(MockTagRepository)
	uc := newTagUseCase(tagRepo)

	golang, _ := vo.NewTagName("golang")
	python, _ := vo.NewTagName("python")
	resolved := []*entity.Tag{storedTag(t, "golang", 0), storedTag(t, "python", 4)}

	tagRepo.On("FindOrCreateByNames", ctx, []vo.TagName{golang, python}, actor.ID).Return(resolved, nil)
	tagRepo.On("Update", ctx, mock.AnythingOfType("*entity.Tag")).Return(nil).Twice()

	tags, err := uc.ResolveTags(ctx, actor, dto.ResolveTagsParams{Names: []string{"GoLang", "Python"}})

	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, 1, tags[0].UsageCount, "each resolution bumps the usage count")
	assert.Equal(t, 5, tags[1].UsageCount)
	tagRepo.AssertExpectations(t)
}

func TestTagUseCase_ReleaseTag(t *testing.T) {
	ctx := context.Background()

	t.Run("decrements usage and floors at zero", func(t *testing.T) {
		tagRepo := new(MockTagRepository)
		uc := newTagUseCase(tagRepo)

		tag := storedTag(t, "golang", 0)
		tagRepo.On("FindByID", ctx, tag.ID).Return(tag, nil)
		tagRepo.On("Update", ctx, tag).Return(nil)

		released, err := uc.ReleaseTag(ctx, tag.ID)

		require.NoError(t, err)
		assert.Equal(t, 0, released.UsageCount)
	})

	t.Run("missing tag is not found", func(t *testing.T) {
		tagRepo := new(MockTagRepository)
		uc := newTagUseCase(tagRepo)

		id := uuid.New()
		tagRepo.On("FindByID", ctx, id).Return(nil, nil)

		_, err := uc.ReleaseTag(ctx, id)
		assert.True(t, errs.IsNotFound(err))
	})
}

func TestTagUseCase_PopularTags(t *testing.T) {
	ctx := context.Background()

	t.Run("clamps the limit", func(t *testing.T) {
		tagRepo := new(MockTagRepository)
		uc := newTagUseCase(tagRepo)

		tagRepo.On("FindPopular", ctx, 10).Return([]*entity.Tag{}, nil).Once()
		tagRepo.On("FindPopular", ctx, 50).Return([]*entity.Tag{}, nil).Once()

		_, err := uc.PopularTags(ctx, 0)
		require.NoError(t, err)
		_, err = uc.PopularTags(ctx, 500)
		require.NoError(t, err)
		tagRepo.AssertExpectations(t)
	})
}

func TestTagUseCase_DeleteTag(t *testing.T) {
	ctx := context.Background()

	t.Run("admin only", func(t *testing.T) {
		tagRepo := new(MockTagRepository)
		uc := newTagUseCase(tagRepo)

		err := uc.DeleteTag(ctx, userActor(), uuid.New())
		assert.ErrorIs(t, err, usecase.ErrForbidden)
		tagRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("admin deletes", func(t *testing.T) {
		tagRepo := new(MockTagRepository)
		uc := newTagUseCase(tagRepo)

		id := uuid.New()
		tagRepo.On("Delete", ctx, id).Return(nil)

		require.NoError(t, uc.DeleteTag(ctx, adminActor(), id))
		tagRepo.AssertExpectations(t)
	})
}
