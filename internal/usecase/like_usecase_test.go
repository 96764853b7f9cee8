package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
	"github.com/kikiru328/LLearn-sub001/internal/usecase"
)

type likeMocks struct {
	likes       *MockLikeRepository
	summaries   *MockSummaryRepository
	curriculums *MockCurriculumRepository
	cache       *MockCacheRepository
}

func newLikeUseCase() (*usecase.LikeUseCase, likeMocks) {
	m := likeMocks{
		likes:       new(MockLikeRepository),
		summaries:   new(MockSummaryRepository),
		curriculums: new(MockCurriculumRepository),
		cache:       new(MockCacheRepository),
	}
	uc := usecase.NewLikeUseCase(zap.NewNop(), m.likes, m.summaries, m.curriculums, m.cache)
	return uc, m
}

func TestLikeUseCase_Like(t *testing.T) {
	ctx := context.Background()

	t.Run("likes a public summary and invalidates the cached count", func(t *testing.T) {
		uc, m := newLikeUseCase()
		actor := userActor()
		summary := storedSummary(t, actor.ID, true)
		key := fmt.Sprintf("likes:summary:%s", summary.ID)

		m.summaries.On("FindByID", ctx, summary.ID).Return(summary, nil)
		m.likes.On("Save", ctx, mock.AnythingOfType("*entity.Like")).Return(nil)
		m.cache.On("Delete", ctx, key).Return(nil)
		m.likes.On("ExistsByUserAndTarget", ctx, actor.ID, vo.LikeTargetSummary, summary.ID).Return(true, nil)
		m.cache.On("Get", ctx, key).Return("", false, nil)
		m.likes.On("CountByTarget", ctx, vo.LikeTargetSummary, summary.ID).Return(int64(4), nil)
		m.cache.On("Set", ctx, key, "4", time.Minute).Return(nil)

		status, err := uc.Like(ctx, actor, "summary", summary.ID)

		require.NoError(t, err)
		assert.True(t, status.Liked)
		assert.Equal(t, int64(4), status.LikeCount)
		m.likes.AssertExpectations(t)
		m.cache.AssertExpectations(t)
	})

	t.Run("rejects an unknown target type", func(t *testing.T) {
		uc, m := newLikeUseCase()

		_, err := uc.Like(ctx, userActor(), "comment", storedSummary(t, userActor().ID, true).ID)

		var validationErr *errs.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		m.likes.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("a private target of another user is not found", func(t *testing.T) {
		uc, m := newLikeUseCase()
		summary := storedSummary(t, uuid.New(), false)

		m.summaries.On("FindByID", ctx, summary.ID).Return(summary, nil)

		_, err := uc.Like(ctx, userActor(), "summary", summary.ID)
		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("liking twice surfaces the repository duplicate", func(t *testing.T) {
		uc, m := newLikeUseCase()
		actor := userActor()
		summary := storedSummary(t, actor.ID, true)

		m.summaries.On("FindByID", ctx, summary.ID).Return(summary, nil)
		m.likes.On("Save", ctx, mock.AnythingOfType("*entity.Like")).
			Return(errs.NewDuplicateEntityError("like", "target", "dup"))

		_, err := uc.Like(ctx, actor, "summary", summary.ID)
		assert.True(t, errs.IsDuplicate(err))
	})
}

func TestLikeUseCase_Status(t *testing.T) {
	ctx := context.Background()

	t.Run("serves the count from the cache when fresh", func(t *testing.T) {
		uc, m := newLikeUseCase()
		actor := userActor()
		summary := storedSummary(t, actor.ID, true)
		key := fmt.Sprintf("likes:summary:%s", summary.ID)

		m.summaries.On("FindByID", ctx, summary.ID).Return(summary, nil)
		m.likes.On("ExistsByUserAndTarget", ctx, actor.ID, vo.LikeTargetSummary, summary.ID).Return(false, nil)
		m.cache.On("Get", ctx, key).Return("17", true, nil)

		status, err := uc.Status(ctx, actor, "summary", summary.ID)

		require.NoError(t, err)
		assert.Equal(t, int64(17), status.LikeCount)
		m.likes.AssertNotCalled(t, "CountByTarget", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cache failures degrade to the database", func(t *testing.T) {
		uc, m := newLikeUseCase()
		actor := userActor()
		summary := storedSummary(t, actor.ID, true)
		key := fmt.Sprintf("likes:summary:%s", summary.ID)

		m.summaries.On("FindByID", ctx, summary.ID).Return(summary, nil)
		m.likes.On("ExistsByUserAndTarget", ctx, actor.ID, vo.LikeTargetSummary, summary.ID).Return(false, nil)
		m.cache.On("Get", ctx, key).Return("", false, errors.New("redis down"))
		m.likes.On("CountByTarget", ctx, vo.LikeTargetSummary, summary.ID).Return(int64(9), nil)
		m.cache.On("Set", ctx, key, "9", time.Minute).Return(errors.New("redis down"))

		status, err := uc.Status(ctx, actor, "summary", summary.ID)

		require.NoError(t, err)
		assert.Equal(t, int64(9), status.LikeCount)
	})
}

func TestLikeUseCase_Unlike(t *testing.T) {
	ctx := context.Background()

	t.Run("unliking without a prior like is not found", func(t *testing.T) {
		uc, m := newLikeUseCase()
		actor := userActor()
		summary := storedSummary(t, actor.ID, true)

		m.likes.On("DeleteByUserAndTarget", ctx, actor.ID, vo.LikeTargetSummary, summary.ID).
			Return(errs.NewEntityNotFoundError("like", summary.ID.String()))

		_, err := uc.Unlike(ctx, actor, "summary", summary.ID)
		assert.True(t, errs.IsNotFound(err))
	})
}
