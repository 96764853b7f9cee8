package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
	"github.com/kikiru328/LLearn-sub001/internal/usecase"
	"github.com/kikiru328/LLearn-sub001/internal/usecase/dto"
)

type feedbackMocks struct {
	feedbacks   *MockFeedbackRepository
	promptLogs  *MockPromptLogRepository
	summaries   *MockSummaryRepository
	curriculums *MockCurriculumRepository
}

func newFeedbackUseCase() (*usecase.FeedbackUseCase, feedbackMocks) {
	mocks := feedbackMocks{
		feedbacks:   new(MockFeedbackRepository),
		promptLogs:  new(MockPromptLogRepository),
		summaries:   new(MockSummaryRepository),
		curriculums: new(MockCurriculumRepository),
	}
	uc := usecase.NewFeedbackUseCase(
		zap.NewNop(), mocks.feedbacks, mocks.promptLogs, mocks.summaries, mocks.curriculums,
	)
	return uc, mocks
}

func storedFeedback(t *testing.T, summaryID uuid.UUID) *entity.Feedback {
	t.Helper()
	comment, err := vo.NewFeedbackComment("Solid recap of the material.")
	require.NoError(t, err)
	feedback, err := entity.NewFeedback(uuid.New(), summaryID, "gpt-4o", comment, time.Now().UTC())
	require.NoError(t, err)
	return feedback
}

func TestFeedbackUseCase_ListByCurriculum(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown curriculum is not-found before any feedback query", func(t *testing.T) {
		uc, mocks := newFeedbackUseCase()
		actor := userActor()
		curriculumID := uuid.New()
		mocks.curriculums.On("FindByID", ctx, curriculumID).Return(nil, nil)

		_, err := uc.ListByCurriculum(ctx, actor, curriculumID, dto.PageParams{})

		assert.True(t, errs.IsNotFound(err))
		mocks.feedbacks.AssertNotCalled(t, "FindByCurriculum")
	})

	t.Run("another user's curriculum is forbidden", func(t *testing.T) {
		uc, mocks := newFeedbackUseCase()
		actor := userActor()
		curriculum := ownedCurriculum(t, uuid.New(), vo.VisibilityPublic, 1)
		mocks.curriculums.On("FindByID", ctx, curriculum.ID).Return(curriculum, nil)

		_, err := uc.ListByCurriculum(ctx, actor, curriculum.ID, dto.PageParams{})

		assert.ErrorIs(t, err, usecase.ErrForbidden)
		mocks.feedbacks.AssertNotCalled(t, "FindByCurriculum")
	})

	t.Run("owner reads the page with a single curriculum load", func(t *testing.T) {
		uc, mocks := newFeedbackUseCase()
		actor := userActor()
		curriculum := ownedCurriculum(t, actor.ID, vo.VisibilityPrivate, 1)
		feedback := storedFeedback(t, uuid.New())
		mocks.curriculums.On("FindByID", ctx, curriculum.ID).Return(curriculum, nil).Once()
		mocks.feedbacks.On("FindByCurriculum", ctx, curriculum.ID, 1, 20).
			Return(int64(1), []*entity.Feedback{feedback}, nil)

		page, err := uc.ListByCurriculum(ctx, actor, curriculum.ID, dto.PageParams{})

		require.NoError(t, err)
		assert.Equal(t, int64(1), page.Meta.TotalCount)
		require.Len(t, page.Items, 1)
		assert.Equal(t, feedback.ID, page.Items[0].ID)
		mocks.summaries.AssertNotCalled(t, "FindByID")
		mocks.curriculums.AssertExpectations(t)
	})

	t.Run("admin reads any curriculum's feedback", func(t *testing.T) {
		uc, mocks := newFeedbackUseCase()
		curriculum := ownedCurriculum(t, uuid.New(), vo.VisibilityPrivate, 1)
		mocks.curriculums.On("FindByID", ctx, curriculum.ID).Return(curriculum, nil)
		mocks.feedbacks.On("FindByCurriculum", ctx, curriculum.ID, 1, 20).
			Return(int64(0), []*entity.Feedback{}, nil)

		page, err := uc.ListByCurriculum(ctx, adminActor(), curriculum.ID, dto.PageParams{})

		require.NoError(t, err)
		assert.Empty(t, page.Items)
	})
}
