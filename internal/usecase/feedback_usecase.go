package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
	"github.com/kikiru328/LLearn-sub001/internal/domain/repository"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
	"github.com/kikiru328/LLearn-sub001/internal/usecase/dto"
)

// FeedbackUseCase handles the one-per-summary generated feedback and its
// prompt log trail.
type FeedbackUseCase struct {
	logger               *zap.Logger
	feedbackRepository   repository.FeedbackRepository
	promptLogRepository  repository.PromptLogRepository
	summaryRepository    repository.SummaryRepository
	curriculumRepository repository.CurriculumRepository
}

// NewFeedbackUseCase creates the feedback use case.
func NewFeedbackUseCase(
	logger *zap.Logger,
	feedbackRepo repository.FeedbackRepository,
	promptLogRepo repository.PromptLogRepository,
	summaryRepo repository.SummaryRepository,
	curriculumRepo repository.CurriculumRepository,
) *FeedbackUseCase {
	return &FeedbackUseCase{
		logger:               logger,
		feedbackRepository:   feedbackRepo,
		promptLogRepository:  promptLogRepo,
		summaryRepository:    summaryRepo,
		curriculumRepository: curriculumRepo,
	}
}

// Create records the generated review of one summary. The summary author
// or an admin may attach it; a second feedback is a duplicate.
func (uc *FeedbackUseCase) Create(ctx context.Context, actor Actor, summaryID uuid.UUID, params dto.CreateFeedbackParams) (*dto.FeedbackResponse, error) {
	summary, err := uc.loadOwnedSummary(ctx, actor, summaryID)
	if err != nil {
		return nil, err
	}

	exists, err := uc.feedbackRepository.ExistsBySummary(ctx, summary.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewDuplicateEntityError("feedback", "summary_id", summary.ID.String())
	}

	comment, err := vo.NewFeedbackComment(params.Comment)
	if err != nil {
		return nil, err
	}

	feedback, err := entity.NewFeedback(uuid.New(), summary.ID, params.Reviewer, comment, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := uc.feedbackRepository.Save(ctx, feedback); err != nil {
		return nil, err
	}

	uc.logger.Info("Feedback created",
		zap.String("feedback_id", feedback.ID.String()),
		zap.String("summary_id", summary.ID.String()),
		zap.String("reviewer", feedback.Reviewer))
	return dto.NewFeedbackResponse(feedback), nil
}

// GetBySummary returns the summary's feedback, which the summary's readers
// may see. A summary without feedback yields not-found.
func (uc *FeedbackUseCase) GetBySummary(ctx context.Context, actor Actor, summaryID uuid.UUID) (*dto.FeedbackResponse, error) {
	if _, err := uc.loadReadableSummary(ctx, actor, summaryID); err != nil {
		return nil, err
	}

	feedback, err := uc.feedbackRepository.FindBySummary(ctx, summaryID)
	if err != nil {
		return nil, err
	}
	if feedback == nil {
		return nil, errs.NewEntityNotFoundError("feedback", summaryID.String())
	}
	return dto.NewFeedbackResponse(feedback), nil
}

// Delete removes a feedback so it can be regenerated. Summary author or
// admin only.
func (uc *FeedbackUseCase) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	feedback, err := uc.feedbackRepository.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if feedback == nil {
		return errs.NewEntityNotFoundError("feedback", id.String())
	}

	if _, err := uc.loadOwnedSummary(ctx, actor, feedback.SummaryID); err != nil {
		return err
	}

	if err := uc.feedbackRepository.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("Feedback deleted", zap.String("feedback_id", id.String()))
	return nil
}

// ListByUser pages feedback on one author's summaries. Self or admin only.
func (uc *FeedbackUseCase) ListByUser(ctx context.Context, actor Actor, userID uuid.UUID, pageParams dto.PageParams) (*dto.FeedbackListResponse, error) {
	if !actor.Owns(userID) {
		return nil, ErrForbidden
	}

	page, itemsPerPage := pageParams.Normalized()
	total, feedbacks, err := uc.feedbackRepository.FindByUser(ctx, userID, page, itemsPerPage)
	if err != nil {
		return nil, err
	}
	return dto.NewFeedbackListResponse(total, page, itemsPerPage, feedbacks), nil
}

// ListByCurriculum pages feedback across one curriculum's summaries. The
// curriculum owner or an admin may read them; an unknown curriculum is
// not-found.
func (uc *FeedbackUseCase) ListByCurriculum(ctx context.Context, actor Actor, curriculumID uuid.UUID, pageParams dto.PageParams) (*dto.FeedbackListResponse, error) {
	curriculum, err := uc.curriculumRepository.FindByID(ctx, curriculumID)
	if err != nil {
		return nil, err
	}
	if curriculum == nil {
		return nil, errs.NewEntityNotFoundError("curriculum", curriculumID.String())
	}
	if !actor.Owns(curriculum.UserID) {
		return nil, ErrForbidden
	}

	page, itemsPerPage := pageParams.Normalized()
	total, feedbacks, err := uc.feedbackRepository.FindByCurriculum(ctx, curriculumID, page, itemsPerPage)
	if err != nil {
		return nil, err
	}
	return dto.NewFeedbackListResponse(total, page, itemsPerPage, feedbacks), nil
}

// RecordPromptLog appends one LLM round-trip record for a summary. Author
// or admin only; logs are append-only.
func (uc *FeedbackUseCase) RecordPromptLog(ctx context.Context, actor Actor, summaryID uuid.UUID, params dto.CreatePromptLogParams) (*dto.PromptLogResponse, error) {
	summary, err := uc.loadOwnedSummary(ctx, actor, summaryID)
	if err != nil {
		return nil, err
	}

	log, err := entity.NewPromptLog(uuid.New(), summary.ID, params.Prompt, params.Response, params.ModelName, params.LatencySeconds, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := uc.promptLogRepository.Save(ctx, log); err != nil {
		return nil, err
	}
	return dto.NewPromptLogResponse(log), nil
}

// ListPromptLogs pages the LLM round-trip records of one summary. Author
// or admin only.
func (uc *FeedbackUseCase) ListPromptLogs(ctx context.Context, actor Actor, summaryID uuid.UUID, pageParams dto.PageParams) (*dto.PromptLogListResponse, error) {
	if _, err := uc.loadOwnedSummary(ctx, actor, summaryID); err != nil {
		return nil, err
	}

	page, itemsPerPage := pageParams.Normalized()
	total, logs, err := uc.promptLogRepository.FindBySummary(ctx, summaryID, page, itemsPerPage)
	if err != nil {
		return nil, err
	}
	return dto.NewPromptLogListResponse(total, page, itemsPerPage, logs), nil
}

func (uc *FeedbackUseCase) loadOwnedSummary(ctx context.Context, actor Actor, summaryID uuid.UUID) (*entity.Summary, error) {
	summary, err := uc.summaryRepository.FindByID(ctx, summaryID)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		return nil, errs.NewEntityNotFoundError("summary", summaryID.String())
	}
	if !actor.Owns(summary.UserID) {
		return nil, ErrForbidden
	}
	return summary, nil
}

func (uc *FeedbackUseCase) loadReadableSummary(ctx context.Context, actor Actor, summaryID uuid.UUID) (*entity.Summary, error) {
	summary, err := uc.summaryRepository.FindByID(ctx, summaryID)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		return nil, errs.NewEntityNotFoundError("summary", summaryID.String())
	}
	if !summary.IsPublic && !actor.Owns(summary.UserID) {
		return nil, errs.NewEntityNotFoundError("summary", summaryID.String())
	}
	return summary, nil
}
