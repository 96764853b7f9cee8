package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
	"github.com/kikiru328/LLearn-sub001/internal/domain/repository"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
	"github.com/kikiru328/LLearn-sub001/internal/usecase/dto"
)

// SummaryUseCase handles weekly summary submission and lifecycle.
type SummaryUseCase struct {
	logger               *zap.Logger
	summaryRepository    repository.SummaryRepository
	curriculumRepository repository.CurriculumRepository
}

// NewSummaryUseCase creates the summary use case.
func NewSummaryUseCase(
	logger *zap.Logger,
	summaryRepo repository.SummaryRepository,
	curriculumRepo repository.CurriculumRepository,
) *SummaryUseCase {
	return &SummaryUseCase{
		logger:               logger,
		summaryRepository:    summaryRepo,
		curriculumRepository: curriculumRepo,
	}
}

// Create submits a summary for one curriculum week. The caller must own
// the curriculum, the week must exist in the plan, and a week accepts only
// one summary.
func (uc *SummaryUseCase) Create(ctx context.Context, actor Actor, curriculumID uuid.UUID, params dto.CreateSummaryParams) (*dto.SummaryResponse, error) {
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

	weekNumber, err := vo.NewWeekNumber(params.WeekNumber)
	if err != nil {
		return nil, err
	}
	if !curriculumHasWeek(curriculum, weekNumber.Value()) {
		return nil, errs.NewValidationError("week_number", "week_number_missing", "week number does not exist in this curriculum")
	}

	taken, err := uc.summaryRepository.ExistsByCurriculumAndWeek(ctx, curriculumID, weekNumber.Value())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewDuplicateEntityError("summary", "week_number", strconv.Itoa(weekNumber.Value()))
	}

	content, err := vo.NewSummaryContent(params.Content)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	summary, err := entity.NewSummary(uuid.New(), curriculum.UserID, curriculumID, weekNumber, content, params.IsPublic, now, now)
	if err != nil {
		return nil, err
	}

	if err := uc.summaryRepository.Save(ctx, summary); err != nil {
		return nil, err
	}

	uc.logger.Info("Summary created",
		zap.String("summary_id", summary.ID.String()),
		zap.String("curriculum_id", curriculumID.String()),
		zap.Int("week_number", weekNumber.Value()))
	return dto.NewSummaryResponse(summary), nil
}

// Get returns one summary. Private summaries are visible only to their
// author and admins.
func (uc *SummaryUseCase) Get(ctx context.Context, actor Actor, id uuid.UUID) (*dto.SummaryResponse, error) {
	summary, err := uc.loadReadable(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return dto.NewSummaryResponse(summary), nil
}

// Update applies a partial content/visibility change. Author or admin
// only.
func (uc *SummaryUseCase) Update(ctx context.Context, actor Actor, id uuid.UUID, params dto.UpdateSummaryParams) (*dto.SummaryResponse, error) {
	summary, err := uc.loadOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if params.Content != nil {
		content, err := vo.NewSummaryContent(*params.Content)
		if err != nil {
			return nil, err
		}
		summary.UpdateContent(content)
	}
	if params.IsPublic != nil && *params.IsPublic != summary.IsPublic {
		summary.ToggleVisibility()
	}

	if err := uc.summaryRepository.Update(ctx, summary); err != nil {
		return nil, err
	}
	return dto.NewSummaryResponse(summary), nil
}

// Delete removes a summary and, via cascade, its feedback, comments and
// prompt logs. Author or admin only.
func (uc *SummaryUseCase) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if _, err := uc.loadOwned(ctx, actor, id); err != nil {
		return err
	}

	if err := uc.summaryRepository.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("Summary deleted",
		zap.String("summary_id", id.String()),
		zap.String("user_id", actor.ID.String()))
	return nil
}

// ListByCurriculum pages summaries of a curriculum the caller may read.
func (uc *SummaryUseCase) ListByCurriculum(ctx context.Context, actor Actor, curriculumID uuid.UUID, pageParams dto.PageParams) (*dto.SummaryListResponse, error) {
	curriculum, err := uc.curriculumRepository.FindByID(ctx, curriculumID)
	if err != nil {
		return nil, err
	}
	if curriculum == nil {
		return nil, errs.NewEntityNotFoundError("curriculum", curriculumID.String())
	}
	if !curriculum.Visibility.IsPublic() && !actor.Owns(curriculum.UserID) {
		return nil, errs.NewEntityNotFoundError("curriculum", curriculumID.String())
	}

	page, itemsPerPage := pageParams.Normalized()
	total, summaries, err := uc.summaryRepository.FindByCurriculum(ctx, curriculumID, page, itemsPerPage)
	if err != nil {
		return nil, err
	}
	return dto.NewSummaryListResponse(total, page, itemsPerPage, summaries), nil
}

// ListByUser pages one author's summaries. Self or admin only.
func (uc *SummaryUseCase) ListByUser(ctx context.Context, actor Actor, userID uuid.UUID, pageParams dto.PageParams) (*dto.SummaryListResponse, error) {
	if !actor.Owns(userID) {
		return nil, ErrForbidden
	}

	page, itemsPerPage := pageParams.Normalized()
	total, summaries, err := uc.summaryRepository.FindByUser(ctx, userID, page, itemsPerPage)
	if err != nil {
		return nil, err
	}
	return dto.NewSummaryListResponse(total, page, itemsPerPage, summaries), nil
}

func (uc *SummaryUseCase) loadReadable(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Summary, error) {
	summary, err := uc.summaryRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		return nil, errs.NewEntityNotFoundError("summary", id.String())
	}
	if !summary.IsPublic && !actor.Owns(summary.UserID) {
		return nil, errs.NewEntityNotFoundError("summary", id.String())
	}
	return summary, nil
}

func (uc *SummaryUseCase) loadOwned(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Summary, error) {
	summary, err := uc.summaryRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		return nil, errs.NewEntityNotFoundError("summary", id.String())
	}
	if !actor.Owns(summary.UserID) {
		return nil, ErrForbidden
	}
	return summary, nil
}

func curriculumHasWeek(curriculum *entity.Curriculum, weekNumber int) bool {
	for _, w := range curriculum.Weeks {
		if w.WeekNumber.Value() == weekNumber {
			return true
		}
	}
	return false
}
