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

// CurriculumUseCase handles curriculum CRUD and week topic edits.
type CurriculumUseCase struct {
	logger               *zap.Logger
	curriculumRepository repository.CurriculumRepository
}

// NewCurriculumUseCase creates the curriculum use case.
func NewCurriculumUseCase(logger *zap.Logger, curriculumRepo repository.CurriculumRepository) *CurriculumUseCase {
	return &CurriculumUseCase{logger: logger, curriculumRepository: curriculumRepo}
}

// Create builds a curriculum owned by the caller. Visibility defaults to
// PRIVATE when the request omits it.
func (uc *CurriculumUseCase) Create(ctx context.Context, actor Actor, params dto.CreateCurriculumParams) (*dto.CurriculumResponse, error) {
	title, err := vo.NewTitle(params.Title)
	if err != nil {
		return nil, err
	}
	goal, err := vo.NewGoal(params.Goal)
	if err != nil {
		return nil, err
	}

	visibility := vo.VisibilityPrivate
	if params.Visibility != "" {
		visibility, err = vo.NewVisibility(params.Visibility)
		if err != nil {
			return nil, err
		}
	}

	weeks := make([]entity.WeekTopic, 0, len(params.Weeks))
	for _, w := range params.Weeks {
		weekNumber, err := vo.NewWeekNumber(w.WeekNumber)
		if err != nil {
			return nil, err
		}
		week, err := entity.NewWeekTopic(weekNumber, w.Topic)
		if err != nil {
			return nil, err
		}
		weeks = append(weeks, week)
	}

	now := time.Now().UTC()
	curriculum, err := entity.NewCurriculum(uuid.New(), actor.ID, title, goal, visibility, weeks, now, now)
	if err != nil {
		return nil, err
	}

	if err := uc.curriculumRepository.Save(ctx, curriculum); err != nil {
		return nil, err
	}

	uc.logger.Info("Curriculum created",
		zap.String("curriculum_id", curriculum.ID.String()),
		zap.String("user_id", actor.ID.String()))
	return dto.NewCurriculumResponse(curriculum), nil
}

// Get returns one curriculum. Private curricula are visible only to their
// owner and admins; everyone else gets not-found, never forbidden.
func (uc *CurriculumUseCase) Get(ctx context.Context, actor Actor, id uuid.UUID) (*dto.CurriculumResponse, error) {
	curriculum, err := uc.loadReadable(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return dto.NewCurriculumResponse(curriculum), nil
}

// ListMine pages the caller's own curricula.
func (uc *CurriculumUseCase) ListMine(ctx context.Context, actor Actor, pageParams dto.PageParams) (*dto.CurriculumListResponse, error) {
	page, itemsPerPage := pageParams.Normalized()
	total, curricula, err := uc.curriculumRepository.FindByUser(ctx, actor.ID, page, itemsPerPage)
	if err != nil {
		return nil, err
	}
	return dto.NewCurriculumListResponse(total, page, itemsPerPage, curricula), nil
}

// ListPublic pages PUBLIC curricula across all users.
func (uc *CurriculumUseCase) ListPublic(ctx context.Context, pageParams dto.PageParams) (*dto.CurriculumListResponse, error) {
	page, itemsPerPage := pageParams.Normalized()
	total, curricula, err := uc.curriculumRepository.FindPublic(ctx, page, itemsPerPage)
	if err != nil {
		return nil, err
	}
	return dto.NewCurriculumListResponse(total, page, itemsPerPage, curricula), nil
}

// Update applies a partial title/goal change. Owner or admin only.
func (uc *CurriculumUseCase) Update(ctx context.Context, actor Actor, id uuid.UUID, params dto.UpdateCurriculumParams) (*dto.CurriculumResponse, error) {
	curriculum, err := uc.loadOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		title, err := vo.NewTitle(*params.Title)
		if err != nil {
			return nil, err
		}
		curriculum.ChangeTitle(title)
	}
	if params.Goal != nil {
		goal, err := vo.NewGoal(*params.Goal)
		if err != nil {
			return nil, err
		}
		curriculum.UpdateGoal(goal)
	}

	if err := uc.curriculumRepository.Update(ctx, curriculum); err != nil {
		return nil, err
	}
	return dto.NewCurriculumResponse(curriculum), nil
}

// ToggleVisibility flips PUBLIC/PRIVATE. Owner or admin only.
func (uc *CurriculumUseCase) ToggleVisibility(ctx context.Context, actor Actor, id uuid.UUID) (*dto.CurriculumResponse, error) {
	curriculum, err := uc.loadOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	curriculum.ToggleVisibility()
	if err := uc.curriculumRepository.Update(ctx, curriculum); err != nil {
		return nil, err
	}

	uc.logger.Info("Curriculum visibility toggled",
		zap.String("curriculum_id", curriculum.ID.String()),
		zap.String("visibility", curriculum.Visibility.String()))
	return dto.NewCurriculumResponse(curriculum), nil
}

// Delete removes a curriculum and, via cascade, its weeks and summaries.
// Owner or admin only.
func (uc *CurriculumUseCase) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if _, err := uc.loadOwned(ctx, actor, id); err != nil {
		return err
	}

	if err := uc.curriculumRepository.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("Curriculum deleted",
		zap.String("curriculum_id", id.String()),
		zap.String("user_id", actor.ID.String()))
	return nil
}

// AddWeek appends a week topic. Owner or admin only.
func (uc *CurriculumUseCase) AddWeek(ctx context.Context, actor Actor, id uuid.UUID, params dto.WeekTopicParams) (*dto.CurriculumResponse, error) {
	curriculum, err := uc.loadOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	weekNumber, err := vo.NewWeekNumber(params.WeekNumber)
	if err != nil {
		return nil, err
	}
	week, err := entity.NewWeekTopic(weekNumber, params.Topic)
	if err != nil {
		return nil, err
	}
	if err := curriculum.AddWeekTopic(week); err != nil {
		return nil, err
	}

	if err := uc.curriculumRepository.Update(ctx, curriculum); err != nil {
		return nil, err
	}
	return dto.NewCurriculumResponse(curriculum), nil
}

// UpdateWeek replaces the topic of one week. Owner or admin only.
func (uc *CurriculumUseCase) UpdateWeek(ctx context.Context, actor Actor, id uuid.UUID, params dto.WeekTopicParams) (*dto.CurriculumResponse, error) {
	curriculum, err := uc.loadOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	weekNumber, err := vo.NewWeekNumber(params.WeekNumber)
	if err != nil {
		return nil, err
	}
	if err := curriculum.UpdateWeekTopic(weekNumber, params.Topic); err != nil {
		return nil, err
	}

	if err := uc.curriculumRepository.Update(ctx, curriculum); err != nil {
		return nil, err
	}
	return dto.NewCurriculumResponse(curriculum), nil
}

// RemoveWeek deletes one week from the plan. Owner or admin only.
func (uc *CurriculumUseCase) RemoveWeek(ctx context.Context, actor Actor, id uuid.UUID, weekNumber int) (*dto.CurriculumResponse, error) {
	curriculum, err := uc.loadOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	number, err := vo.NewWeekNumber(weekNumber)
	if err != nil {
		return nil, err
	}
	if err := curriculum.RemoveWeekTopic(number); err != nil {
		return nil, err
	}

	if err := uc.curriculumRepository.Update(ctx, curriculum); err != nil {
		return nil, err
	}
	return dto.NewCurriculumResponse(curriculum), nil
}

// loadReadable fetches a curriculum applying the visibility rules.
func (uc *CurriculumUseCase) loadReadable(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Curriculum, error) {
	curriculum, err := uc.curriculumRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if curriculum == nil {
		return nil, errs.NewEntityNotFoundError("curriculum", id.String())
	}
	if !curriculum.Visibility.IsPublic() && !actor.Owns(curriculum.UserID) {
		// Hide private curricula entirely.
		return nil, errs.NewEntityNotFoundError("curriculum", id.String())
	}
	return curriculum, nil
}

// loadOwned fetches a curriculum for mutation by its owner or an admin.
func (uc *CurriculumUseCase) loadOwned(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Curriculum, error) {
	curriculum, err := uc.curriculumRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if curriculum == nil {
		return nil, errs.NewEntityNotFoundError("curriculum", id.String())
	}
	if !actor.Owns(curriculum.UserID) {
		return nil, ErrForbidden
	}
	return curriculum, nil
}
