package usecase

import (
	"context"
	"fmt"
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

// Like counts live in the cache for this long before a reader refreshes
// them from the database.
const likeCountTTL = time.Minute

// LikeUseCase handles likes on summaries and curricula with a cached
// per-target count.
type LikeUseCase struct {
	logger               *zap.Logger
	likeRepository       repository.LikeRepository
	summaryRepository    repository.SummaryRepository
	curriculumRepository repository.CurriculumRepository
	cache                repository.CacheRepository
}

// NewLikeUseCase creates the like use case.
func NewLikeUseCase(
	logger *zap.Logger,
	likeRepo repository.LikeRepository,
	summaryRepo repository.SummaryRepository,
	curriculumRepo repository.CurriculumRepository,
	cache repository.CacheRepository,
) *LikeUseCase {
	return &LikeUseCase{
		logger:               logger,
		likeRepository:       likeRepo,
		summaryRepository:    summaryRepo,
		curriculumRepository: curriculumRepo,
		cache:                cache,
	}
}

// Like adds the caller's like on a readable target. A repeat like surfaces
// as DuplicateEntityError.
func (uc *LikeUseCase) Like(ctx context.Context, actor Actor, rawTargetType string, targetID uuid.UUID) (*dto.LikeStatusResponse, error) {
	targetType, err := vo.NewLikeTargetType(rawTargetType)
	if err != nil {
		return nil, err
	}
	if err := uc.requireReadableTarget(ctx, actor, targetType, targetID); err != nil {
		return nil, err
	}

	like, err := entity.NewLike(uuid.New(), actor.ID, targetType, targetID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := uc.likeRepository.Save(ctx, like); err != nil {
		return nil, err
	}

	uc.invalidateCount(ctx, targetType, targetID)
	return uc.status(ctx, actor, targetType, targetID)
}

// Unlike removes the caller's like. An unlike without a prior like
// surfaces as EntityNotFoundError.
func (uc *LikeUseCase) Unlike(ctx context.Context, actor Actor, rawTargetType string, targetID uuid.UUID) (*dto.LikeStatusResponse, error) {
	targetType, err := vo.NewLikeTargetType(rawTargetType)
	if err != nil {
		return nil, err
	}

	if err := uc.likeRepository.DeleteByUserAndTarget(ctx, actor.ID, targetType, targetID); err != nil {
		return nil, err
	}

	uc.invalidateCount(ctx, targetType, targetID)
	return uc.status(ctx, actor, targetType, targetID)
}

// Status reports the caller's like state and the target's total count.
func (uc *LikeUseCase) Status(ctx context.Context, actor Actor, rawTargetType string, targetID uuid.UUID) (*dto.LikeStatusResponse, error) {
	targetType, err := vo.NewLikeTargetType(rawTargetType)
	if err != nil {
		return nil, err
	}
	if err := uc.requireReadableTarget(ctx, actor, targetType, targetID); err != nil {
		return nil, err
	}
	return uc.status(ctx, actor, targetType, targetID)
}

func (uc *LikeUseCase) status(ctx context.Context, actor Actor, targetType vo.LikeTargetType, targetID uuid.UUID) (*dto.LikeStatusResponse, error) {
	liked, err := uc.likeRepository.ExistsByUserAndTarget(ctx, actor.ID, targetType, targetID)
	if err != nil {
		return nil, err
	}
	count, err := uc.countByTarget(ctx, targetType, targetID)
	if err != nil {
		return nil, err
	}
	return &dto.LikeStatusResponse{
		TargetType: targetType.String(),
		TargetID:   targetID,
		Liked:      liked,
		LikeCount:  count,
	}, nil
}

// countByTarget serves the count from the cache when possible. Cache
// failures degrade to the database, never to an error.
func (uc *LikeUseCase) countByTarget(ctx context.Context, targetType vo.LikeTargetType, targetID uuid.UUID) (int64, error) {
	key := likeCountKey(targetType, targetID)

	if raw, ok, err := uc.cache.Get(ctx, key); err == nil && ok {
		if count, parseErr := strconv.ParseInt(raw, 10, 64); parseErr == nil {
			return count, nil
		}
	}

	count, err := uc.likeRepository.CountByTarget(ctx, targetType, targetID)
	if err != nil {
		return 0, err
	}

	if err := uc.cache.Set(ctx, key, strconv.FormatInt(count, 10), likeCountTTL); err != nil {
		uc.logger.Warn("Failed to cache like count",
			zap.String("key", key),
			zap.Error(err))
	}
	return count, nil
}

func (uc *LikeUseCase) invalidateCount(ctx context.Context, targetType vo.LikeTargetType, targetID uuid.UUID) {
	key := likeCountKey(targetType, targetID)
	if err := uc.cache.Delete(ctx, key); err != nil {
		uc.logger.Warn("Failed to invalidate like count",
			zap.String("key", key),
			zap.Error(err))
	}
}

func likeCountKey(targetType vo.LikeTargetType, targetID uuid.UUID) string {
	return fmt.Sprintf("likes:%s:%s", targetType, targetID)
}

// requireReadableTarget checks the like target exists and is visible to
// the caller.
func (uc *LikeUseCase) requireReadableTarget(ctx context.Context, actor Actor, targetType vo.LikeTargetType, targetID uuid.UUID) error {
	switch targetType {
	case vo.LikeTargetSummary:
		summary, err := uc.summaryRepository.FindByID(ctx, targetID)
		if err != nil {
			return err
		}
		if summary == nil || (!summary.IsPublic && !actor.Owns(summary.UserID)) {
			return errs.NewEntityNotFoundError("summary", targetID.String())
		}
	case vo.LikeTargetCurriculum:
		curriculum, err := uc.curriculumRepository.FindByID(ctx, targetID)
		if err != nil {
			return err
		}
		if curriculum == nil || (!curriculum.Visibility.IsPublic() && !actor.Owns(curriculum.UserID)) {
			return errs.NewEntityNotFoundError("curriculum", targetID.String())
		}
	}
	return nil
}
