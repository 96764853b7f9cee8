package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
	"github.com/kikiru328/LLearn-sub001/internal/domain/repository"
	"github.com/kikiru328/LLearn-sub001/internal/domain/service"
	"github.com/kikiru328/LLearn-sub001/internal/usecase/dto"
)

// Popular tag listing default and cap.
const (
	defaultPopularTagLimit = 10
	maxPopularTagLimit     = 50
)

// TagUseCase handles tag creation, reuse and listings on top of the tag
// domain service.
type TagUseCase struct {
	logger        *zap.Logger
	tagService    *service.TagService
	tagRepository repository.TagRepository
}

// NewTagUseCase creates the tag use case.
func NewTagUseCase(logger *zap.Logger, tagService *service.TagService, tagRepo repository.TagRepository) *TagUseCase {
	return &TagUseCase{logger: logger, tagService: tagService, tagRepository: tagRepo}
}

// CreateTag creates a tag or returns the existing one with the same
// canonical name. Losing a concurrent creation race is absorbed as reuse.
func (uc *TagUseCase) CreateTag(ctx context.Context, actor Actor, params dto.CreateTagParams) (*dto.TagResponse, error) {
	tag, err := uc.tagService.CreateTag(ctx, uuid.New(), params.Name, actor.ID, time.Time{})
	if err != nil {
		return nil, err
	}

	if err := uc.tagRepository.Save(ctx, tag); err != nil {
		if errs.IsDuplicate(err) {
			// A concurrent caller created the name first; reuse that row.
			existing, findErr := uc.tagRepository.FindByName(ctx, tag.Name)
			if findErr != nil {
				return nil, findErr
			}
			if existing != nil {
				return dto.NewTagResponse(existing), nil
			}
		}
		return nil, err
	}

	uc.logger.Info("Tag created",
		zap.String("tag_id", tag.ID.String()),
		zap.String("name", tag.Name.Value()))
	return dto.NewTagResponse(tag), nil
}

// ResolveTags resolves a batch of names to tags, creating the missing ones
// and bumping each resolved tag's usage count.
func (uc *TagUseCase) ResolveTags(ctx context.Context, actor Actor, params dto.ResolveTagsParams) ([]*dto.TagResponse, error) {
	tags, err := uc.tagService.FindOrCreateTagsByNames(ctx, params.Names, actor.ID)
	if err != nil {
		return nil, err
	}

	for _, tag := range tags {
		tag.IncrementUsage()
		if err := uc.tagRepository.Update(ctx, tag); err != nil {
			return nil, err
		}
	}
	return dto.NewTagResponses(tags), nil
}

// ReleaseTag decrements a tag's usage count when a caller detaches it. The
// count floors at zero.
func (uc *TagUseCase) ReleaseTag(ctx context.Context, id uuid.UUID) (*dto.TagResponse, error) {
	tag, err := uc.tagRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, errs.NewEntityNotFoundError("tag", id.String())
	}

	tag.DecrementUsage()
	if err := uc.tagRepository.Update(ctx, tag); err != nil {
		return nil, err
	}
	return dto.NewTagResponse(tag), nil
}

// GetTag returns one tag by id.
func (uc *TagUseCase) GetTag(ctx context.Context, id uuid.UUID) (*dto.TagResponse, error) {
	tag, err := uc.tagRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, errs.NewEntityNotFoundError("tag", id.String())
	}
	return dto.NewTagResponse(tag), nil
}

// ListTags pages all tags alphabetically.
func (uc *TagUseCase) ListTags(ctx context.Context, pageParams dto.PageParams) (*dto.TagListResponse, error) {
	page, itemsPerPage := pageParams.Normalized()
	total, tags, err := uc.tagRepository.FindAll(ctx, page, itemsPerPage)
	if err != nil {
		return nil, err
	}
	return dto.NewTagListResponse(total, page, itemsPerPage, tags), nil
}

// PopularTags lists the most used tags above the popular threshold.
func (uc *TagUseCase) PopularTags(ctx context.Context, limit int) ([]*dto.TagResponse, error) {
	if limit < 1 {
		limit = defaultPopularTagLimit
	}
	if limit > maxPopularTagLimit {
		limit = maxPopularTagLimit
	}

	tags, err := uc.tagRepository.FindPopular(ctx, limit)
	if err != nil {
		return nil, err
	}
	return dto.NewTagResponses(tags), nil
}

// DeleteTag removes a tag entirely. Admin only.
func (uc *TagUseCase) DeleteTag(ctx context.Context, actor Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}

	if err := uc.tagRepository.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("Tag deleted", zap.String("tag_id", id.String()))
	return nil
}
