package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
	"github.com/kikiru328/LLearn-sub001/internal/domain/repository"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
)

// TagService coordinates creation and reuse rules across the Tag and
// Category repositories. It never persists anything itself; callers save
// the entities it returns.
type TagService struct {
	tagRepository      repository.TagRepository
	categoryRepository repository.CategoryRepository
}

// NewTagService creates a tag domain service.
func NewTagService(tagRepo repository.TagRepository, categoryRepo repository.CategoryRepository) *TagService {
	return &TagService{
		tagRepository:      tagRepo,
		categoryRepository: categoryRepo,
	}
}

// CreateTag builds a fresh tag for name, or returns the existing tag when
// the canonical name is already taken. createdAt may be zero to use now.
func (s *TagService) CreateTag(ctx context.Context, id uuid.UUID, name string, createdBy uuid.UUID, createdAt time.Time) (*entity.Tag, error) {
	tagName, err := vo.NewTagName(name)
	if err != nil {
		return nil, err
	}

	existing, err := s.tagRepository.FindByName(ctx, tagName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	return entity.NewTag(id, tagName, 0, createdBy, createdAt, createdAt)
}

// CreateCategory builds an active category. createdAt may be zero to use
// now.
func (s *TagService) CreateCategory(ctx context.Context, id uuid.UUID, name, description, color, icon string, sortOrder int, createdAt time.Time) (*entity.Category, error) {
	categoryName, err := vo.NewCategoryName(name)
	if err != nil {
		return nil, err
	}

	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	return entity.NewCategory(id, categoryName, description, color, icon, sortOrder, true, createdAt, createdAt)
}

// IsTagNameUnique reports whether no tag owns the canonical form of name.
func (s *TagService) IsTagNameUnique(ctx context.Context, name string) (bool, error) {
	tagName, err := vo.NewTagName(name)
	if err != nil {
		return false, err
	}
	exists, err := s.tagRepository.ExistsByName(ctx, tagName)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

// IsCategoryNameUnique reports whether no category owns name.
func (s *TagService) IsCategoryNameUnique(ctx context.Context, name string) (bool, error) {
	categoryName, err := vo.NewCategoryName(name)
	if err != nil {
		return false, err
	}
	exists, err := s.categoryRepository.ExistsByName(ctx, categoryName)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

// ValidateTagCreation validates name and returns its canonical form.
// Duplicates are not rejected here; CreateTag resolves them by reuse.
func (s *TagService) ValidateTagCreation(name string) (vo.TagName, error) {
	return vo.NewTagName(name)
}

// ValidateCategoryCreation validates name and rejects it when a different
// category already owns it. Passing the id of the category being renamed in
// excludeCategoryID permits renaming a category to its own name.
func (s *TagService) ValidateCategoryCreation(ctx context.Context, name string, excludeCategoryID uuid.UUID) (vo.CategoryName, error) {
	categoryName, err := vo.NewCategoryName(name)
	if err != nil {
		return vo.CategoryName{}, err
	}

	owner, err := s.categoryRepository.FindByName(ctx, categoryName)
	if err != nil {
		return vo.CategoryName{}, err
	}
	if owner != nil && owner.ID != excludeCategoryID {
		return vo.CategoryName{}, errs.NewValidationError("name", "category_name_taken", "another category already uses this name")
	}

	return categoryName, nil
}

// FindOrCreateTagsByNames resolves a batch of raw names to tags, creating
// the missing ones. Blank entries are dropped and duplicates collapse to
// their first occurrence; the repository guarantees at most one insertion
// per distinct name under concurrent use.
func (s *TagService) FindOrCreateTagsByNames(ctx context.Context, names []string, createdBy uuid.UUID) ([]*entity.Tag, error) {
	tagNames, err := vo.NewTagNames(names)
	if err != nil {
		return nil, err
	}
	if len(tagNames) == 0 {
		return []*entity.Tag{}, nil
	}
	return s.tagRepository.FindOrCreateByNames(ctx, tagNames, createdBy)
}
