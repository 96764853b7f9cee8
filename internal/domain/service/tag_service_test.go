package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
	"github.com/kikiru328/LLearn-sub001/internal/domain/service"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
)

// MockTagRepository is a mock implementation of repository.TagRepository
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) Save(ctx context.Context, tag *entity.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tag), args.Error(1)
}

func (m *MockTagRepository) FindByName(ctx context.Context, name vo.TagName) (*entity.Tag, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tag), args.Error(1)
}

func (m *MockTagRepository) Update(ctx context.Context, tag *entity.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTagRepository) ExistsByName(ctx context.Context, name vo.TagName) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockTagRepository) FindAll(ctx context.Context, page, itemsPerPage int) (int64, []*entity.Tag, error) {
	args := m.Called(ctx, page, itemsPerPage)
	return args.Get(0).(int64), args.Get(1).([]*entity.Tag), args.Error(2)
}

func (m *MockTagRepository) FindPopular(ctx context.Context, limit int) ([]*entity.Tag, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]*entity.Tag), args.Error(1)
}

func (m *MockTagRepository) FindOrCreateByNames(ctx context.Context, names []vo.TagName, createdBy uuid.UUID) ([]*entity.Tag, error) {
	args := m.Called(ctx, names, createdBy)
	return args.Get(0).([]*entity.Tag), args.Error(1)
}

// MockCategoryRepository is a mock implementation of repository.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByName(ctx context.Context, name vo.CategoryName) (*entity.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) ExistsByName(ctx context.Context, name vo.CategoryName) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) FindActive(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context, page, itemsPerPage int) (int64, []*entity.Category, error) {
	args := m.Called(ctx, page, itemsPerPage)
	return args.Get(0).(int64), args.Get(1).([]*entity.Category), args.Error(2)
}

func existingTag(t *testing.T, name string, usageCount int) *entity.Tag {
	t.Helper()
	tagName, err := vo.NewTagName(name)
	require.NoError(t, err)
	now := time.Now().UTC()
	tag, err := entity.NewTag(uuid.New(), tagName, usageCount, uuid.New(), now, now)
	require.NoError(t, err)
	return tag
}

func TestTagService_CreateTag(t *testing.T) {
	ctx := context.Background()
	creator := uuid.New()

	t.Run("builds a fresh tag with canonical name", func(t *testing.T) {
		mockTags := new(MockTagRepository)
		svc := service.NewTagService(mockTags, new(MockCategoryRepository))

		golang, _ := vo.NewTagName("golang")
		mockTags.On("FindByName", ctx, golang).Return(nil, nil)

		id := uuid.New()
		tag, err := svc.CreateTag(ctx, id, "  GoLang  ", creator, time.Time{})

		require.NoError(t, err)
		assert.Equal(t, id, tag.ID)
		assert.Equal(t, "golang", tag.Name.Value())
		assert.Equal(t, 0, tag.UsageCount)
		assert.Equal(t, creator, tag.CreatedBy)
		assert.False(t, tag.CreatedAt.IsZero())
		mockTags.AssertExpectations(t)
	})

	t.Run("reuses the existing tag on name collision", func(t *testing.T) {
		mockTags := new(MockTagRepository)
		svc := service.NewTagService(mockTags, new(MockCategoryRepository))

		existing := existingTag(t, "golang", 7)
		golang, _ := vo.NewTagName("golang")
		mockTags.On("FindByName", ctx, golang).Return(existing, nil)

		tag, err := svc.CreateTag(ctx, uuid.New(), "GOLANG", creator, time.Time{})

		require.NoError(t, err)
		assert.Same(t, existing, tag)
		mockTags.AssertExpectations(t)
	})

	t.Run("rejects invalid names before touching the repository", func(t *testing.T) {
		mockTags := new(MockTagRepository)
		svc := service.NewTagService(mockTags, new(MockCategoryRepository))

		_, err := svc.CreateTag(ctx, uuid.New(), "go lang", creator, time.Time{})

		assert.Error(t, err)
		mockTags.AssertNotCalled(t, "FindByName", mock.Anything, mock.Anything)
	})
}

func TestTagService_IsTagNameUnique(t *testing.T) {
	ctx := context.Background()

	mockTags := new(MockTagRepository)
	svc := service.NewTagService(mockTags, new(MockCategoryRepository))

	golang, _ := vo.NewTagName("golang")
	mockTags.On("ExistsByName", ctx, golang).Return(true, nil)

	unique, err := svc.IsTagNameUnique(ctx, "GoLang")
	require.NoError(t, err)
	assert.False(t, unique)
	mockTags.AssertExpectations(t)
}

func TestTagService_ValidateCategoryCreation(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts a free name", func(t *testing.T) {
		mockCategories := new(MockCategoryRepository)
		svc := service.NewTagService(new(MockTagRepository), mockCategories)

		name, _ := vo.NewCategoryName("Programming")
		mockCategories.On("FindByName", ctx, name).Return(nil, nil)

		got, err := svc.ValidateCategoryCreation(ctx, "Programming", uuid.Nil)
		require.NoError(t, err)
		assert.Equal(t, "Programming", got.Value())
	})

	t.Run("rejects a name owned by another category", func(t *testing.T) {
		mockCategories := new(MockCategoryRepository)
		svc := service.NewTagService(new(MockTagRepository), mockCategories)

		now := time.Now().UTC()
		name, _ := vo.NewCategoryName("Programming")
		owner, err := entity.NewCategory(uuid.New(), name, "", "#3366FF", "", 0, true, now, now)
		require.NoError(t, err)

		mockCategories.On("FindByName", ctx, name).Return(owner, nil)

		_, err = svc.ValidateCategoryCreation(ctx, "Programming", uuid.Nil)
		assert.Error(t, err)
	})

	t.Run("permits renaming a category to its own name", func(t *testing.T) {
		mockCategories := new(MockCategoryRepository)
		svc := service.NewTagService(new(MockTagRepository), mockCategories)

		now := time.Now().UTC()
		name, _ := vo.NewCategoryName("Programming")
		owner, err := entity.NewCategory(uuid.New(), name, "", "#3366FF", "", 0, true, now, now)
		require.NoError(t, err)

		mockCategories.On("FindByName", ctx, name).Return(owner, nil)

		got, err := svc.ValidateCategoryCreation(ctx, "Programming", owner.ID)
		require.NoError(t, err)
		assert.Equal(t, "Programming", got.Value())
	})
}

func TestTagService_FindOrCreateTagsByNames(t *testing.T) {
	ctx := context.Background()
	creator := uuid.New()

	t.Run("collapses duplicates before hitting the repository", func(t *testing.T) {
		mockTags := new(MockTagRepository)
		svc := service.NewTagService(mockTags, new(MockCategoryRepository))

		golang, _ := vo.NewTagName("golang")
		python, _ := vo.NewTagName("python")
		resolved := []*entity.Tag{existingTag(t, "golang", 1), existingTag(t, "python", 0)}

		mockTags.On("FindOrCreateByNames", ctx, []vo.TagName{golang, python}, creator).Return(resolved, nil)

		tags, err := svc.FindOrCreateTagsByNames(ctx, []string{"GoLang", "  ", "golang", "Python"}, creator)
		require.NoError(t, err)
		assert.Len(t, tags, 2)
		mockTags.AssertExpectations(t)
	})

	t.Run("all-blank input resolves to an empty batch without repository calls", func(t *testing.T) {
		mockTags := new(MockTagRepository)
		svc := service.NewTagService(mockTags, new(MockCategoryRepository))

		tags, err := svc.FindOrCreateTagsByNames(ctx, []string{"", "   "}, creator)
		require.NoError(t, err)
		assert.Empty(t, tags)
		mockTags.AssertNotCalled(t, "FindOrCreateByNames", mock.Anything, mock.Anything, mock.Anything)
	})
}
