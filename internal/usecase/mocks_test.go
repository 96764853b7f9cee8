package usecase_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
)

// Testify mocks for the repository contracts exercised by the use cases.

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Save(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, page, itemsPerPage int) (int64, []*entity.User, error) {
	args := m.Called(ctx, page, itemsPerPage)
	return args.Get(0).(int64), args.Get(1).([]*entity.User), args.Error(2)
}

type MockCurriculumRepository struct {
	mock.Mock
}

func (m *MockCurriculumRepository) Save(ctx context.Context, curriculum *entity.Curriculum) error {
	args := m.Called(ctx, curriculum)
	return args.Error(0)
}

func (m *MockCurriculumRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Curriculum, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Curriculum), args.Error(1)
}

func (m *MockCurriculumRepository) Update(ctx context.Context, curriculum *entity.Curriculum) error {
	args := m.Called(ctx, curriculum)
	return args.Error(0)
}

func (m *MockCurriculumRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCurriculumRepository) FindByUser(ctx context.Context, userID uuid.UUID, page, itemsPerPage int) (int64, []*entity.Curriculum, error) {
	args := m.Called(ctx, userID, page, itemsPerPage)
	return args.Get(0).(int64), args.Get(1).([]*entity.Curriculum), args.Error(2)
}

func (m *MockCurriculumRepository) FindPublic(ctx context.Context, page, itemsPerPage int) (int64, []*entity.Curriculum, error) {
	args := m.Called(ctx, page, itemsPerPage)
	return args.Get(0).(int64), args.Get(1).([]*entity.Curriculum), args.Error(2)
}

func (m *MockCurriculumRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockSummaryRepository struct {
	mock.Mock
}

func (m *MockSummaryRepository) Save(ctx context.Context, summary *entity.Summary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

func (m *MockSummaryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Summary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Summary), args.Error(1)
}

func (m *MockSummaryRepository) Update(ctx context.Context, summary *entity.Summary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

func (m *MockSummaryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSummaryRepository) FindByCurriculum(ctx context.Context, curriculumID uuid.UUID, page, itemsPerPage int) (int64, []*entity.Summary, error) {
	args := m.Called(ctx, curriculumID, page, itemsPerPage)
	return args.Get(0).(int64), args.Get(1).([]*entity.Summary), args.Error(2)
}

func (m *MockSummaryRepository) FindByUser(ctx context.Context, userID uuid.UUID, page, itemsPerPage int) (int64, []*entity.Summary, error) {
	args := m.Called(ctx, userID, page, itemsPerPage)
	return args.Get(0).(int64), args.Get(1).([]*entity.Summary), args.Error(2)
}

func (m *MockSummaryRepository) ExistsByCurriculumAndWeek(ctx context.Context, curriculumID uuid.UUID, weekNumber int) (bool, error) {
	args := m.Called(ctx, curriculumID, weekNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockSummaryRepository) CountByCurriculum(ctx context.Context, curriculumID uuid.UUID) (int64, error) {
	args := m.Called(ctx, curriculumID)
	return args.Get(0).(int64), args.Error(1)
}

type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) Save(ctx context.Context, feedback *entity.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

func (m *MockFeedbackRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) FindBySummary(ctx context.Context, summaryID uuid.UUID) (*entity.Feedback, error) {
	args := m.Called(ctx, summaryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFeedbackRepository) ExistsBySummary(ctx context.Context, summaryID uuid.UUID) (bool, error) {
	args := m.Called(ctx, summaryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFeedbackRepository) FindByUser(ctx context.Context, userID uuid.UUID, page, itemsPerPage int) (int64, []*entity.Feedback, error) {
	args := m.Called(ctx, userID, page, itemsPerPage)
	return args.Get(0).(int64), args.Get(1).([]*entity.Feedback), args.Error(2)
}

func (m *MockFeedbackRepository) FindByCurriculum(ctx context.Context, curriculumID uuid.UUID, page, itemsPerPage int) (int64, []*entity.Feedback, error) {
	args := m.Called(ctx, curriculumID, page, itemsPerPage)
	return args.Get(0).(int64), args.Get(1).([]*entity.Feedback), args.Error(2)
}

type MockPromptLogRepository struct {
	mock.Mock
}

func (m *MockPromptLogRepository) Save(ctx context.Context, log *entity.PromptLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockPromptLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PromptLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PromptLog), args.Error(1)
}

func (m *MockPromptLogRepository) FindBySummary(ctx context.Context, summaryID uuid.UUID, page, itemsPerPage int) (int64, []*entity.PromptLog, error) {
	args := m.Called(ctx, summaryID, page, itemsPerPage)
	return args.Get(0).(int64), args.Get(1).([]*entity.PromptLog), args.Error(2)
}

func (m *MockPromptLogRepository) CountBySummary(ctx context.Context, summaryID uuid.UUID) (int64, error) {
	args := m.Called(ctx, summaryID)
	return args.Get(0).(int64), args.Error(1)
}

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Save(ctx context.Context, like *entity.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockLikeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Like, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Like), args.Error(1)
}

func (m *MockLikeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLikeRepository) DeleteByUserAndTarget(ctx context.Context, userID uuid.UUID, targetType vo.LikeTargetType, targetID uuid.UUID) error {
	args := m.Called(ctx, userID, targetType, targetID)
	return args.Error(0)
}

func (m *MockLikeRepository) ExistsByUserAndTarget(ctx context.Context, userID uuid.UUID, targetType vo.LikeTargetType, targetID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, targetType, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) CountByTarget(ctx context.Context, targetType vo.LikeTargetType, targetID uuid.UUID) (int64, error) {
	args := m.Called(ctx, targetType, targetID)
	return args.Get(0).(int64), args.Error(1)
}

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

type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// fakeHasher is a deterministic stand-in for the bcrypt hasher.
type fakeHasher struct{}

func (fakeHasher) Hash(raw string) (string, error) { return "hashed:" + raw, nil }

func (fakeHasher) Verify(raw, stored string) bool { return stored == "hashed:"+raw }
