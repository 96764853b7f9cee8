package usecase

import (
	"go.uber.org/zap"

	"github.com/kikiru328/LLearn-sub001/internal/config"
	"github.com/kikiru328/LLearn-sub001/internal/domain/repository"
	"github.com/kikiru328/LLearn-sub001/internal/domain/service"
)

// UseCases bundles every use case for injection into the HTTP layer.
type UseCases struct {
	Auth       *AuthUseCase
	User       *UserUseCase
	Curriculum *CurriculumUseCase
	Summary    *SummaryUseCase
	Feedback   *FeedbackUseCase
	Comment    *CommentUseCase
	Like       *LikeUseCase
	Tag        *TagUseCase
	Category   *CategoryUseCase
}

// InitUseCases wires the use cases over the repository bundle and the
// domain services.
func InitUseCases(
	cfg *config.Config,
	logger *zap.Logger,
	repos *repository.Repositories,
	cache repository.CacheRepository,
	hasher service.PasswordHasher,
) *UseCases {
	tagService := service.NewTagService(repos.Tag, repos.Category)

	return &UseCases{
		Auth:       NewAuthUseCase(logger, repos.User, hasher, cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry),
		User:       NewUserUseCase(logger, repos.User),
		Curriculum: NewCurriculumUseCase(logger, repos.Curriculum),
		Summary:    NewSummaryUseCase(logger, repos.Summary, repos.Curriculum),
		Feedback:   NewFeedbackUseCase(logger, repos.Feedback, repos.PromptLog, repos.Summary, repos.Curriculum),
		Comment:    NewCommentUseCase(logger, repos.Comment, repos.Summary),
		Like:       NewLikeUseCase(logger, repos.Like, repos.Summary, repos.Curriculum, cache),
		Tag:        NewTagUseCase(logger, tagService, repos.Tag),
		Category:   NewCategoryUseCase(logger, tagService, repos.Category),
	}
}
