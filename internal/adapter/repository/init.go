package repository

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	domainrepo "github.com/kikiru328/LLearn-sub001/internal/domain/repository"
)

// InitRepositories wires every GORM-backed repository into the domain
// bundle.
func InitRepositories(database *gorm.DB, logger *zap.Logger) *domainrepo.Repositories {
	return &domainrepo.Repositories{
		User:       NewUserRepository(database, logger),
		Curriculum: NewCurriculumRepository(database, logger),
		Summary:    NewSummaryRepository(database, logger),
		Feedback:   NewFeedbackRepository(database, logger),
		Comment:    NewCommentRepository(database, logger),
		Like:       NewLikeRepository(database, logger),
		PromptLog:  NewPromptLogRepository(database, logger),
		Tag:        NewTagRepository(database, logger),
		Category:   NewCategoryRepository(database, logger),
	}
}
