package repository

// Repositories bundles every repository interface for injection.
type Repositories struct {
	User       UserRepository
	Curriculum CurriculumRepository
	Summary    SummaryRepository
	Feedback   FeedbackRepository
	Comment    CommentRepository
	Like       LikeRepository
	PromptLog  PromptLogRepository
	Tag        TagRepository
	Category   CategoryRepository
}
