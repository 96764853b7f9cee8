package mapper

import (
	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
	"github.com/kikiru328/LLearn-sub001/internal/infrastructure/db/model"
)

// SummaryToModel converts a summary entity to its DB model.
func SummaryToModel(summary *entity.Summary) *model.SummaryModel {
	if summary == nil {
		return nil
	}

	return &model.SummaryModel{
		ID:           summary.ID,
		UserID:       summary.UserID,
		CurriculumID: summary.CurriculumID,
		WeekNumber:   summary.WeekNumber.Value(),
		Content:      summary.Content.Value(),
		IsPublic:     summary.IsPublic,
		CreatedAt:    summary.CreatedAt,
		UpdatedAt:    summary.UpdatedAt,
	}
}

// SummaryFromModel converts a DB model back to a summary entity.
func SummaryFromModel(m *model.SummaryModel) (*entity.Summary, error) {
	if m == nil {
		return nil, nil
	}

	weekNumber, err := vo.NewWeekNumber(m.WeekNumber)
	if err != nil {
		return nil, err
	}
	content, err := vo.NewSummaryContent(m.Content)
	if err != nil {
		return nil, err
	}

	return &entity.Summary{
		ID:           m.ID,
		UserID:       m.UserID,
		CurriculumID: m.CurriculumID,
		WeekNumber:   weekNumber,
		Content:      content,
		IsPublic:     m.IsPublic,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}

// SummariesFromModels converts a slice of DB models to summary entities.
func SummariesFromModels(models []model.SummaryModel) ([]*entity.Summary, error) {
	summaries := make([]*entity.Summary, len(models))
	for i := range models {
		summary, err := SummaryFromModel(&models[i])
		if err != nil {
			return nil, err
		}
		summaries[i] = summary
	}
	return summaries, nil
}

// FeedbackToModel converts a feedback entity to its DB model.
func FeedbackToModel(feedback *entity.Feedback) *model.FeedbackModel {
	if feedback == nil {
		return nil
	}

	return &model.FeedbackModel{
		ID:        feedback.ID,
		SummaryID: feedback.SummaryID,
		Reviewer:  feedback.Reviewer,
		Comment:   feedback.Comment.Value(),
		CreatedAt: feedback.CreatedAt,
	}
}

// FeedbackFromModel converts a DB model back to a feedback entity.
func FeedbackFromModel(m *model.FeedbackModel) (*entity.Feedback, error) {
	if m == nil {
		return nil, nil
	}

	comment, err := vo.NewFeedbackComment(m.Comment)
	if err != nil {
		return nil, err
	}

	return &entity.Feedback{
		ID:        m.ID,
		SummaryID: m.SummaryID,
		Reviewer:  m.Reviewer,
		Comment:   comment,
		CreatedAt: m.CreatedAt,
	}, nil
}

// FeedbacksFromModels converts a slice of DB models to feedback entities.
func FeedbacksFromModels(models []model.FeedbackModel) ([]*entity.Feedback, error) {
	feedbacks := make([]*entity.Feedback, len(models))
	for i := range models {
		feedback, err := FeedbackFromModel(&models[i])
		if err != nil {
			return nil, err
		}
		feedbacks[i] = feedback
	}
	return feedbacks, nil
}

// PromptLogToModel converts a prompt log entity to its DB model.
func PromptLogToModel(log *entity.PromptLog) *model.PromptLogModel {
	if log == nil {
		return nil
	}

	return &model.PromptLogModel{
		ID:             log.ID,
		SummaryID:      log.SummaryID,
		Prompt:         log.Prompt,
		Response:       log.Response,
		ModelName:      log.ModelName,
		LatencySeconds: log.LatencySeconds,
		CreatedAt:      log.CreatedAt,
	}
}

// PromptLogFromModel converts a DB model back to a prompt log entity.
func PromptLogFromModel(m *model.PromptLogModel) *entity.PromptLog {
	if m == nil {
		return nil
	}

	return &entity.PromptLog{
		ID:             m.ID,
		SummaryID:      m.SummaryID,
		Prompt:         m.Prompt,
		Response:       m.Response,
		ModelName:      m.ModelName,
		LatencySeconds: m.LatencySeconds,
		CreatedAt:      m.CreatedAt,
	}
}

// PromptLogsFromModels converts a slice of DB models to prompt log
// entities.
func PromptLogsFromModels(models []model.PromptLogModel) []*entity.PromptLog {
	logs := make([]*entity.PromptLog, len(models))
	for i := range models {
		logs[i] = PromptLogFromModel(&models[i])
	}
	return logs
}
