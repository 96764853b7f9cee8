package mapper

import (
	"sort"

	"github.com/google/uuid"

	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
	"github.com/kikiru328/LLearn-sub001/internal/infrastructure/db/model"
)

// CurriculumToModel converts a curriculum entity to its DB model. Week rows
// get fresh ids; they are value objects that live and die with the parent
// and are rewritten wholesale on update.
func CurriculumToModel(curriculum *entity.Curriculum) *model.CurriculumModel {
	if curriculum == nil {
		return nil
	}

	weeks := make([]model.WeekTopicModel, len(curriculum.Weeks))
	for i, w := range curriculum.Weeks {
		weeks[i] = model.WeekTopicModel{
			ID:           uuid.New(),
			CurriculumID: curriculum.ID,
			WeekNumber:   w.WeekNumber.Value(),
			Topic:        w.Topic,
			Position:     i,
		}
	}

	return &model.CurriculumModel{
		ID:         curriculum.ID,
		UserID:     curriculum.UserID,
		Title:      curriculum.Title.Value(),
		Goal:       curriculum.Goal.Value(),
		Visibility: curriculum.Visibility.String(),
		Weeks:      weeks,
		CreatedAt:  curriculum.CreatedAt,
		UpdatedAt:  curriculum.UpdatedAt,
	}
}

// CurriculumFromModel converts a DB model back to a curriculum entity. The
// week list is restored in authoring order.
func CurriculumFromModel(m *model.CurriculumModel) (*entity.Curriculum, error) {
	if m == nil {
		return nil, nil
	}

	title, err := vo.NewTitle(m.Title)
	if err != nil {
		return nil, err
	}
	goal, err := vo.NewGoal(m.Goal)
	if err != nil {
		return nil, err
	}
	visibility, err := vo.NewVisibility(m.Visibility)
	if err != nil {
		return nil, err
	}

	rows := make([]model.WeekTopicModel, len(m.Weeks))
	copy(rows, m.Weeks)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })

	weeks := make([]entity.WeekTopic, len(rows))
	for i, row := range rows {
		weekNumber, err := vo.NewWeekNumber(row.WeekNumber)
		if err != nil {
			return nil, err
		}
		week, err := entity.NewWeekTopic(weekNumber, row.Topic)
		if err != nil {
			return nil, err
		}
		weeks[i] = week
	}

	return &entity.Curriculum{
		ID:         m.ID,
		UserID:     m.UserID,
		Title:      title,
		Goal:       goal,
		Visibility: visibility,
		Weeks:      weeks,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}, nil
}

// CurriculumsFromModels converts a slice of DB models to curriculum
// entities.
func CurriculumsFromModels(models []model.CurriculumModel) ([]*entity.Curriculum, error) {
	curricula := make([]*entity.Curriculum, len(models))
	for i := range models {
		curriculum, err := CurriculumFromModel(&models[i])
		if err != nil {
			return nil, err
		}
		curricula[i] = curriculum
	}
	return curricula, nil
}
