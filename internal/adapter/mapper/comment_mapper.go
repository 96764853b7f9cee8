package mapper

import (
	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
	"github.com/kikiru328/LLearn-sub001/internal/infrastructure/db/model"
)

// CommentToModel converts a comment entity to its DB model.
func CommentToModel(comment *entity.Comment) *model.CommentModel {
	if comment == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        comment.ID,
		UserID:    comment.UserID,
		SummaryID: comment.SummaryID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

// CommentFromModel converts a DB model back to a comment entity.
func CommentFromModel(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:        m.ID,
		UserID:    m.UserID,
		SummaryID: m.SummaryID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CommentsFromModels converts a slice of DB models to comment entities.
func CommentsFromModels(models []model.CommentModel) []*entity.Comment {
	comments := make([]*entity.Comment, len(models))
	for i := range models {
		comments[i] = CommentFromModel(&models[i])
	}
	return comments
}

// LikeToModel converts a like entity to its DB model.
func LikeToModel(like *entity.Like) *model.LikeModel {
	if like == nil {
		return nil
	}

	return &model.LikeModel{
		ID:         like.ID,
		UserID:     like.UserID,
		TargetType: like.TargetType.String(),
		TargetID:   like.TargetID,
		CreatedAt:  like.CreatedAt,
	}
}

// LikeFromModel converts a DB model back to a like entity.
func LikeFromModel(m *model.LikeModel) (*entity.Like, error) {
	if m == nil {
		return nil, nil
	}

	targetType, err := vo.NewLikeTargetType(m.TargetType)
	if err != nil {
		return nil, err
	}

	return &entity.Like{
		ID:         m.ID,
		UserID:     m.UserID,
		TargetType: targetType,
		TargetID:   m.TargetID,
		CreatedAt:  m.CreatedAt,
	}, nil
}
