package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
)

// CreateCommentParams posts a comment on a summary.
type CreateCommentParams struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}

// UpdateCommentParams edits the caller's comment.
type UpdateCommentParams struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}

// CommentResponse is the outbound comment shape.
type CommentResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	SummaryID uuid.UUID `json:"summary_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCommentResponse converts a comment entity to its outbound shape.
func NewCommentResponse(comment *entity.Comment) *CommentResponse {
	if comment == nil {
		return nil
	}
	return &CommentResponse{
		ID:        comment.ID,
		UserID:    comment.UserID,
		SummaryID: comment.SummaryID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

// CommentListResponse is one page of comments in thread order.
type CommentListResponse struct {
	Meta  PageMeta           `json:"meta"`
	Items []*CommentResponse `json:"items"`
}

// NewCommentListResponse builds a comment page.
func NewCommentListResponse(total int64, page, itemsPerPage int, comments []*entity.Comment) *CommentListResponse {
	items := make([]*CommentResponse, len(comments))
	for i, comment := range comments {
		items[i] = NewCommentResponse(comment)
	}
	return &CommentListResponse{Meta: NewPageMeta(total, page, itemsPerPage), Items: items}
}

// LikeStatusResponse reports the caller's like state and the target's
// total.
type LikeStatusResponse struct {
	TargetType string    `json:"target_type"`
	TargetID   uuid.UUID `json:"target_id"`
	Liked      bool      `json:"liked"`
	LikeCount  int64     `json:"like_count"`
}
