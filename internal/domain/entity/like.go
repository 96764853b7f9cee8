package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
)

// Like is a reaction to a summary or curriculum. The triple
// (user, target type, target id) is unique.
type Like struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	TargetType vo.LikeTargetType
	TargetID   uuid.UUID
	CreatedAt  time.Time
}

// NewLike validates the structural invariants and builds a Like.
func NewLike(id, userID uuid.UUID, targetType vo.LikeTargetType, targetID uuid.UUID, createdAt time.Time) (*Like, error) {
	if id == uuid.Nil {
		return nil, errs.NewValidationError("id", "id_empty", "like id must not be empty")
	}
	if userID == uuid.Nil {
		return nil, errs.NewValidationError("user_id", "user_id_empty", "like user must not be empty")
	}
	if _, err := vo.NewLikeTargetType(targetType.String()); err != nil {
		return nil, err
	}
	if targetID == uuid.Nil {
		return nil, errs.NewValidationError("target_id", "target_id_empty", "like target must not be empty")
	}
	if createdAt.IsZero() {
		return nil, errs.NewValidationError("timestamps", "timestamp_zero", "created_at must be set")
	}

	return &Like{
		ID:         id,
		UserID:     userID,
		TargetType: targetType,
		TargetID:   targetID,
		CreatedAt:  createdAt,
	}, nil
}
