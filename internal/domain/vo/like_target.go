package vo

import "github.com/kikiru328/LLearn-sub001/internal/domain/errs"

// LikeTargetType is the kind of entity a like points at.
type LikeTargetType string

const (
	LikeTargetSummary    LikeTargetType = "summary"
	LikeTargetCurriculum LikeTargetType = "curriculum"
)

// NewLikeTargetType validates raw against the closed set
// {summary, curriculum}.
func NewLikeTargetType(raw string) (LikeTargetType, error) {
	switch LikeTargetType(raw) {
	case LikeTargetSummary, LikeTargetCurriculum:
		return LikeTargetType(raw), nil
	default:
		return "", errs.NewValidationError("target_type", "like_target_invalid", "like target must be summary or curriculum")
	}
}

func (t LikeTargetType) String() string { return string(t) }
