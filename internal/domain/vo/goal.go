package vo

import (
	"strings"
	"unicode/utf8"

	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
)

// GoalMaxLength is the upper bound of a curriculum goal, in runes after
// trimming. A goal is optional so there is no lower bound.
const GoalMaxLength = 500

// Goal is the optional learning goal of a curriculum.
type Goal struct {
	value string
}

// NewGoal trims raw and validates the upper bound. An empty goal is valid.
func NewGoal(raw string) (Goal, error) {
	trimmed := strings.TrimSpace(raw)

	if utf8.RuneCountInString(trimmed) > GoalMaxLength {
		return Goal{}, errs.NewValidationError("goal", "goal_too_long", "goal must be at most 500 characters")
	}

	return Goal{value: trimmed}, nil
}

// Value returns the canonical goal string, possibly empty.
func (g Goal) Value() string { return g.value }

func (g Goal) String() string { return g.value }

// IsEmpty reports whether no goal was set.
func (g Goal) IsEmpty() bool { return g.value == "" }
