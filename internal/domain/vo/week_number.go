package vo

import "github.com/kikiru328/LLearn-sub001/internal/domain/errs"

// WeekNumber bounds. A curriculum spans at most 24 weeks.
const (
	WeekNumberMin = 1
	WeekNumberMax = 24
)

// WeekNumber identifies a week within a curriculum.
type WeekNumber struct {
	value int
}

// NewWeekNumber validates n against [1, 24].
func NewWeekNumber(n int) (WeekNumber, error) {
	if n < WeekNumberMin || n > WeekNumberMax {
		return WeekNumber{}, errs.NewValidationError("week_number", "week_number_out_of_range", "week number must be between 1 and 24")
	}
	return WeekNumber{value: n}, nil
}

// Value returns the week number.
func (w WeekNumber) Value() int { return w.value }
