package entity

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
)

// WeekTopic is one study week inside a curriculum. It lives and dies with
// its parent curriculum.
type WeekTopic struct {
	WeekNumber vo.WeekNumber
	Topic      string
}

// NewWeekTopic validates the topic and builds a WeekTopic.
func NewWeekTopic(weekNumber vo.WeekNumber, topic string) (WeekTopic, error) {
	trimmed := strings.TrimSpace(topic)
	if trimmed == "" {
		return WeekTopic{}, errs.NewValidationError("topic", "week_topic_empty", "week topic must not be empty")
	}
	return WeekTopic{WeekNumber: weekNumber, Topic: trimmed}, nil
}

// Curriculum is a multi-week study plan owned by one user. The week list
// keeps authoring order; week numbers are unique within the curriculum.
type Curriculum struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Title      vo.Title
	Goal       vo.Goal
	Visibility vo.Visibility
	Weeks      []WeekTopic
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewCurriculum validates the structural invariants and builds a Curriculum.
func NewCurriculum(id, userID uuid.UUID, title vo.Title, goal vo.Goal, visibility vo.Visibility, weeks []WeekTopic, createdAt, updatedAt time.Time) (*Curriculum, error) {
	if id == uuid.Nil {
		return nil, errs.NewValidationError("id", "id_empty", "curriculum id must not be empty")
	}
	if userID == uuid.Nil {
		return nil, errs.NewValidationError("user_id", "user_id_empty", "curriculum owner must not be empty")
	}
	if title.IsZero() {
		return nil, errs.NewValidationError("title", "title_empty", "curriculum title must be set")
	}
	if _, err := vo.NewVisibility(visibility.String()); err != nil {
		return nil, err
	}
	if createdAt.IsZero() || updatedAt.IsZero() {
		return nil, errs.NewValidationError("timestamps", "timestamp_zero", "created_at and updated_at must be set")
	}

	seen := make(map[int]struct{}, len(weeks))
	for _, w := range weeks {
		if _, dup := seen[w.WeekNumber.Value()]; dup {
			return nil, errs.NewValidationError("weeks", "week_number_duplicate", "week numbers must be unique within a curriculum")
		}
		seen[w.WeekNumber.Value()] = struct{}{}
	}

	return &Curriculum{
		ID:         id,
		UserID:     userID,
		Title:      title,
		Goal:       goal,
		Visibility: visibility,
		Weeks:      weeks,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}, nil
}

// ChangeTitle replaces the title.
func (c *Curriculum) ChangeTitle(title vo.Title) {
	c.Title = title
	c.touch()
}

// UpdateGoal replaces the goal.
func (c *Curriculum) UpdateGoal(goal vo.Goal) {
	c.Goal = goal
	c.touch()
}

// ToggleVisibility flips between PUBLIC and PRIVATE.
func (c *Curriculum) ToggleVisibility() {
	c.Visibility = c.Visibility.Toggled()
	c.touch()
}

// AddWeekTopic appends a week in authoring order. The week number must be
// unused within the curriculum.
func (c *Curriculum) AddWeekTopic(week WeekTopic) error {
	if c.hasWeek(week.WeekNumber.Value()) {
		return errs.NewValidationError("weeks", "week_number_duplicate", "week number already exists in this curriculum")
	}
	c.Weeks = append(c.Weeks, week)
	c.touch()
	return nil
}

// UpdateWeekTopic replaces the topic of an existing week.
func (c *Curriculum) UpdateWeekTopic(weekNumber vo.WeekNumber, topic string) error {
	updated, err := NewWeekTopic(weekNumber, topic)
	if err != nil {
		return err
	}
	for i, w := range c.Weeks {
		if w.WeekNumber.Value() == weekNumber.Value() {
			c.Weeks[i] = updated
			c.touch()
			return nil
		}
	}
	return errs.NewValidationError("weeks", "week_number_missing", "week number does not exist in this curriculum")
}

// RemoveWeekTopic deletes a week from the curriculum.
func (c *Curriculum) RemoveWeekTopic(weekNumber vo.WeekNumber) error {
	for i, w := range c.Weeks {
		if w.WeekNumber.Value() == weekNumber.Value() {
			c.Weeks = append(c.Weeks[:i], c.Weeks[i+1:]...)
			c.touch()
			return nil
		}
	}
	return errs.NewValidationError("weeks", "week_number_missing", "week number does not exist in this curriculum")
}

// WeeksSorted returns a copy of the weeks ordered by week number, for
// readers that explicitly request a sorted view.
func (c *Curriculum) WeeksSorted() []WeekTopic {
	sorted := make([]WeekTopic, len(c.Weeks))
	copy(sorted, c.Weeks)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].WeekNumber.Value() < sorted[j].WeekNumber.Value()
	})
	return sorted
}

func (c *Curriculum) hasWeek(n int) bool {
	for _, w := range c.Weeks {
		if w.WeekNumber.Value() == n {
			return true
		}
	}
	return false
}

func (c *Curriculum) touch() {
	c.UpdatedAt = time.Now().UTC()
}
