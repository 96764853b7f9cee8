package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
)

// PopularTagThreshold is the usage count from which a tag counts as popular.
const PopularTagThreshold = 10

// Tag is a reusable label with a denormalized usage counter.
type Tag struct {
	ID         uuid.UUID
	Name       vo.TagName
	UsageCount int
	CreatedBy  uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewTag validates the structural invariants and builds a Tag.
func NewTag(id uuid.UUID, name vo.TagName, usageCount int, createdBy uuid.UUID, createdAt, updatedAt time.Time) (*Tag, error) {
	if id == uuid.Nil {
		return nil, errs.NewValidationError("id", "id_empty", "tag id must not be empty")
	}
	if name.Value() == "" {
		return nil, errs.NewValidationError("name", "tag_name_empty", "tag name must be set")
	}
	if usageCount < 0 {
		return nil, errs.NewValidationError("usage_count", "usage_count_negative", "usage count must not be negative")
	}
	if createdBy == uuid.Nil {
		return nil, errs.NewValidationError("created_by", "created_by_empty", "tag creator must not be empty")
	}
	if createdAt.IsZero() || updatedAt.IsZero() {
		return nil, errs.NewValidationError("timestamps", "timestamp_zero", "created_at and updated_at must be set")
	}

	return &Tag{
		ID:         id,
		Name:       name,
		UsageCount: usageCount,
		CreatedBy:  createdBy,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}, nil
}

// IncrementUsage records one more attachment of the tag.
func (t *Tag) IncrementUsage() {
	t.UsageCount++
	t.touch()
}

// DecrementUsage records one detachment. The counter floors at zero; a
// decrement at zero changes nothing.
func (t *Tag) DecrementUsage() {
	if t.UsageCount == 0 {
		return
	}
	t.UsageCount--
	t.touch()
}

// IsPopular reports whether the usage count reached the popular threshold.
func (t *Tag) IsPopular() bool {
	return t.UsageCount >= PopularTagThreshold
}

func (t *Tag) touch() {
	t.UpdatedAt = time.Now().UTC()
}
