package entity_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
)

func newTestTag(t *testing.T, usageCount int) *entity.Tag {
	t.Helper()
	now := time.Now().UTC()
	name, err := vo.NewTagName("golang")
	require.NoError(t, err)
	tag, err := entity.NewTag(uuid.New(), name, usageCount, uuid.New(), now, now)
	require.NoError(t, err)
	return tag
}

func TestNewTag(t *testing.T) {
	now := time.Now().UTC()
	name, _ := vo.NewTagName("golang")

	_, err := entity.NewTag(uuid.New(), name, -1, uuid.New(), now, now)
	assert.Error(t, err, "negative usage count is invalid")

	_, err = entity.NewTag(uuid.New(), vo.TagName{}, 0, uuid.New(), now, now)
	assert.Error(t, err, "zero-value name is invalid")
}

func TestTag_UsageCounter(t *testing.T) {
	tag := newTestTag(t, 0)

	tag.IncrementUsage()
	tag.IncrementUsage()
	assert.Equal(t, 2, tag.UsageCount)

	tag.DecrementUsage()
	assert.Equal(t, 1, tag.UsageCount)

	// The counter floors at zero.
	tag.DecrementUsage()
	tag.DecrementUsage()
	assert.Equal(t, 0, tag.UsageCount)
}

func TestTag_IsPopular(t *testing.T) {
	assert.False(t, newTestTag(t, entity.PopularTagThreshold-1).IsPopular())
	assert.True(t, newTestTag(t, entity.PopularTagThreshold).IsPopular())
	assert.True(t, newTestTag(t, entity.PopularTagThreshold+5).IsPopular())
}
