package entity_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
)

func mustSummaryContent(t *testing.T) vo.SummaryContent {
	t.Helper()
	content, err := vo.NewSummaryContent(strings.Repeat("a", 300))
	require.NoError(t, err)
	return content
}

func mustWeekNumber(t *testing.T, n int) vo.WeekNumber {
	t.Helper()
	week, err := vo.NewWeekNumber(n)
	require.NoError(t, err)
	return week
}

func mustCategoryName(t *testing.T, raw string) vo.CategoryName {
	t.Helper()
	name, err := vo.NewCategoryName(raw)
	require.NoError(t, err)
	return name
}

func newTestComment(t *testing.T) *entity.Comment {
	t.Helper()
	now := time.Now().UTC()
	comment, err := entity.NewComment(uuid.New(), uuid.New(), uuid.New(), "Nice write-up", now, now)
	require.NoError(t, err)
	return comment
}

func TestNewComment(t *testing.T) {
	now := time.Now().UTC()

	t.Run("rejects blank content", func(t *testing.T) {
		_, err := entity.NewComment(uuid.New(), uuid.New(), uuid.New(), "   ", now, now)
		assert.Error(t, err)
	})

	t.Run("rejects content over 1000 runes", func(t *testing.T) {
		_, err := entity.NewComment(uuid.New(), uuid.New(), uuid.New(), strings.Repeat("a", 1001), now, now)
		assert.Error(t, err)
	})

	t.Run("trims content", func(t *testing.T) {
		comment, err := entity.NewComment(uuid.New(), uuid.New(), uuid.New(), "  hello  ", now, now)
		require.NoError(t, err)
		assert.Equal(t, "hello", comment.Content)
	})
}

func TestComment_Edit(t *testing.T) {
	comment := newTestComment(t)

	require.NoError(t, comment.Edit("Updated thoughts"))
	assert.Equal(t, "Updated thoughts", comment.Content)

	err := comment.Edit("   ")
	assert.Error(t, err)
	assert.Equal(t, "Updated thoughts", comment.Content, "failed edit must not mutate")
}

func TestSummary_ToggleVisibility(t *testing.T) {
	now := time.Now().UTC()
	content := mustSummaryContent(t)
	weekOne := mustWeekNumber(t, 1)

	summary, err := entity.NewSummary(uuid.New(), uuid.New(), uuid.New(), weekOne, content, false, now, now)
	require.NoError(t, err)

	summary.ToggleVisibility()
	assert.True(t, summary.IsPublic)
	summary.ToggleVisibility()
	assert.False(t, summary.IsPublic)
}

func TestCategory_Lifecycle(t *testing.T) {
	now := time.Now().UTC()
	name := mustCategoryName(t, "Programming")

	category, err := entity.NewCategory(uuid.New(), name, "", "#3366FF", "", 0, true, now, now)
	require.NoError(t, err)

	category.Deactivate()
	assert.False(t, category.IsActive)
	category.Activate()
	assert.True(t, category.IsActive)

	category.Rename(mustCategoryName(t, "Software"))
	assert.Equal(t, "Software", category.Name.Value())

	_, err = entity.NewCategory(uuid.New(), name, "", "", "", 0, true, now, now)
	assert.Error(t, err, "color is required")
}
