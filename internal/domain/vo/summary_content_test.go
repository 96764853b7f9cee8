package vo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
)

func TestNewSummaryContent(t *testing.T) {
	t.Run("accepts the lower bound", func(t *testing.T) {
		content, err := vo.NewSummaryContent(strings.Repeat("a", 300))
		require.NoError(t, err)
		assert.Equal(t, 300, content.Length())
	})

	t.Run("accepts the upper bound", func(t *testing.T) {
		content, err := vo.NewSummaryContent(strings.Repeat("a", 10000))
		require.NoError(t, err)
		assert.Equal(t, 10000, content.Length())
	})

	t.Run("rejects 299 runes", func(t *testing.T) {
		_, err := vo.NewSummaryContent(strings.Repeat("a", 299))
		assert.Error(t, err)
	})

	t.Run("rejects 10001 runes", func(t *testing.T) {
		_, err := vo.NewSummaryContent(strings.Repeat("a", 10001))
		assert.Error(t, err)
	})

	t.Run("length is measured after trimming", func(t *testing.T) {
		// 299 significant runes padded with whitespace still fails.
		_, err := vo.NewSummaryContent("  " + strings.Repeat("a", 299) + "  ")
		assert.Error(t, err)
	})

	t.Run("length is measured in runes not bytes", func(t *testing.T) {
		content, err := vo.NewSummaryContent(strings.Repeat("가", 300))
		require.NoError(t, err)
		assert.Equal(t, 300, content.Length())
	})
}
