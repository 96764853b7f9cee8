package vo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
)

func TestNewVisibility(t *testing.T) {
	t.Run("accepts PUBLIC and PRIVATE", func(t *testing.T) {
		public, err := vo.NewVisibility("PUBLIC")
		require.NoError(t, err)
		assert.True(t, public.IsPublic())

		private, err := vo.NewVisibility("PRIVATE")
		require.NoError(t, err)
		assert.False(t, private.IsPublic())
	})

	t.Run("rejects lowercase and unknown values", func(t *testing.T) {
		_, err := vo.NewVisibility("public")
		assert.Error(t, err)

		_, err = vo.NewVisibility("FRIENDS_ONLY")
		assert.Error(t, err)

		_, err = vo.NewVisibility("")
		assert.Error(t, err)
	})

	t.Run("toggled flips the value both ways", func(t *testing.T) {
		assert.Equal(t, vo.VisibilityPrivate, vo.VisibilityPublic.Toggled())
		assert.Equal(t, vo.VisibilityPublic, vo.VisibilityPrivate.Toggled())
	})
}

func TestNewRole(t *testing.T) {
	admin, err := vo.NewRole("ADMIN")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())

	user, err := vo.NewRole("USER")
	require.NoError(t, err)
	assert.False(t, user.IsAdmin())

	_, err = vo.NewRole("SUPERUSER")
	assert.Error(t, err)
}

func TestNewLikeTargetType(t *testing.T) {
	for _, raw := range []string{"summary", "curriculum"} {
		target, err := vo.NewLikeTargetType(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, target.String())
	}

	_, err := vo.NewLikeTargetType("comment")
	assert.Error(t, err)

	_, err = vo.NewLikeTargetType("SUMMARY")
	assert.Error(t, err)
}
