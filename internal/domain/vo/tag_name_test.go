package vo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
)

func TestNewTagName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "lowercases input", input: "GoLang", want: "golang"},
		{name: "trims whitespace", input: "  python  ", want: "python"},
		{name: "keeps hangul", input: "머신러닝", want: "머신러닝"},
		{name: "keeps digits", input: "web3", want: "web3"},
		{name: "single rune is valid", input: "c", want: "c"},
		{name: "twenty runes is valid", input: strings.Repeat("a", 20), want: strings.Repeat("a", 20)},
		{name: "rejects empty", input: "", wantErr: true},
		{name: "rejects whitespace only", input: "   ", wantErr: true},
		{name: "rejects over twenty runes", input: strings.Repeat("a", 21), wantErr: true},
		{name: "rejects inner space", input: "go lang", wantErr: true},
		{name: "rejects punctuation", input: "c++", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := vo.NewTagName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var validationErr *errs.ValidationError
				assert.ErrorAs(t, err, &validationErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Value())
		})
	}
}

func TestNewTagNames(t *testing.T) {
	t.Run("collapses duplicates preserving first occurrence order", func(t *testing.T) {
		names, err := vo.NewTagNames([]string{"Go", "python", "GO", "  go  ", "rust"})
		require.NoError(t, err)

		values := make([]string, len(names))
		for i, n := range names {
			values[i] = n.Value()
		}
		assert.Equal(t, []string{"go", "python", "rust"}, values)
	})

	t.Run("discards blank entries", func(t *testing.T) {
		names, err := vo.NewTagNames([]string{"", "  ", "go"})
		require.NoError(t, err)
		assert.Len(t, names, 1)
	})

	t.Run("one invalid entry fails the batch", func(t *testing.T) {
		_, err := vo.NewTagNames([]string{"go", "c++"})
		assert.Error(t, err)
	})

	t.Run("empty batch yields empty slice", func(t *testing.T) {
		names, err := vo.NewTagNames(nil)
		require.NoError(t, err)
		assert.Empty(t, names)
	})
}
