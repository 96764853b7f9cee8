package vo

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
)

// TagName bounds, in runes after trimming and lowercasing.
const (
	TagNameMinLength = 1
	TagNameMaxLength = 20
)

// 소문자 영문, 숫자, 한글만 허용. 공백 불가.
var tagNamePattern = regexp.MustCompile(`^[a-z0-9가-힣]+$`)

// TagName is the canonical, lowercased name of a tag.
type TagName struct {
	value string
}

// NewTagName trims and lowercases raw, then validates length and character
// class. The stored value is always fully lowercase with no whitespace.
func NewTagName(raw string) (TagName, error) {
	canonical := strings.ToLower(strings.TrimSpace(raw))
	length := utf8.RuneCountInString(canonical)

	if length < TagNameMinLength || length > TagNameMaxLength {
		return TagName{}, errs.NewValidationError("name", "tag_name_length", "tag name must be between 1 and 20 characters")
	}
	if !tagNamePattern.MatchString(canonical) {
		return TagName{}, errs.NewValidationError("name", "tag_name_charset", "tag name must contain only letters, digits or Hangul without spaces")
	}

	return TagName{value: canonical}, nil
}

// NewTagNames builds tag names from a batch of candidates. Entries that are
// blank after trimming are discarded; duplicates by canonical form are
// collapsed preserving first-occurrence order. An entry that is non-blank
// but invalid fails the whole batch.
func NewTagNames(raws []string) ([]TagName, error) {
	seen := make(map[string]struct{}, len(raws))
	names := make([]TagName, 0, len(raws))

	for _, raw := range raws {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		name, err := NewTagName(raw)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[name.value]; ok {
			continue
		}
		seen[name.value] = struct{}{}
		names = append(names, name)
	}

	return names, nil
}

// Value returns the canonical lowercased name.
func (n TagName) Value() string { return n.value }

func (n TagName) String() string { return n.value }
