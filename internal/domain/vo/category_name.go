package vo

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
)

// CategoryName bounds, in runes after trimming.
const (
	CategoryNameMinLength = 2
	CategoryNameMaxLength = 30
)

// 한글, 영문, 숫자, 공백과 일부 구두점만 허용
var categoryNamePattern = regexp.MustCompile(`^[A-Za-z0-9가-힣\s\-\.\,]+$`)

// CategoryName is the display name of a curriculum category.
type CategoryName struct {
	value string
}

// NewCategoryName trims raw and validates length and character class.
func NewCategoryName(raw string) (CategoryName, error) {
	trimmed := strings.TrimSpace(raw)
	length := utf8.RuneCountInString(trimmed)

	if length < CategoryNameMinLength || length > CategoryNameMaxLength {
		return CategoryName{}, errs.NewValidationError("name", "category_name_length", "category name must be between 2 and 30 characters")
	}
	if !categoryNamePattern.MatchString(trimmed) {
		return CategoryName{}, errs.NewValidationError("name", "category_name_charset", "category name contains disallowed characters")
	}

	return CategoryName{value: trimmed}, nil
}

// Value returns the canonical name.
func (n CategoryName) Value() string { return n.value }

func (n CategoryName) String() string { return n.value }
