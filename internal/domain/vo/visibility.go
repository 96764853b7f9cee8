package vo

import "github.com/kikiru328/LLearn-sub001/internal/domain/errs"

// Visibility is the exposure level of a curriculum.
type Visibility string

const (
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityPrivate Visibility = "PRIVATE"
)

// NewVisibility validates raw against the closed set {PUBLIC, PRIVATE}.
func NewVisibility(raw string) (Visibility, error) {
	switch Visibility(raw) {
	case VisibilityPublic, VisibilityPrivate:
		return Visibility(raw), nil
	default:
		return "", errs.NewValidationError("visibility", "visibility_invalid", "visibility must be PUBLIC or PRIVATE")
	}
}

// Toggled returns the opposite visibility.
func (v Visibility) Toggled() Visibility {
	if v == VisibilityPublic {
		return VisibilityPrivate
	}
	return VisibilityPublic
}

// IsPublic reports whether the visibility is PUBLIC.
func (v Visibility) IsPublic() bool { return v == VisibilityPublic }

func (v Visibility) String() string { return string(v) }
