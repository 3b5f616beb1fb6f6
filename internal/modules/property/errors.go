package property

import (
	"errors"
	"fmt"
)

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrNotOwner         = errors.New("you do not own this property")
	ErrNotEditable      = errors.New("property can no longer be edited")
	ErrAlreadySubmitted = errors.New("property is already submitted or approved")
)

// MissingFieldError names the first required field a non-draft submission
// is missing. Drafts skip this validation entirely.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}
