package workout

import (
	"errors"
	"fmt"
)

// ErrNoDay is returned by intents issued before Load.
var ErrNoDay = errors.New("no day loaded")

// ValidationError reports malformed intent input. Nothing was changed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an intent that references an unknown exercise id.
type NotFoundError struct {
	Day string
	ID  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no exercise %q on %s", e.ID, e.Day)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
