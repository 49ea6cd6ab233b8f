package services

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed or incomplete input on a public form.
// Field names the offending input so the frontend can highlight it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

var (
	// ErrInvalidState is returned when an approve/reject/remove targets a
	// row that is not in the state the transition requires. The data is
	// untouched when this is returned.
	ErrInvalidState = errors.New("record is not in the required state for this operation")

	// ErrNotFound is returned when the referenced row does not exist.
	ErrNotFound = errors.New("record not found")
)
