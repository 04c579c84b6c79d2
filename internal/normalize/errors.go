package normalize

import (
	"errors"
	"strings"
)

func trim(s string) string { return strings.TrimSpace(s) }

// ValidationError is a submit-time rule violation. Its message is shown to
// the user as-is and the submission never reaches the backend.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func failf(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// optional returns a pointer to the trimmed value, or nil when it is
// empty. Sending an empty string is not equivalent to omitting the field.
func optional(s string) *string {
	t := trim(s)
	if t == "" {
		return nil
	}
	return &t
}

// optionalRef treats a reference as set only when positive; zero or
// negative means "omit the field".
func optionalRef(id int64) *int64 {
	if id <= 0 {
		return nil
	}
	return &id
}
