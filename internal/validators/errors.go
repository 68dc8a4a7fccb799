package validators

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedType is returned when Validate receives something other
	// than a struct or a pointer to one.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrValidation is the sentinel every FieldError unwraps to.
	ErrValidation = errors.New("validation failed")
)

// TagBcryptMax is the tag of the rule that limits a password to the number
// of bytes bcrypt can hash.
const TagBcryptMax = "bcryptmax"

// FieldError describes the first field of a request that failed validation.
// Field is the JSON name of the field as the client sent it.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

// Missing reports whether the field was absent rather than malformed.
func (e *FieldError) Missing() bool {
	return e.Tag == "required"
}

func (e *FieldError) Error() string {
	if e.Missing() {
		return fmt.Sprintf("field %q is required", e.Field)
	}
	if e.Param != "" {
		return fmt.Sprintf("field %q failed %s=%s", e.Field, e.Tag, e.Param)
	}
	return fmt.Sprintf("field %q failed %s", e.Field, e.Tag)
}

// Unwrap lets callers match any FieldError with errors.Is(err, ErrValidation).
func (e *FieldError) Unwrap() error {
	return ErrValidation
}
