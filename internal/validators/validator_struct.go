package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StructValidator evaluates `validate` struct tags with go-playground/validator.
// It is safe for concurrent use; the underlying validator caches struct
// metadata after the first call for each type.
type StructValidator struct {
	validate *validator.Validate
}

// bcryptMaxBytes is the longest input bcrypt accepts. The built-in max tag
// counts runes, so multi-byte passwords need their own rule.
const bcryptMaxBytes = 72

// NewStructValidator constructs a StructValidator that reports fields by
// their JSON names.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	if err := v.RegisterValidation(TagBcryptMax, bcryptMax); err != nil {
		panic(err)
	}

	return &StructValidator{validate: v}
}

// Validate checks obj against its tags. When fields are given, only failures
// on those JSON field names are reported. The first failure in declaration
// order is returned as a *FieldError.
func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if !isStruct(obj) {
		return ErrUnsupportedType
	}

	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("error validating %T: %w", obj, err)
	}

	for _, fe := range validationErrors {
		if len(fields) > 0 && !slices.Contains(fields, fe.Field()) {
			continue
		}
		return &FieldError{Field: fe.Field(), Tag: fe.Tag(), Param: fe.Param()}
	}

	return nil
}

func bcryptMax(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= bcryptMaxBytes
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	default:
		return name
	}
}

func isStruct(obj any) bool {
	t := reflect.TypeOf(obj)
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}
