// Package validate wraps struct validation and defines the shared
// ValidationError type returned for malformed or out-of-range input.
package validate

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var vld = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report JSON field names instead of Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldError pins a validation failure to a specific field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError reports malformed or out-of-range input.
type ValidationError struct {
	Msg    string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Msg
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Error)
	}
	return e.Msg + " (" + strings.Join(parts, "; ") + ")"
}

// New builds a ValidationError from a message and optional field details.
func New(msg string, fields ...FieldError) *ValidationError {
	return &ValidationError{Msg: msg, Fields: fields}
}

// Struct validates s against its `validate` tags, converting any
// failures into a single *ValidationError.
func Struct(s interface{}) error {
	err := vld.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Msg: err.Error()}
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field: fe.Field(),
			Error: "failed " + fe.Tag() + " validation",
		})
	}
	return &ValidationError{Msg: "invalid input", Fields: fields}
}
