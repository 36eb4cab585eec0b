package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so messages line up with request bodies
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// FieldError describes a single invalid request field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is returned when one or more request fields fail validation
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return "validation error"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation error (" + strings.Join(parts, "; ") + ")"
}

// New creates a validation error for a single field
func New(field, message string) error {
	return &Error{Fields: []FieldError{{Field: field, Message: message}}}
}

// IsValidationError checks if err is (or wraps) a validation error
func IsValidationError(err error) bool {
	var valErr *Error
	return errors.As(err, &valErr)
}

// AsValidationError extracts the validation error from err, if any
func AsValidationError(err error) (*Error, bool) {
	var valErr *Error
	if errors.As(err, &valErr) {
		return valErr, true
	}
	return nil, false
}

// Struct validates s against its `validate` tags.
// Returns nil or an *Error listing every failing field in declaration order.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// InvalidValidationError: programming error, not user input
		return fmt.Errorf("failed to validate request: %w", err)
	}

	valErr := &Error{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		valErr.Fields = append(valErr.Fields, FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return valErr
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Valid email is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
