package validators

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// TagResourceID validates identifiers that end up in storage keys.
const TagResourceID = "resource_id"

var resourceIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// New creates a validator with the service's custom tags registered.
func New() *Validate {
	v := validator.New()
	_ = v.RegisterValidation(TagResourceID, func(fl validator.FieldLevel) bool {
		return resourceIDPattern.MatchString(fl.Field().String())
	})
	return v
}

// FormatFieldError renders e as "<field> (<tag>[=<param>])".
func FormatFieldError(field string, e FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s (required)", field)
	case "min", "max", "oneof", "datetime", "gtefield":
		return fmt.Sprintf("%s (%s=%s)", field, e.Tag(), e.Param())
	default:
		return fmt.Sprintf("%s (%s)", field, e.Tag())
	}
}

// Describe joins every field error of err into one message. Non-validation
// errors are returned as their own text.
func Describe(err error, fieldName func(FieldError) string) string {
	ve, ok := err.(ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(ve))
	for _, e := range ve {
		msgs = append(msgs, FormatFieldError(fieldName(e), e))
	}
	return strings.Join(msgs, ", ")
}
