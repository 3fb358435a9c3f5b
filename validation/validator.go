// Package validation provides struct-tag validation for adapter
// configuration. It wraps go-playground/validator with json-tag field names
// and the custom tags the credential surface needs.
package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/kbukum/travelgate/errors"
)

var (
	validate *validator.Validate
	once     sync.Once
)

var wordRe = regexp.MustCompile(`^\w+$`)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Use json tag names for field names in error messages
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		// word: a single \w+ token, used for client codes
		_ = validate.RegisterValidation("word", func(fl validator.FieldLevel) bool {
			return wordRe.MatchString(fl.Field().String())
		})
	})
	return validate
}

// Validate validates a struct using `validate` tags. Failures are reported
// as a single INVALID_CONFIG error listing every offending field.
func Validate(s any) error {
	v := getValidator()
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.InvalidConfig("validation failed").WithCause(err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, e.Field()+": "+formatValidationError(e))
	}
	return errors.InvalidConfig(strings.Join(messages, "; "))
}

// formatValidationError creates a human-readable error message.
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be a valid URL"
	case "uuid":
		return "must be a UUID"
	case "word":
		return "must contain only letters, digits and underscores"
	case "min":
		return "must be at least " + e.Param() + " characters"
	case "max":
		return "must be at most " + e.Param() + " characters"
	default:
		return "failed " + e.Tag() + " validation"
	}
}
