// Package validation wraps go-playground/validator and converts its failures
// into field-level application errors.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/cragbase/cragbase/internal/shared/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names so field errors match request and response payloads.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Struct validates s and returns an *errors.AppError listing every failed
// field, or nil when s is valid.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.NewValidationError("Validation failed", err.Error())
	}

	fields := make([]errors.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, errors.FieldError{
			Field:   fe.Field(),
			Rule:    ruleFor(fe),
			Message: messageFor(fe),
		})
	}

	return errors.NewFieldValidationError(fields...)
}

func ruleFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return errors.RuleRequired
	case "max":
		if fe.Kind() == reflect.String {
			return errors.RuleMaxLength
		}
	case "min":
		if fe.Kind() == reflect.String {
			return errors.RuleMinLength
		}
	case "email", "url":
		return errors.RuleFormat
	}
	return errors.RuleInvalid
}

func messageFor(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()

	switch fe.Tag() {
	case "required", "required_without":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, fe.Tag())
	}
}
