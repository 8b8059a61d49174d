package middleware

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/campushire/campushire/internal/app/models/dto"
)

// formatFieldError turns a single binding failure into a readable message.
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return e.Field() + " must be a valid email address"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "gte":
		return e.Field() + " must be at least " + e.Param()
	case "lte":
		return e.Field() + " must be at most " + e.Param()
	case "url":
		return e.Field() + " must be a valid URL"
	default:
		return e.Field() + " is invalid"
	}
}

// collectValidationErrors extracts field-level details from a binding error,
// or nil when the error is not a validation failure.
func collectValidationErrors(err error) *dto.ValidationErrors {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return nil
	}

	result := dto.NewValidationErrors()
	for _, e := range fieldErrors {
		result.AddError(e.Field(), formatFieldError(e))
	}
	return result
}
