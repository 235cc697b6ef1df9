package validator

import (
	"errors"
	"fmt"

	sharedError "github.com/festivio/committee-dashboard/go-api-server/internal/shared/error"
	"github.com/go-playground/validator/v10"
)

// ToErrorResponse converts gin binding/validator errors into a standardized response.
func ToErrorResponse(err error) (*sharedError.ErrorResponse, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	if len(validationErrors) == 0 {
		return nil, false
	}

	// Only the first validation error is returned (user friendly)
	fieldErr := validationErrors[0]
	message := getErrorMessage(fieldErr)

	resp := sharedError.ValidationFailed
	resp.Message = message
	return &resp, true
}

// getErrorMessage returns user-friendly error message for validation error
func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("'%s' is required.", fe.Field())
	case "email":
		return "The email address is not valid."
	case "min":
		return fmt.Sprintf("'%s' must be at least %s characters.", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("'%s' must be at most %s characters.", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("'%s' must be %s or greater.", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("'%s' must be %s or less.", fe.Field(), fe.Param())
	case "monthlabel":
		return fmt.Sprintf("'%s' must be a three-letter month abbreviation (Jan..Dec).", fe.Field())
	default:
		return fmt.Sprintf("'%s' is not valid.", fe.Field())
	}
}
