package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type ValidationFieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Value string `json:"value,omitempty"`
}

// ValidateStruct runs validator tags on a request DTO.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// GetValidationErrors flattens a validator error into field-level entries
// suitable for the error response details.
func GetValidationErrors(err error) []ValidationFieldError {
	var fieldErrors []ValidationFieldError

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fieldErrors
	}

	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, ValidationFieldError{
			Field: fe.Field(),
			Tag:   fe.Tag(),
			Value: fe.Param(),
		})
	}

	return fieldErrors
}
