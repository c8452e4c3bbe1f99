package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a shared validator.Validate instance with the custom
// rules this service needs.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new centralized validator instance
func NewValidator() *Validator {
	validate := validator.New()
	registerCustomValidators(validate)
	return &Validator{validate: validate}
}

// Validate validates struct tags on the given value
func (v *Validator) Validate(s interface{}) error {
	return v.validate.Struct(s)
}

// validateNotBlank rejects strings that are empty after trimming whitespace.
// "required" alone accepts all-whitespace input.
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// registerCustomValidators registers all custom validators
func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("notblank", validateNotBlank)

	// Report field names as their JSON tags for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
