package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/halcyard/TradeCenter_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validations for catalog and search fields
	_ = v.RegisterValidation("rarity", validateRarity)
	_ = v.RegisterValidation("scope", validateScope)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map.
// This prevents leaking internal struct names and provides cleaner messages.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "rarity":
			errs[field] = "Invalid rarity"
		case "scope":
			errs[field] = "Invalid search scope"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "dive":
			errs[field] = "Invalid list entry"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// Custom validation function for item rarity
func validateRarity(fl validator.FieldLevel) bool {
	rarity := fl.Field().String()
	if rarity == "" {
		return true
	}
	return domain.Rarity(strings.ToUpper(rarity)).IsValid()
}

// Custom validation function for search scope
func validateScope(fl validator.FieldLevel) bool {
	return domain.IsValidSearchScope(strings.ToLower(fl.Field().String()))
}
