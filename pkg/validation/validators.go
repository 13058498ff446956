package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// local@domain.tld, the TLD being at least two letters. Stricter than the
	// built-in check, which accepts addresses without a dot in the domain.
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) error {
	// Overrides the built-in tag so its English translation still applies
	return v.RegisterValidation("email", ValidEmail)
}

// ValidEmail validates the local@domain.tld shape
func ValidEmail(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return emailRegex.MatchString(val)
}
