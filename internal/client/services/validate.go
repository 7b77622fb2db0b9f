package services

import (
	"unicode"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Registration of custom rules
// happens once at package init; validator.Validate is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// passwords must carry at least one digit
	_ = v.RegisterValidation("containsdigit", func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			if unicode.IsDigit(r) {
				return true
			}
		}
		return false
	})
	return v
}
