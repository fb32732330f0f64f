// Package validation checks registration payloads before anything is stored.
package validation

import (
	"errors"
	"regexp"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"registration/internal/models"
)

// MinPasswordLen is the minimum password length in characters.
const MinPasswordLen = 6

var (
	ErrMissingFields    = errors.New("all fields are required")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrInvalidPhone     = errors.New("phone number must be exactly 10 digits")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic("validation: registering notblank: " + err.Error())
	}
	return v
}

// ValidateRegistration returns nil or the first failing rule. Rules run in a
// fixed order: required fields, email shape, phone shape, password
// confirmation, password length.
func ValidateRegistration(req *models.RegistrationRequest) error {
	if req == nil {
		return ErrMissingFields
	}
	if err := validate.Struct(req); err != nil {
		return ErrMissingFields
	}
	if !emailRegex.MatchString(req.Email) {
		return ErrInvalidEmail
	}
	if !phoneRegex.MatchString(req.PhoneNumber) {
		return ErrInvalidPhone
	}
	if req.Password != req.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if utf8.RuneCountInString(req.Password) < MinPasswordLen {
		return ErrPasswordTooShort
	}
	return nil
}
