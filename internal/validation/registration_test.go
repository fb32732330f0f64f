package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"registration/internal/models"
)

func ptr(f float64) *float64 { return &f }

func validRequest() models.RegistrationRequest {
	return models.RegistrationRequest{
		FullName:        "Jane Doe",
		Email:           "jane@example.com",
		PhoneNumber:     "1234567890",
		Gender:          "F",
		DateOfBirth:     "1990-01-01",
		Address:         "1 Main St",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Latitude:        ptr(12.34),
		Longitude:       ptr(56.78),
	}
}

func TestValidateRegistrationAcceptsValidPayload(t *testing.T) {
	req := validRequest()
	assert.NoError(t, ValidateRegistration(&req))
}

func TestValidateRegistrationMissingFields(t *testing.T) {
	tests := []struct {
		description string
		mutate      func(r *models.RegistrationRequest)
	}{
		{"fullName empty", func(r *models.RegistrationRequest) { r.FullName = "" }},
		{"fullName whitespace", func(r *models.RegistrationRequest) { r.FullName = "   " }},
		{"email empty", func(r *models.RegistrationRequest) { r.Email = "" }},
		{"phoneNumber empty", func(r *models.RegistrationRequest) { r.PhoneNumber = "" }},
		{"gender empty", func(r *models.RegistrationRequest) { r.Gender = "" }},
		{"dateOfBirth empty", func(r *models.RegistrationRequest) { r.DateOfBirth = "" }},
		{"address empty", func(r *models.RegistrationRequest) { r.Address = "" }},
		{"password empty", func(r *models.RegistrationRequest) { r.Password = "" }},
		{"latitude absent", func(r *models.RegistrationRequest) { r.Latitude = nil }},
		{"longitude absent", func(r *models.RegistrationRequest) { r.Longitude = nil }},
		// Missing fields win over every later rule.
		{"missing field with bad email", func(r *models.RegistrationRequest) { r.Gender = ""; r.Email = "nope" }},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			assert.ErrorIs(t, ValidateRegistration(&req), ErrMissingFields)
		})
	}

	assert.ErrorIs(t, ValidateRegistration(nil), ErrMissingFields)
}

func TestValidateRegistrationZeroCoordinatesAreValid(t *testing.T) {
	req := validRequest()
	req.Latitude = ptr(0)
	req.Longitude = ptr(0)
	assert.NoError(t, ValidateRegistration(&req))
}

func TestValidateRegistrationInvalidEmail(t *testing.T) {
	for _, email := range []string{"foo@bar", "foobar.com", "foo bar@x.com", "a@@b.com", "@example.com", "jane@example."} {
		t.Run(email, func(t *testing.T) {
			req := validRequest()
			req.Email = email
			assert.ErrorIs(t, ValidateRegistration(&req), ErrInvalidEmail)
		})
	}
}

func TestValidateRegistrationInvalidPhone(t *testing.T) {
	for _, phone := range []string{"12345", "abcdefghij", "12345678901", "123-456-789", "123456789a", "١٢٣٤٥٦٧٨٩٠"} {
		t.Run(phone, func(t *testing.T) {
			req := validRequest()
			req.PhoneNumber = phone
			assert.ErrorIs(t, ValidateRegistration(&req), ErrInvalidPhone)
		})
	}
}

func TestValidateRegistrationEmailCheckedBeforePhone(t *testing.T) {
	req := validRequest()
	req.Email = "foo@bar"
	req.PhoneNumber = "12345"
	assert.ErrorIs(t, ValidateRegistration(&req), ErrInvalidEmail)
}

func TestValidateRegistrationPasswordTooShortEvenWhenMatching(t *testing.T) {
	req := validRequest()
	req.Password = "abc12"
	req.ConfirmPassword = "abc12"
	assert.ErrorIs(t, ValidateRegistration(&req), ErrPasswordTooShort)

	// six bytes, three characters
	req.Password = "ééé"
	req.ConfirmPassword = "ééé"
	assert.ErrorIs(t, ValidateRegistration(&req), ErrPasswordTooShort)

	req.Password = "éééééé"
	req.ConfirmPassword = "éééééé"
	assert.NoError(t, ValidateRegistration(&req))
}

func TestValidateRegistrationMismatchCheckedBeforeLength(t *testing.T) {
	req := validRequest()
	req.Password = "secret1"
	req.ConfirmPassword = "secret2"
	assert.ErrorIs(t, ValidateRegistration(&req), ErrPasswordMismatch)

	req.Password = "abc"
	req.ConfirmPassword = "abd"
	assert.ErrorIs(t, ValidateRegistration(&req), ErrPasswordMismatch)
}
