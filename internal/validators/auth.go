// Package validators implements transport-level schema validation for the
// auth API request bodies. The service layer trusts its callers to have run
// these checks; they are never repeated downstream.
package validators

import (
	"net/mail"
	"strings"
	"unicode"

	"github.com/vibeqa/auth-service/models"
)

// Field name constants used in validation error details.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldName     = "name"
)

// maxNameLength is the upper bound on a display name after trimming.
const maxNameLength = 100

// minPasswordLength is the lower bound on a password.
const minPasswordLength = 8

// CredentialsValidator validates the request bodies of the auth and profile
// endpoints. Stateless and safe for concurrent use.
type CredentialsValidator struct {
}

// NewCredentialsValidator constructs a new CredentialsValidator.
func NewCredentialsValidator() *CredentialsValidator {
	return &CredentialsValidator{}
}

// ValidateRegisterRequest checks a registration payload.
//
// Rules:
//   - email must be a syntactically valid address
//   - password must be at least 8 characters and contain an uppercase
//     letter, a lowercase letter, a digit, and a special character
//   - name must be non-empty after trimming and at most 100 characters
//
// Returns one [models.FieldError] per violated rule; an empty slice means
// the payload is valid.
func (v *CredentialsValidator) ValidateRegisterRequest(req models.RegisterRequest) []models.FieldError {
	var fieldErrors []models.FieldError

	fieldErrors = append(fieldErrors, validateEmail(req.Email)...)
	fieldErrors = append(fieldErrors, validatePassword(req.Password)...)
	fieldErrors = append(fieldErrors, validateName(req.Name)...)

	return fieldErrors
}

// ValidateLoginRequest checks a login payload.
//
// Password complexity is NOT re-checked on login: the stored digest is the
// only authority on whether the password matches.
func (v *CredentialsValidator) ValidateLoginRequest(req models.LoginRequest) []models.FieldError {
	var fieldErrors []models.FieldError

	fieldErrors = append(fieldErrors, validateEmail(req.Email)...)
	if req.Password == "" {
		fieldErrors = append(fieldErrors, models.FieldError{Field: FieldPassword, Message: "password is required"})
	}

	return fieldErrors
}

// ValidateUpdateProfileRequest checks a profile-update payload.
// Only the display name can be changed.
func (v *CredentialsValidator) ValidateUpdateProfileRequest(req models.UpdateProfileRequest) []models.FieldError {
	return validateName(req.Name)
}

func validateEmail(email string) []models.FieldError {
	if email == "" {
		return []models.FieldError{{Field: FieldEmail, Message: "email is required"}}
	}

	// mail.ParseAddress accepts "Name <a@x.com>" forms; require the bare
	// address form by checking the parsed address round-trips.
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return []models.FieldError{{Field: FieldEmail, Message: "invalid email format"}}
	}

	return nil
}

func validatePassword(password string) []models.FieldError {
	var fieldErrors []models.FieldError

	if len(password) < minPasswordLength {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   FieldPassword,
			Message: "password must be at least 8 characters",
		})
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if !hasUpper {
		fieldErrors = append(fieldErrors, models.FieldError{Field: FieldPassword, Message: "password must contain an uppercase letter"})
	}
	if !hasLower {
		fieldErrors = append(fieldErrors, models.FieldError{Field: FieldPassword, Message: "password must contain a lowercase letter"})
	}
	if !hasDigit {
		fieldErrors = append(fieldErrors, models.FieldError{Field: FieldPassword, Message: "password must contain a digit"})
	}
	if !hasSpecial {
		fieldErrors = append(fieldErrors, models.FieldError{Field: FieldPassword, Message: "password must contain a special character"})
	}

	return fieldErrors
}

func validateName(name string) []models.FieldError {
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		return []models.FieldError{{Field: FieldName, Message: "name is required"}}
	}
	if len([]rune(trimmed)) > maxNameLength {
		return []models.FieldError{{Field: FieldName, Message: "name must be at most 100 characters"}}
	}

	return nil
}
