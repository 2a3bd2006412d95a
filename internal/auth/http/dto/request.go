// Package dto provides data transfer objects for the credential HTTP endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/ciphershield/internal/validation"
)

// LoginRequest contains the login form fields.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks if the login request is valid.
// Only presence is checked so an unknown email still reaches the store and yields "User not found".
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email, validation.Required, customValidation.NotBlank, validation.Length(1, 255)),
		validation.Field(&r.Password, validation.Required, validation.Length(1, 128)),
	)
}

// SetupRequest contains the first-run credential.
type SetupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks if the setup request is valid.
func (r *SetupRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.Required,
			customValidation.NoWhitespace,
			customValidation.Email,
			validation.Length(1, 255),
		),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(1, 128),
			customValidation.CredentialPassword,
		),
	)
}
