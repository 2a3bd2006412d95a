package dto

import (
	authDomain "github.com/allisson/ciphershield/internal/auth/domain"
)

// LoginResponse mirrors the login operation result.
type LoginResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// MapLoginResultToResponse converts a domain login result to its API representation.
func MapLoginResultToResponse(result *authDomain.LoginResult) LoginResponse {
	return LoginResponse{
		Success: result.Success,
		Error:   result.Error,
	}
}

// SetupStatusResponse reports whether first-run setup has completed.
type SetupStatusResponse struct {
	Provisioned bool `json:"provisioned"`
}
