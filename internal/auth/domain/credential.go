// Package domain defines the local credential model used to gate the processing pipeline.
package domain

import (
	"time"
)

// Credential is the single local login.
// PasswordHash and Salt are lowercase hex strings; the salt is regenerated on every re-hash.
type Credential struct {
	Email        string
	PasswordHash string
	Salt         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LoginInput carries the plaintext login attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult reports the outcome of a login attempt.
// Error is empty on success and holds a user-facing message otherwise.
type LoginResult struct {
	Success bool
	Error   string
}

// ProvisionInput carries the first-run credential chosen by the operator.
type ProvisionInput struct {
	Email    string
	Password string
}

// ChangePasswordInput carries a password rotation request.
type ChangePasswordInput struct {
	Email           string
	CurrentPassword string
	NewPassword     string
}
