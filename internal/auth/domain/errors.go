package domain

import (
	"github.com/allisson/ciphershield/internal/errors"
)

// Credential store errors.
var (
	// ErrCredentialNotFound indicates no credential exists for the given email.
	ErrCredentialNotFound = errors.Wrap(errors.ErrNotFound, "credential not found")

	// ErrInvalidCredentials indicates the password did not match the stored digest.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrAlreadyProvisioned indicates first-run setup was attempted after a credential exists.
	ErrAlreadyProvisioned = errors.Wrap(errors.ErrConflict, "credential already provisioned")

	// ErrInvalidSalt indicates a stored salt is not valid hex.
	ErrInvalidSalt = errors.Wrap(errors.ErrFormat, "invalid credential salt")
)
