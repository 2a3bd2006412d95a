package domain

// Credential hashing parameters.
//
// The digest is PBKDF2-HMAC-SHA256 over the UTF-8 password bytes with the
// hex-decoded salt, rendered as lowercase hex. Changing any of these values
// invalidates every stored credential.
const (
	// PBKDF2Iterations is the PBKDF2 iteration count.
	PBKDF2Iterations = 100000

	// DigestLength is the derived key length in bytes (64 hex characters).
	DigestLength = 32

	// SaltLength is the random salt length in bytes (32 hex characters).
	SaltLength = 16
)

// Login failure messages surfaced to the UI verbatim.
const (
	MessageUserNotFound       = "User not found"
	MessageInvalidCredentials = "Invalid credentials"
)
