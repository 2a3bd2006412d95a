// Package service provides password hashing for the local credential.
package service

// PasswordHasher derives and verifies credential digests.
type PasswordHasher interface {
	// Hash derives a digest for password under a freshly generated random salt.
	// Both values are returned hex-encoded.
	Hash(password string) (digest string, salt string, err error)

	// Verify recomputes the digest for password with the stored hex salt and compares
	// it to digest in constant time.
	Verify(password, digest, salt string) (bool, error)
}
