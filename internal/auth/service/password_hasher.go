package service

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"

	authDomain "github.com/allisson/ciphershield/internal/auth/domain"
	apperrors "github.com/allisson/ciphershield/internal/errors"
)

// pbkdf2Hasher implements PasswordHasher with PBKDF2-HMAC-SHA256.
type pbkdf2Hasher struct {
	iterations int
}

// NewPasswordHasher creates the PBKDF2-HMAC-SHA256 hasher with 100,000 iterations.
func NewPasswordHasher() PasswordHasher {
	return &pbkdf2Hasher{iterations: authDomain.PBKDF2Iterations}
}

// Hash generates a 16-byte salt from crypto/rand and derives a 32-byte digest.
func (h *pbkdf2Hasher) Hash(password string) (string, string, error) {
	salt := make([]byte, authDomain.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", "", apperrors.Wrap(err, "failed to generate salt")
	}

	digest := h.derive(password, salt)
	return hex.EncodeToString(digest), hex.EncodeToString(salt), nil
}

// Verify returns ErrInvalidSalt when the stored salt is not hex.
func (h *pbkdf2Hasher) Verify(password, digest, salt string) (bool, error) {
	saltBytes, err := hex.DecodeString(salt)
	if err != nil {
		return false, authDomain.ErrInvalidSalt
	}

	computed := hex.EncodeToString(h.derive(password, saltBytes))
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1, nil
}

func (h *pbkdf2Hasher) derive(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, h.iterations, authDomain.DigestLength, sha256.New)
}
