package domain

import (
	"github.com/allisson/ciphershield/internal/errors"
)

// Cryptographic operation error definitions.
//
// These domain-specific errors wrap the processing sentinels from internal/errors
// so callers can classify failures with errors.Is without string matching.
var (
	// ErrInvalidKeySize indicates the key is not exactly KeySize bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrCrypto, "invalid key size")

	// ErrInvalidKeyEncoding indicates a hex-encoded key could not be decoded.
	ErrInvalidKeyEncoding = errors.Wrap(errors.ErrInvalidInput, "invalid key encoding")

	// ErrEnvelopeTooShort indicates the envelope cannot hold a nonce and a tag.
	//
	// Raised before any cipher work happens, for any input shorter than MinEnvelopeSize.
	ErrEnvelopeTooShort = errors.Wrap(errors.ErrFormat, "envelope shorter than nonce and tag")

	// ErrDecryptionFailed indicates tag verification failed.
	//
	// This error can occur due to:
	//   - Wrong decryption key used
	//   - Envelope bytes modified after sealing
	//
	// The specific cause is never disclosed.
	ErrDecryptionFailed = errors.Wrap(errors.ErrCrypto, "decryption failed")
)
