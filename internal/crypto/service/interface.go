// Package service provides the cryptographic services used by the processing pipeline.
// Implements the AES-256-GCM envelope codec and the at-rest sealer for template blobs.
package service

import (
	"context"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// EnvelopeCodec seals and opens nonce || ciphertext || tag envelopes.
type EnvelopeCodec interface {
	// GenerateKey returns a fresh random 32-byte key.
	GenerateKey() ([]byte, error)

	// Seal encrypts plaintext under key with a fresh random nonce and empty AAD.
	Seal(key, plaintext []byte) ([]byte, error)

	// Open verifies and decrypts an envelope produced by Seal or by the engine.
	Open(key, envelope []byte) ([]byte, error)
}

// BlobSealer protects serialized template blobs at rest.
type BlobSealer interface {
	// Seal returns the protected form of plaintext.
	Seal(ctx context.Context, plaintext []byte) ([]byte, error)

	// Open reverses Seal.
	Open(ctx context.Context, sealed []byte) ([]byte, error)

	// Close releases any underlying keeper connection.
	Close() error
}
