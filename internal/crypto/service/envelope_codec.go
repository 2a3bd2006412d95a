package service

import (
	"crypto/rand"
	"fmt"

	cryptoDomain "github.com/allisson/ciphershield/internal/crypto/domain"
	"github.com/allisson/ciphershield/internal/errors"
)

// envelopeCodec implements EnvelopeCodec on top of AESGCMCipher.
type envelopeCodec struct{}

// NewEnvelopeCodec creates the AES-256-GCM envelope codec shared with the engine.
func NewEnvelopeCodec() EnvelopeCodec {
	return &envelopeCodec{}
}

// GenerateKey returns 32 bytes from crypto/rand. Callers own the key and should
// wipe it with cryptoDomain.Zero once the item is done.
func (c *envelopeCodec) GenerateKey() ([]byte, error) {
	key := make([]byte, cryptoDomain.KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Wrap(errors.ErrCrypto, fmt.Sprintf("failed to generate key: %v", err))
	}
	return key, nil
}

// Seal encrypts plaintext and lays it out as nonce || ciphertext || tag.
// The AAD is always empty so the engine can open the envelope with the key alone.
func (c *envelopeCodec) Seal(key, plaintext []byte) ([]byte, error) {
	aead, err := NewAESGCM(key)
	if err != nil {
		return nil, err
	}

	ciphertext, nonce, err := aead.Encrypt(plaintext, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCrypto, err.Error())
	}

	return cryptoDomain.Envelope{Nonce: nonce, Ciphertext: ciphertext}.Bytes(), nil
}

// Open parses the envelope and verifies the tag before returning plaintext.
// Envelopes shorter than 28 bytes fail with ErrEnvelopeTooShort before any cipher work.
func (c *envelopeCodec) Open(key, envelope []byte) ([]byte, error) {
	env, err := cryptoDomain.ParseEnvelope(envelope)
	if err != nil {
		return nil, err
	}

	aead, err := NewAESGCM(key)
	if err != nil {
		return nil, err
	}

	return aead.Decrypt(env.Ciphertext, env.Nonce, nil)
}
