package domain

import (
	"encoding/hex"
)

// Envelope is the parsed form of a sealed payload.
//
// Ciphertext keeps the GCM tag appended, matching what cipher.AEAD.Seal returns.
type Envelope struct {
	Nonce      []byte
	Ciphertext []byte
}

// ParseEnvelope splits raw bytes into nonce and ciphertext-with-tag.
// The returned slices alias data.
func ParseEnvelope(data []byte) (Envelope, error) {
	if len(data) < MinEnvelopeSize {
		return Envelope{}, ErrEnvelopeTooShort
	}
	return Envelope{
		Nonce:      data[:NonceSize],
		Ciphertext: data[NonceSize:],
	}, nil
}

// Bytes serializes the envelope as nonce || ciphertext || tag.
func (e Envelope) Bytes() []byte {
	out := make([]byte, 0, len(e.Nonce)+len(e.Ciphertext))
	out = append(out, e.Nonce...)
	out = append(out, e.Ciphertext...)
	return out
}

// PlaintextSize returns the number of plaintext bytes the envelope carries.
func (e Envelope) PlaintextSize() int {
	return len(e.Ciphertext) - TagSize
}

// EncodeKey renders a key as lowercase hex, the form the engine expects in its password field.
func EncodeKey(key []byte) string {
	return hex.EncodeToString(key)
}

// DecodeKey parses a hex-encoded key and checks its size.
func DecodeKey(s string) ([]byte, error) {
	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, ErrInvalidKeyEncoding
	}
	if len(key) != KeySize {
		Zero(key)
		return nil, ErrInvalidKeySize
	}
	return key, nil
}

// Zero wipes key material. It accepts several buffers so a caller can clear a key and the
// plaintext derived with it in one deferred call.
func Zero(bufs ...[]byte) {
	for _, b := range bufs {
		clear(b)
	}
}
