package domain

// Envelope layout constants for AES-256-GCM.
//
// Every envelope exchanged with the anonymization engine is laid out as
//
//	nonce (12 bytes) || ciphertext (N bytes) || tag (16 bytes)
//
// so the smallest well-formed envelope, which carries an empty plaintext, is 28 bytes.
const (
	// KeySize is the size in bytes of an AES-256 key.
	KeySize = 32

	// NonceSize is the size in bytes of the GCM nonce prefix.
	NonceSize = 12

	// TagSize is the size in bytes of the GCM authentication tag suffix.
	TagSize = 16

	// MinEnvelopeSize is the size of an envelope carrying zero plaintext bytes.
	MinEnvelopeSize = NonceSize + TagSize
)
