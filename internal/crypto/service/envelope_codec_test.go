package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/ciphershield/internal/crypto/domain"
	"github.com/allisson/ciphershield/internal/errors"
)

func TestEnvelopeCodec_GenerateKey(t *testing.T) {
	codec := NewEnvelopeCodec()

	key1, err := codec.GenerateKey()
	require.NoError(t, err)
	key2, err := codec.GenerateKey()
	require.NoError(t, err)

	assert.Len(t, key1, cryptoDomain.KeySize)
	assert.NotEqual(t, key1, key2)
}

func TestEnvelopeCodec_SealOpen(t *testing.T) {
	codec := NewEnvelopeCodec()
	key, err := codec.GenerateKey()
	require.NoError(t, err)

	t.Run("Success_EmptyPlaintext", func(t *testing.T) {
		envelope, err := codec.Seal(key, []byte{})
		require.NoError(t, err)
		assert.Len(t, envelope, cryptoDomain.MinEnvelopeSize)

		plaintext, err := codec.Open(key, envelope)
		require.NoError(t, err)
		assert.Empty(t, plaintext)
	})

	t.Run("Success_LengthIsPlaintextPlus28", func(t *testing.T) {
		for _, size := range []int{1, 15, 16, 17, 1024, 1 << 20} {
			plaintext := bytes.Repeat([]byte{'x'}, size)

			envelope, err := codec.Seal(key, plaintext)
			require.NoError(t, err)
			assert.Len(t, envelope, size+cryptoDomain.MinEnvelopeSize)

			opened, err := codec.Open(key, envelope)
			require.NoError(t, err)
			assert.Equal(t, plaintext, opened)
		}
	})

	t.Run("Success_FreshNoncePerSeal", func(t *testing.T) {
		plaintext := []byte("same input")
		nonces := make(map[string]struct{}, 1000)

		for i := 0; i < 1000; i++ {
			envelope, err := codec.Seal(key, plaintext)
			require.NoError(t, err)
			nonces[string(envelope[:cryptoDomain.NonceSize])] = struct{}{}
		}

		assert.Len(t, nonces, 1000)
	})

	t.Run("Error_TooShortIsFormatError", func(t *testing.T) {
		_, err := codec.Open(key, make([]byte, 27))
		assert.ErrorIs(t, err, cryptoDomain.ErrEnvelopeTooShort)
		assert.True(t, errors.Is(err, errors.ErrFormat))
	})

	t.Run("Error_FlippedByteIsCryptoError", func(t *testing.T) {
		envelope, err := codec.Seal(key, []byte("tamper me"))
		require.NoError(t, err)

		for idx := range envelope {
			tampered := append([]byte(nil), envelope...)
			tampered[idx] ^= 0x01

			_, err := codec.Open(key, tampered)
			require.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed, "flipped byte %d", idx)
			assert.True(t, errors.Is(err, errors.ErrCrypto))
		}
	})

	t.Run("Error_EveryShortLengthIsFormatError", func(t *testing.T) {
		for size := 0; size < cryptoDomain.MinEnvelopeSize; size++ {
			_, err := codec.Open(key, make([]byte, size))
			require.ErrorIs(t, err, cryptoDomain.ErrEnvelopeTooShort, "length %d", size)
		}
	})

	t.Run("Error_WrongKey", func(t *testing.T) {
		envelope, err := codec.Seal(key, []byte("secret"))
		require.NoError(t, err)
		otherKey, err := codec.GenerateKey()
		require.NoError(t, err)

		_, err = codec.Open(otherKey, envelope)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("Error_InvalidKeySize", func(t *testing.T) {
		_, err := codec.Seal([]byte("short"), []byte("data"))
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
	})
}
