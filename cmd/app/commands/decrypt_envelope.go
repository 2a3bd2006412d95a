package commands

import (
	"fmt"
	"log/slog"
	"os"

	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/allisson/ciphershield/internal/crypto/domain"
	cryptoService "github.com/allisson/ciphershield/internal/crypto/service"
	apperrors "github.com/allisson/ciphershield/internal/errors"
	customValidation "github.com/allisson/ciphershield/internal/validation"
)

// RunDecryptEnvelope opens a nonce || ciphertext || tag envelope with a hex key.
// The plaintext goes to outputPath (mode 0600) or to rw.Writer when outputPath is empty.
func RunDecryptEnvelope(
	codec cryptoService.EnvelopeCodec,
	logger *slog.Logger,
	inputPath string,
	keyHex string,
	outputPath string,
	rw IOTuple,
) error {
	if err := validation.Validate(keyHex, validation.Required, customValidation.HexKey); err != nil {
		return customValidation.WrapValidationError(fmt.Errorf("key-hex: %w", err))
	}

	key, err := cryptoDomain.DecodeKey(keyHex)
	if err != nil {
		return err
	}
	defer cryptoDomain.Zero(key)

	envelope, err := os.ReadFile(inputPath) //nolint:gosec // operator-supplied path
	if err != nil {
		return apperrors.Wrap(apperrors.ErrIO, fmt.Sprintf("failed to read envelope %s: %v", inputPath, err))
	}

	plaintext, err := codec.Open(key, envelope)
	if err != nil {
		return err
	}

	if outputPath == "" {
		_, err = rw.Writer.Write(plaintext)
		return err
	}

	if err := os.WriteFile(outputPath, plaintext, 0o600); err != nil {
		return apperrors.Wrap(apperrors.ErrIO, fmt.Sprintf("failed to write %s: %v", outputPath, err))
	}

	logger.Info("envelope decrypted",
		slog.String("input", inputPath),
		slog.String("output", outputPath),
		slog.Int("bytes", len(plaintext)),
	)
	return nil
}
