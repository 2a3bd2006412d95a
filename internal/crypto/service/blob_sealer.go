package service

import (
	"context"
	"fmt"

	"gocloud.dev/secrets"

	// Register the keeper drivers reachable from TEMPLATE_KEY_URI.
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// keeperSealer seals template blobs with a gocloud.dev secrets.Keeper.
type keeperSealer struct {
	keeper *secrets.Keeper
}

// plainSealer passes blobs through unchanged when no key URI is configured.
type plainSealer struct{}

// OpenBlobSealer opens a sealer for keyURI.
// Supports base64key:// (localsecrets) and hashivault:// URIs. An empty keyURI
// returns a pass-through sealer that stores template blobs as plain JSON.
func OpenBlobSealer(ctx context.Context, keyURI string) (BlobSealer, error) {
	if keyURI == "" {
		return plainSealer{}, nil
	}

	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open template keeper: %w", err)
	}
	return &keeperSealer{keeper: keeper}, nil
}

func (s *keeperSealer) Seal(ctx context.Context, plaintext []byte) ([]byte, error) {
	sealed, err := s.keeper.Encrypt(ctx, plaintext)
	if err != nil {
		return nil, fmt.Errorf("failed to seal blob: %w", err)
	}
	return sealed, nil
}

func (s *keeperSealer) Open(ctx context.Context, sealed []byte) ([]byte, error) {
	plaintext, err := s.keeper.Decrypt(ctx, sealed)
	if err != nil {
		return nil, fmt.Errorf("failed to open blob: %w", err)
	}
	return plaintext, nil
}

func (s *keeperSealer) Close() error {
	return s.keeper.Close()
}

func (plainSealer) Seal(_ context.Context, plaintext []byte) ([]byte, error) {
	return plaintext, nil
}

func (plainSealer) Open(_ context.Context, sealed []byte) ([]byte, error) {
	return sealed, nil
}

func (plainSealer) Close() error {
	return nil
}
