// Package client implements transports to the external anonymization engine.
package client

import (
	"context"

	"github.com/allisson/ciphershield/internal/engine/domain"
)

// Client sends a single item instruction to the engine.
type Client interface {
	// Process blocks until the engine finished the item or ctx is done.
	// Engine-reported failures are returned as *domain.TransportError.
	Process(ctx context.Context, req *domain.Request) (*domain.Response, error)
}
