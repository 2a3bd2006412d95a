package client

import (
	"fmt"
	"log/slog"

	"github.com/allisson/ciphershield/internal/config"
	apperrors "github.com/allisson/ciphershield/internal/errors"
)

// NewClient builds the engine client selected by cfg.EngineTransport.
func NewClient(cfg *config.Config, logger *slog.Logger) (Client, error) {
	switch cfg.EngineTransport {
	case config.EngineTransportHTTPS:
		return NewHTTPSClient(cfg.EngineURL, logger)
	case config.EngineTransportProcess:
		return NewProcessClient(cfg.EngineCommand, cfg.EngineArgs, logger), nil
	default:
		return nil, apperrors.Wrap(
			apperrors.ErrInvalidInput,
			fmt.Sprintf("unknown engine transport %q", cfg.EngineTransport),
		)
	}
}
