package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/allisson/ciphershield/internal/engine/domain"
	apperrors "github.com/allisson/ciphershield/internal/errors"
)

const processWaitDelay = 5 * time.Second

type processClient struct {
	command string
	args    []string
	logger  *slog.Logger
}

// NewProcessClient creates a client that spawns the engine once per item.
// The request JSON is appended as the last argument; the reply is read from stdout.
func NewProcessClient(command string, args []string, logger *slog.Logger) Client {
	return &processClient{
		command: command,
		args:    append([]string(nil), args...),
		logger:  logger,
	}
}

// Process runs the engine and waits for it to exit.
func (p *processClient) Process(ctx context.Context, req *domain.Request) (*domain.Response, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrSerialization, "failed to encode engine request")
	}

	args := append(append([]string(nil), p.args...), string(payload))
	cmd := exec.CommandContext(ctx, p.command, args...) //nolint:gosec

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = processWaitDelay

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, domain.NewTransportError(fmt.Sprintf("engine call aborted: %v", ctxErr), "engine call aborted")
		}
		p.logger.Warn("engine process failed",
			slog.String("action", string(req.Action)),
			slog.Any("error", err),
		)
		return nil, domain.NewTransportError(extractEngineError(stderr.String()), fmt.Sprintf("engine process failed: %v", err))
	}

	var out domain.Response
	if err := json.Unmarshal(bytes.TrimSpace(stdout.Bytes()), &out); err != nil {
		return nil, apperrors.Wrap(domain.ErrMalformedResponse, err.Error())
	}
	return &out, nil
}

// extractEngineError finds the engine's failure message in its stderr stream.
// The engine prints debug lines first and a final {"error": "..."} object; the last
// such object wins, otherwise the last non-empty line is used.
func extractEngineError(stderr string) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(line, "{") {
			continue
		}
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal([]byte(line), &payload); err == nil && payload.Error != "" {
			return payload.Error
		}
	}
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
