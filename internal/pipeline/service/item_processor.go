package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	cryptoDomain "github.com/allisson/ciphershield/internal/crypto/domain"
	cryptoService "github.com/allisson/ciphershield/internal/crypto/service"
	"github.com/allisson/ciphershield/internal/engine/client"
	engineDomain "github.com/allisson/ciphershield/internal/engine/domain"
	apperrors "github.com/allisson/ciphershield/internal/errors"
	pipelineDomain "github.com/allisson/ciphershield/internal/pipeline/domain"
	templatesDomain "github.com/allisson/ciphershield/internal/templates/domain"
)

type itemProcessor struct {
	codec     cryptoService.EnvelopeCodec
	engine    client.Client
	chunkSize int
	timeout   time.Duration
	logger    *slog.Logger
}

// NewItemProcessor creates an ItemProcessor. Each engine call is bounded by timeout.
func NewItemProcessor(
	codec cryptoService.EnvelopeCodec,
	engine client.Client,
	chunkSize int,
	timeout time.Duration,
	logger *slog.Logger,
) ItemProcessor {
	return &itemProcessor{
		codec:     codec,
		engine:    engine,
		chunkSize: chunkSize,
		timeout:   timeout,
		logger:    logger,
	}
}

// Process seals the plaintext under a fresh key, lets the engine transform the envelope and
// opens the envelope it wrote back. The key never outlives the call.
func (p *itemProcessor) Process(
	ctx context.Context,
	ws *Workspace,
	item *pipelineDomain.Item,
) (*pipelineDomain.ItemOutcome, error) {
	key, err := p.codec.GenerateKey()
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(key)

	envelope, err := p.codec.Seal(key, item.Plaintext)
	if err != nil {
		return nil, err
	}

	inputPath := ws.InputPath(item.Index)
	outputPath := ws.OutputPath(item.Index)
	if err := os.WriteFile(inputPath, envelope, 0o600); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrIO, fmt.Sprintf("failed to write input envelope: %v", err))
	}

	req := &engineDomain.Request{
		Action:            item.Action,
		InputPath:         inputPath,
		OutputPath:        outputPath,
		Password:          cryptoDomain.EncodeKey(key),
		Mappings:          nonNilMappings(item.Mappings),
		ChunkSize:         p.chunkSize,
		OriginalExt:       item.Ext,
		CustomRecognizers: nonNilRecognizers(item.CustomRecognizers),
	}

	callCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := p.engine.Process(callCtx, req)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("engine call completed",
		slog.String("operation_id", ws.ID()),
		slog.Int("index", item.Index),
		slog.String("action", string(item.Action)),
		slog.Int("items", len(resp.Items)),
		slog.Duration("elapsed", time.Since(start)),
	)

	if filepath.Clean(resp.OutputPath) != filepath.Clean(outputPath) {
		return nil, engineDomain.ErrOutputPathMismatch
	}

	sealed, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrIO, fmt.Sprintf("failed to read output envelope: %v", err))
	}

	plaintext, err := p.codec.Open(key, sealed)
	if err != nil {
		return nil, err
	}

	return &pipelineDomain.ItemOutcome{
		Plaintext: plaintext,
		Items:     nonNilMappings(resp.Items),
	}, nil
}

func nonNilMappings(items []templatesDomain.MappingItem) []templatesDomain.MappingItem {
	if items == nil {
		return []templatesDomain.MappingItem{}
	}
	return items
}

func nonNilRecognizers(recognizers []templatesDomain.CustomRecognizer) []templatesDomain.CustomRecognizer {
	if recognizers == nil {
		return []templatesDomain.CustomRecognizer{}
	}
	return recognizers
}
