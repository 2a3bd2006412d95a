package service

import (
	"context"

	pipelineDomain "github.com/allisson/ciphershield/internal/pipeline/domain"
)

// ItemProcessor drives one item through seal, engine call and open.
type ItemProcessor interface {
	// Process returns the decrypted engine output for item. Scratch files are
	// written under ws and are left for the caller to remove with ws.Close.
	Process(ctx context.Context, ws *Workspace, item *pipelineDomain.Item) (*pipelineDomain.ItemOutcome, error)
}
