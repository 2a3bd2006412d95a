// Package usecase implements the batch orchestrator of the processing pipeline.
package usecase

import (
	"context"

	pipelineDomain "github.com/allisson/ciphershield/internal/pipeline/domain"
)

// PipelineUseCase runs anonymize and deanonymize batches through the engine.
//
// Batches are all-or-nothing: the first failing item aborts the run, its error is
// returned as *pipelineDomain.ItemError, no outputs are reported and no template is saved.
type PipelineUseCase interface {
	// ProcessFiles processes files strictly in order and writes decrypted outputs
	// under OUTPUT_DIR/<operation id>/.
	ProcessFiles(ctx context.Context, input *pipelineDomain.ProcessFilesInput) (*pipelineDomain.FilesResult, error)

	// ProcessText processes a single text blob and returns the decrypted result.
	ProcessText(ctx context.Context, input *pipelineDomain.ProcessTextInput) (*pipelineDomain.TextResult, error)
}
