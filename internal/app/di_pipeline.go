package app

import (
	"fmt"
	"sync"

	pipelineHTTP "github.com/allisson/ciphershield/internal/pipeline/http"
	pipelineService "github.com/allisson/ciphershield/internal/pipeline/service"
	pipelineUseCase "github.com/allisson/ciphershield/internal/pipeline/usecase"
)

type pipelineComponents struct {
	itemProcessor   pipelineService.ItemProcessor
	pipelineUseCase pipelineUseCase.PipelineUseCase
	processHandler  *pipelineHTTP.ProcessHandler

	itemProcessorInit   sync.Once
	pipelineUseCaseInit sync.Once
	processHandlerInit  sync.Once
}

// ItemProcessor returns the per-item seal/engine/open step.
func (c *Container) ItemProcessor() (pipelineService.ItemProcessor, error) {
	err := c.once(&c.itemProcessorInit, "itemProcessor", func() error {
		engine, err := c.EngineClient()
		if err != nil {
			return err
		}
		c.itemProcessor = pipelineService.NewItemProcessor(
			c.EnvelopeCodec(),
			engine,
			c.config.EngineChunkSize,
			c.config.EngineTimeout,
			c.Logger(),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.itemProcessor, nil
}

// PipelineUseCase returns the batch orchestrator.
func (c *Container) PipelineUseCase() (pipelineUseCase.PipelineUseCase, error) {
	err := c.once(&c.pipelineUseCaseInit, "pipelineUseCase", func() error {
		processor, err := c.ItemProcessor()
		if err != nil {
			return fmt.Errorf("failed to get item processor for pipeline use case: %w", err)
		}
		templates, err := c.TemplateUseCase()
		if err != nil {
			return fmt.Errorf("failed to get template use case for pipeline use case: %w", err)
		}
		processedFiles, err := c.ProcessedFileUseCase()
		if err != nil {
			return fmt.Errorf("failed to get processed file use case for pipeline use case: %w", err)
		}

		baseUseCase := pipelineUseCase.NewPipelineUseCase(
			processor,
			templates,
			processedFiles,
			c.config.ScratchDir,
			c.config.OutputDir,
			c.Logger(),
		)

		if c.config.MetricsEnabled {
			businessMetrics, err := c.BusinessMetrics()
			if err != nil {
				return fmt.Errorf("failed to get business metrics for pipeline use case: %w", err)
			}
			c.pipelineUseCase = pipelineUseCase.NewPipelineUseCaseWithMetrics(baseUseCase, businessMetrics)
			return nil
		}

		c.pipelineUseCase = baseUseCase
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.pipelineUseCase, nil
}

// ProcessHandler returns the HTTP handler for file and text batches.
func (c *Container) ProcessHandler() (*pipelineHTTP.ProcessHandler, error) {
	err := c.once(&c.processHandlerInit, "processHandler", func() error {
		useCase, err := c.PipelineUseCase()
		if err != nil {
			return fmt.Errorf("failed to get pipeline use case for process handler: %w", err)
		}
		c.processHandler = pipelineHTTP.NewProcessHandler(useCase, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.processHandler, nil
}
