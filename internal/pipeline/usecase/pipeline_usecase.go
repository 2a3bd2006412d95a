package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	auditDomain "github.com/allisson/ciphershield/internal/audit/domain"
	auditUseCase "github.com/allisson/ciphershield/internal/audit/usecase"
	engineDomain "github.com/allisson/ciphershield/internal/engine/domain"
	apperrors "github.com/allisson/ciphershield/internal/errors"
	pipelineDomain "github.com/allisson/ciphershield/internal/pipeline/domain"
	"github.com/allisson/ciphershield/internal/pipeline/service"
	templatesDomain "github.com/allisson/ciphershield/internal/templates/domain"
	templatesUseCase "github.com/allisson/ciphershield/internal/templates/usecase"
)

// batchState is the per-call working set. It never escapes the call stack of one batch.
type batchState struct {
	action      engineDomain.Action
	templateID  *int64
	mappings    []templatesDomain.MappingItem
	recognizers []templatesDomain.CustomRecognizer
}

type pipelineUseCase struct {
	processor       service.ItemProcessor
	templateUseCase templatesUseCase.TemplateUseCase
	auditUseCase    auditUseCase.ProcessedFileUseCase
	scratchDir      string
	outputDir       string
	logger          *slog.Logger
	now             func() time.Time
}

// NewPipelineUseCase creates the batch orchestrator.
func NewPipelineUseCase(
	processor service.ItemProcessor,
	templateUseCase templatesUseCase.TemplateUseCase,
	auditUseCase auditUseCase.ProcessedFileUseCase,
	scratchDir string,
	outputDir string,
	logger *slog.Logger,
) PipelineUseCase {
	return &pipelineUseCase{
		processor:       processor,
		templateUseCase: templateUseCase,
		auditUseCase:    auditUseCase,
		scratchDir:      scratchDir,
		outputDir:       outputDir,
		logger:          logger,
		now:             time.Now,
	}
}

// ProcessFiles runs a file batch.
func (p *pipelineUseCase) ProcessFiles(
	ctx context.Context,
	input *pipelineDomain.ProcessFilesInput,
) (*pipelineDomain.FilesResult, error) {
	if len(input.Paths) == 0 {
		return nil, pipelineDomain.ErrNoFiles
	}

	state, err := p.prepare(ctx, input.Action, input.TemplateID, input.CustomRecognizers)
	if err != nil {
		return nil, err
	}

	ws, err := service.NewWorkspace(p.scratchDir)
	if err != nil {
		return nil, err
	}
	defer p.closeWorkspace(ws)

	outDir, err := filepath.Abs(filepath.Join(p.outputDir, ws.ID()))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrIO, fmt.Sprintf("failed to resolve output directory: %v", err))
	}
	if err := os.MkdirAll(outDir, 0o700); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrIO, fmt.Sprintf("failed to create output directory: %v", err))
	}

	outputs := make([]string, 0, len(input.Paths))
	items := []templatesDomain.MappingItem{}

	for i, path := range input.Paths {
		output, produced, err := p.processFile(ctx, ws, outDir, i, path, state)
		if err != nil {
			p.discardOutputs(outDir)
			p.logger.Warn("batch aborted",
				slog.String("operation_id", ws.ID()),
				slog.Int("index", i),
				slog.String("file", filepath.Base(path)),
				slog.Any("error", err),
			)
			return nil, &pipelineDomain.ItemError{Index: i, Name: filepath.Base(path), Err: err}
		}

		outputs = append(outputs, output)
		items = append(items, produced...)
		if state.action == engineDomain.ActionAnonymize {
			state.mappings = append(state.mappings, produced...)
		}
	}

	templateID, err := p.saveTemplate(ctx, input.SaveTemplate, input.TemplateName, state)
	if err != nil {
		p.discardOutputs(outDir)
		return nil, err
	}

	p.recordOutputs(ctx, state.action, outputs)

	p.logger.Info("batch completed",
		slog.String("operation_id", ws.ID()),
		slog.String("action", string(state.action)),
		slog.Int("files", len(outputs)),
		slog.Int("items", len(items)),
	)

	return &pipelineDomain.FilesResult{
		OperationID: ws.ID(),
		OutputPaths: outputs,
		TemplateID:  templateID,
		Items:       items,
	}, nil
}

// ProcessText runs a single-item text batch. Nothing is written outside the scratch workspace.
func (p *pipelineUseCase) ProcessText(
	ctx context.Context,
	input *pipelineDomain.ProcessTextInput,
) (*pipelineDomain.TextResult, error) {
	state, err := p.prepare(ctx, input.Action, input.TemplateID, input.CustomRecognizers)
	if err != nil {
		return nil, err
	}

	ws, err := service.NewWorkspace(p.scratchDir)
	if err != nil {
		return nil, err
	}
	defer p.closeWorkspace(ws)

	outcome, err := p.processor.Process(ctx, ws, &pipelineDomain.Item{
		Index:             0,
		Action:            state.action,
		Plaintext:         []byte(input.Text),
		Ext:               service.TextExt,
		Mappings:          state.mappings,
		CustomRecognizers: state.recognizers,
	})
	if err != nil {
		p.logger.Warn("text batch aborted",
			slog.String("operation_id", ws.ID()),
			slog.Any("error", err),
		)
		return nil, &pipelineDomain.ItemError{Index: 0, Name: "text", Err: err}
	}

	if state.action == engineDomain.ActionAnonymize {
		state.mappings = append(state.mappings, outcome.Items...)
	}

	templateID, err := p.saveTemplate(ctx, input.SaveTemplate, input.TemplateName, state)
	if err != nil {
		return nil, err
	}

	return &pipelineDomain.TextResult{
		Result:     string(outcome.Plaintext),
		TemplateID: templateID,
		Items:      outcome.Items,
	}, nil
}

// prepare validates the action and seeds the accumulator. A deanonymize batch must name a
// template; an anonymize batch that names one extends a copy of its mappings.
func (p *pipelineUseCase) prepare(
	ctx context.Context,
	action engineDomain.Action,
	templateID *int64,
	recognizers []templatesDomain.CustomRecognizer,
) (*batchState, error) {
	parsed, err := engineDomain.ParseAction(string(action))
	if err != nil {
		return nil, err
	}

	state := &batchState{
		action:      parsed,
		templateID:  templateID,
		mappings:    []templatesDomain.MappingItem{},
		recognizers: recognizers,
	}

	if parsed == engineDomain.ActionDeanonymize && templateID == nil {
		return nil, pipelineDomain.ErrTemplateIDRequired
	}

	if templateID != nil {
		template, err := p.templateUseCase.Get(ctx, *templateID)
		if err != nil {
			return nil, err
		}
		state.mappings = append(state.mappings, template.Mappings...)
		if len(state.recognizers) == 0 {
			state.recognizers = template.CustomRecognizers
		}
	}

	return state, nil
}

func (p *pipelineUseCase) processFile(
	ctx context.Context,
	ws *service.Workspace,
	outDir string,
	index int,
	path string,
	state *batchState,
) (string, []templatesDomain.MappingItem, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	content, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return "", nil, apperrors.Wrap(apperrors.ErrIO, fmt.Sprintf("failed to read %s: %v", filepath.Base(path), err))
	}

	ext := service.DetectExt(path, content)
	outcome, err := p.processor.Process(ctx, ws, &pipelineDomain.Item{
		Index:             index,
		Action:            state.action,
		Plaintext:         content,
		Ext:               ext,
		Mappings:          state.mappings,
		CustomRecognizers: state.recognizers,
	})
	if err != nil {
		return "", nil, err
	}

	target := service.UniquePath(outDir, service.OutputName(path, state.action, ext))
	if err := os.WriteFile(target, outcome.Plaintext, 0o600); err != nil {
		return "", nil, apperrors.Wrap(apperrors.ErrIO, fmt.Sprintf("failed to write output: %v", err))
	}

	return target, outcome.Items, nil
}

// saveTemplate persists the accumulator when an anonymize batch asks for it and started
// without a template. Otherwise the batch's template id is returned unchanged.
func (p *pipelineUseCase) saveTemplate(
	ctx context.Context,
	save bool,
	name string,
	state *batchState,
) (*int64, error) {
	if state.action != engineDomain.ActionAnonymize || !save || state.templateID != nil {
		return state.templateID, nil
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("template_%d", p.now().Unix())
	}

	id, err := p.templateUseCase.Insert(ctx, &templatesDomain.CreateTemplateInput{
		Name:              name,
		Mappings:          state.mappings,
		CustomRecognizers: state.recognizers,
	})
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (p *pipelineUseCase) recordOutputs(ctx context.Context, action engineDomain.Action, outputs []string) {
	files := make([]*auditDomain.ProcessedFile, 0, len(outputs))
	for _, output := range outputs {
		files = append(files, &auditDomain.ProcessedFile{
			Name:   filepath.Base(output),
			Path:   output,
			Action: string(action),
		})
	}

	if err := p.auditUseCase.Record(ctx, files); err != nil {
		p.logger.Warn("failed to record processed files", slog.Any("error", err))
	}
}

func (p *pipelineUseCase) discardOutputs(outDir string) {
	if err := os.RemoveAll(outDir); err != nil {
		p.logger.Error("failed to remove outputs of aborted batch",
			slog.String("dir", outDir),
			slog.Any("error", err),
		)
	}
}

func (p *pipelineUseCase) closeWorkspace(ws *service.Workspace) {
	if err := ws.Close(); err != nil {
		p.logger.Error("failed to remove scratch workspace",
			slog.String("operation_id", ws.ID()),
			slog.Any("error", err),
		)
	}
}
