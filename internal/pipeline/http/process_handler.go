// Package http provides the processing endpoints used by the desktop UI.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/ciphershield/internal/httputil"
	"github.com/allisson/ciphershield/internal/pipeline/http/dto"
	pipelineUseCase "github.com/allisson/ciphershield/internal/pipeline/usecase"
	customValidation "github.com/allisson/ciphershield/internal/validation"
)

// ProcessHandler handles file and text batch requests.
type ProcessHandler struct {
	pipelineUseCase pipelineUseCase.PipelineUseCase
	logger          *slog.Logger
}

// NewProcessHandler creates a new processing handler.
func NewProcessHandler(pipelineUseCase pipelineUseCase.PipelineUseCase, logger *slog.Logger) *ProcessHandler {
	return &ProcessHandler{
		pipelineUseCase: pipelineUseCase,
		logger:          logger,
	}
}

// ProcessFilesHandler runs a file batch.
// POST /v1/process/files - Returns 200 with output paths, or an error status whose body
// carries the failing item's error text and no outputs.
func (h *ProcessHandler) ProcessFilesHandler(c *gin.Context) {
	var req dto.ProcessFilesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		h.fail(c, customValidation.WrapValidationError(err), func(msg string) any { return dto.FilesFailure(msg) })
		return
	}

	result, err := h.pipelineUseCase.ProcessFiles(c.Request.Context(), req.ToInput())
	if err != nil {
		h.fail(c, err, func(msg string) any { return dto.FilesFailure(msg) })
		return
	}

	c.JSON(http.StatusOK, dto.MapFilesResultToResponse(result))
}

// ProcessTextHandler runs a text batch.
// POST /v1/process/text
func (h *ProcessHandler) ProcessTextHandler(c *gin.Context) {
	var req dto.ProcessTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		h.fail(c, customValidation.WrapValidationError(err), func(msg string) any { return dto.TextFailure(msg) })
		return
	}

	result, err := h.pipelineUseCase.ProcessText(c.Request.Context(), req.ToInput())
	if err != nil {
		h.fail(c, err, func(msg string) any { return dto.TextFailure(msg) })
		return
	}

	c.JSON(http.StatusOK, dto.MapTextResultToResponse(result))
}

// fail writes the batch failure body. The status follows the shared error mapping while
// the error field keeps the full failure text, which the UI shows to the user.
func (h *ProcessHandler) fail(c *gin.Context, err error, body func(string) any) {
	status, errorResponse := httputil.MapError(err)
	h.logger.Error("batch failed",
		slog.Int("status_code", status),
		slog.String("error_code", errorResponse.Error),
		slog.Any("error", err),
	)
	c.JSON(status, body(err.Error()))
}
