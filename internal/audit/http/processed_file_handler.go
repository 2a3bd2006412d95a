// Package http provides the processed-file history endpoints.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/ciphershield/internal/audit/http/dto"
	auditUseCase "github.com/allisson/ciphershield/internal/audit/usecase"
	"github.com/allisson/ciphershield/internal/httputil"
	customValidation "github.com/allisson/ciphershield/internal/validation"
)

// ProcessedFileHandler handles HTTP requests for the processed-file log.
type ProcessedFileHandler struct {
	processedFileUseCase auditUseCase.ProcessedFileUseCase
	logger               *slog.Logger
}

// NewProcessedFileHandler creates a new processed-file handler.
func NewProcessedFileHandler(
	processedFileUseCase auditUseCase.ProcessedFileUseCase,
	logger *slog.Logger,
) *ProcessedFileHandler {
	return &ProcessedFileHandler{
		processedFileUseCase: processedFileUseCase,
		logger:               logger,
	}
}

// ListHandler returns a page of records, newest first.
// GET /v1/processed-files?offset=0&limit=50
func (h *ProcessedFileHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	files, err := h.processedFileUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProcessedFilesToListResponse(files))
}

// RenameHandler changes the display name of a record.
// PATCH /v1/processed-files/:id - Returns 204 No Content.
func (h *ProcessedFileHandler) RenameHandler(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.RenameProcessedFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	if err := h.processedFileUseCase.Rename(c.Request.Context(), id, req.Name); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
