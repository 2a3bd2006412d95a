// Package http provides the read-only template endpoints.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/ciphershield/internal/httputil"
	"github.com/allisson/ciphershield/internal/templates/http/dto"
	templatesUseCase "github.com/allisson/ciphershield/internal/templates/usecase"
)

// TemplateHandler handles HTTP requests for template reads.
type TemplateHandler struct {
	templateUseCase templatesUseCase.TemplateUseCase
	logger          *slog.Logger
}

// NewTemplateHandler creates a new template handler.
func NewTemplateHandler(templateUseCase templatesUseCase.TemplateUseCase, logger *slog.Logger) *TemplateHandler {
	return &TemplateHandler{
		templateUseCase: templateUseCase,
		logger:          logger,
	}
}

// ListHandler returns every template with decoded mappings.
// GET /v1/templates
func (h *TemplateHandler) ListHandler(c *gin.Context) {
	templates, err := h.templateUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTemplatesToListResponse(templates))
}

// GetMappingsHandler returns the mapping list of one template.
// GET /v1/templates/:id/mappings - Returns 404 for an unknown id.
func (h *TemplateHandler) GetMappingsHandler(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	mappings, err := h.templateUseCase.GetMappings(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MappingsResponse{TemplateID: id, Mappings: mappings})
}
