package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/ciphershield/internal/auth/domain"
	"github.com/allisson/ciphershield/internal/auth/http/dto"
	authUseCase "github.com/allisson/ciphershield/internal/auth/usecase"
	"github.com/allisson/ciphershield/internal/httputil"
	customValidation "github.com/allisson/ciphershield/internal/validation"
)

// SetupHandler exposes first-run provisioning to the UI.
type SetupHandler struct {
	credentialUseCase authUseCase.CredentialUseCase
	logger            *slog.Logger
}

// NewSetupHandler creates a new setup handler with required dependencies.
func NewSetupHandler(credentialUseCase authUseCase.CredentialUseCase, logger *slog.Logger) *SetupHandler {
	return &SetupHandler{
		credentialUseCase: credentialUseCase,
		logger:            logger,
	}
}

// StatusHandler reports whether a credential exists.
// GET /v1/setup
func (h *SetupHandler) StatusHandler(c *gin.Context) {
	provisioned, err := h.credentialUseCase.IsProvisioned(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.SetupStatusResponse{Provisioned: provisioned})
}

// ProvisionHandler creates the first credential.
// POST /v1/setup - Returns 201 Created, or 409 Conflict once a credential exists.
func (h *SetupHandler) ProvisionHandler(c *gin.Context) {
	var req dto.SetupRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	err := h.credentialUseCase.Provision(c.Request.Context(), &authDomain.ProvisionInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("credential provisioned")
	c.JSON(http.StatusCreated, dto.SetupStatusResponse{Provisioned: true})
}
