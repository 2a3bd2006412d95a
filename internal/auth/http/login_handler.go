// Package http provides HTTP handlers for login and first-run setup.
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

// LoginHandler handles HTTP requests for the login operation.
type LoginHandler struct {
	credentialUseCase authUseCase.CredentialUseCase
	logger            *slog.Logger
}

// NewLoginHandler creates a new login handler with required dependencies.
func NewLoginHandler(credentialUseCase authUseCase.CredentialUseCase, logger *slog.Logger) *LoginHandler {
	return &LoginHandler{
		credentialUseCase: credentialUseCase,
		logger:            logger,
	}
}

// LoginHandler checks an email/password pair.
// POST /v1/login - Returns 200 with {"success": true} or 401 with {"success": false, "error": "..."}.
func (h *LoginHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	result, err := h.credentialUseCase.Login(c.Request.Context(), &authDomain.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusUnauthorized
		h.logger.Info("login rejected", slog.String("client_ip", c.ClientIP()))
	}

	c.JSON(status, dto.MapLoginResultToResponse(result))
}
