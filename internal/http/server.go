// Package http provides the loopback HTTP API consumed by the desktop UI.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	auditHTTP "github.com/allisson/ciphershield/internal/audit/http"
	authHTTP "github.com/allisson/ciphershield/internal/auth/http"
	"github.com/allisson/ciphershield/internal/config"
	apperrors "github.com/allisson/ciphershield/internal/errors"
	"github.com/allisson/ciphershield/internal/httputil"
	"github.com/allisson/ciphershield/internal/metrics"
	pipelineHTTP "github.com/allisson/ciphershield/internal/pipeline/http"
	templatesHTTP "github.com/allisson/ciphershield/internal/templates/http"
)

// ErrNonLoopbackBind is returned when the API is asked to listen beyond the local machine.
var ErrNonLoopbackBind = apperrors.Wrap(apperrors.ErrInvalidInput, "api must bind to a loopback address")

// Server represents the HTTP server
type Server struct {
	db     *sql.DB
	host   string
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// NewServer creates a new HTTP server
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		host:   host,
		logger: logger,
		server: &http.Server{
			Addr:        net.JoinHostPort(host, strconv.Itoa(port)),
			ReadTimeout: 15 * time.Second,
			// batches block on the engine, so there is no write timeout
			IdleTimeout: 60 * time.Second,
		},
	}
}

// SetupRouter registers middleware and every route. ctx bounds background work owned by
// middleware, such as the login limiter cleanup.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	loginHandler *authHTTP.LoginHandler,
	setupHandler *authHTTP.SetupHandler,
	templateHandler *templatesHTTP.TemplateHandler,
	processHandler *pipelineHTTP.ProcessHandler,
	processedFileHandler *auditHTTP.ProcessedFileHandler,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(
			metricsProvider.MeterProvider(),
			cfg.MetricsNamespace,
			"/health",
			"/ready",
		))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	{
		v1.GET("/setup", setupHandler.StatusHandler)
		v1.POST("/setup", setupHandler.ProvisionHandler)

		login := []gin.HandlerFunc{}
		if cfg.RateLimitLoginEnabled {
			login = append(login, authHTTP.LoginRateLimitMiddleware(
				ctx,
				cfg.RateLimitLoginRequestsPerSec,
				cfg.RateLimitLoginBurst,
				s.logger,
			))
		}
		login = append(login, loginHandler.LoginHandler)
		v1.POST("/login", login...)

		process := v1.Group("/process")
		{
			process.POST("/files", processHandler.ProcessFilesHandler)
			process.POST("/text", processHandler.ProcessTextHandler)
		}

		templates := v1.Group("/templates")
		{
			templates.GET("", templateHandler.ListHandler)
			templates.GET("/:id/mappings", templateHandler.GetMappingsHandler)
		}

		processedFiles := v1.Group("/processed-files")
		{
			processedFiles.GET("", processedFileHandler.ListHandler)
			processedFiles.PATCH("/:id", processedFileHandler.RenameHandler)
		}
	}

	s.router = router
	s.server.Handler = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server. It refuses to listen on a non-loopback address.
func (s *Server) Start(ctx context.Context) error {
	if !httputil.IsLoopbackHost(s.host) {
		return ErrNonLoopbackBind
	}

	if s.router != nil {
		s.server.Handler = s.router
	}

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) readinessHandler(c *gin.Context) {
	database := "ok"
	if s.db == nil {
		database = "error"
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			database = "error"
		}
	}

	if database != "ok" {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": database},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": database},
	})
}
