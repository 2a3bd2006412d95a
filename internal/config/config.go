// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"

	"github.com/allisson/ciphershield/internal/httputil"
)

// Engine transport variants.
const (
	EngineTransportHTTPS   = "https"
	EngineTransportProcess = "process"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the loopback API binds to.
	ServerHost string
	// ServerPort is the port number the loopback API listens on.
	ServerPort int

	// DBDriver is the database driver to use ("sqlite", "postgres", "mysql").
	DBDriver string
	// DBConnectionString is the connection string for the database.
	DBConnectionString string
	// DBMaxOpenConnections is the maximum number of open connections to the database.
	DBMaxOpenConnections int
	// DBMaxIdleConnections is the maximum number of idle connections in the database pool.
	DBMaxIdleConnections int
	// DBConnMaxLifetime is the maximum amount of time a connection may be reused.
	DBConnMaxLifetime time.Duration

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// EngineTransport selects how the anonymization engine is reached ("https" or "process").
	EngineTransport string
	// EngineURL is the base URL of the loopback HTTPS engine.
	EngineURL string
	// EngineCommand is the executable spawned by the process transport.
	EngineCommand string
	// EngineArgs are the leading arguments passed to EngineCommand.
	EngineArgs []string
	// EngineTimeout bounds a single engine call.
	EngineTimeout time.Duration
	// EngineChunkSize is the chunk size forwarded to the engine for streaming work.
	EngineChunkSize int

	// ScratchDir holds per-operation scratch workspaces for envelopes.
	ScratchDir string
	// OutputDir receives decrypted outputs of successful batches.
	OutputDir string

	// TemplateKeyURI is a gocloud.dev secrets URI used to seal template blobs at rest.
	TemplateKeyURI string

	// RateLimitLoginEnabled indicates whether rate limiting for the login endpoint is enabled.
	RateLimitLoginEnabled bool
	// RateLimitLoginRequestsPerSec is the number of requests allowed per second per client IP.
	RateLimitLoginRequestsPerSec float64
	// RateLimitLoginBurst is the burst size for login rate limiting.
	RateLimitLoginBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	cfg := &Config{
		// Server configuration
		ServerHost: env.GetString("SERVER_HOST", "127.0.0.1"),
		ServerPort: env.GetInt("SERVER_PORT", 8790),

		// Database configuration
		DBDriver: env.GetString("DB_DRIVER", "sqlite"),
		DBConnectionString: env.GetString(
			"DB_CONNECTION_STRING",
			"file:ciphershield.db?_pragma=busy_timeout(5000)",
		),
		DBMaxOpenConnections: env.GetInt("DB_MAX_OPEN_CONNECTIONS", 1),
		DBMaxIdleConnections: env.GetInt("DB_MAX_IDLE_CONNECTIONS", 1),
		DBConnMaxLifetime:    env.GetDuration("DB_CONN_MAX_LIFETIME", 5, time.Minute),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Engine
		EngineTransport: env.GetString("ENGINE_TRANSPORT", EngineTransportHTTPS),
		EngineURL:       env.GetString("ENGINE_URL", "https://127.0.0.1:8000"),
		EngineCommand:   env.GetString("ENGINE_COMMAND", ""),
		EngineArgs:      splitList(env.GetString("ENGINE_ARGS", "")),
		EngineTimeout:   env.GetDuration("ENGINE_TIMEOUT_SECONDS", 300, time.Second),
		EngineChunkSize: env.GetInt("ENGINE_CHUNK_SIZE", 1048576),

		// Filesystem
		ScratchDir: env.GetString("SCRATCH_DIR", filepath.Join(os.TempDir(), "ciphershield")),
		OutputDir:  env.GetString("OUTPUT_DIR", "outputs"),

		// Template sealing
		TemplateKeyURI: env.GetString("TEMPLATE_KEY_URI", ""),

		// Rate Limiting for Login Endpoint (IP-based, unauthenticated)
		RateLimitLoginEnabled:        env.GetBool("RATE_LIMIT_LOGIN_ENABLED", true),
		RateLimitLoginRequestsPerSec: env.GetFloat64("RATE_LIMIT_LOGIN_REQUESTS_PER_SEC", 1.0),
		RateLimitLoginBurst:          env.GetInt("RATE_LIMIT_LOGIN_BURST", 5),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "ciphershield"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8791),
	}

	// The local store is a single serialized connection.
	if cfg.DBDriver == "sqlite" {
		cfg.DBMaxOpenConnections = 1
		cfg.DBMaxIdleConnections = 1
	}

	return cfg
}

// Validate checks the settings that would otherwise fail late at first use.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ServerHost, validation.Required, validation.By(loopbackHost)),
		validation.Field(&c.ServerPort, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.DBDriver, validation.Required, validation.In("sqlite", "postgres", "mysql")),
		validation.Field(&c.DBConnectionString, validation.Required),
		validation.Field(
			&c.EngineTransport,
			validation.Required,
			validation.In(EngineTransportHTTPS, EngineTransportProcess),
		),
		validation.Field(
			&c.EngineURL,
			validation.When(c.EngineTransport == EngineTransportHTTPS, validation.Required),
		),
		validation.Field(
			&c.EngineCommand,
			validation.When(c.EngineTransport == EngineTransportProcess, validation.Required),
		),
		validation.Field(&c.EngineTimeout, validation.Required),
		validation.Field(&c.EngineChunkSize, validation.Required, validation.Min(1)),
		validation.Field(&c.ScratchDir, validation.Required),
		validation.Field(&c.OutputDir, validation.Required),
	)
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	switch c.LogLevel {
	case "debug":
		return "debug"
	case "info", "warn", "error":
		return "release"
	default:
		return "release"
	}
}

func loopbackHost(value interface{}) error {
	host, _ := value.(string)
	if !httputil.IsLoopbackHost(host) {
		return validation.NewError("validation_loopback_host", "must be a loopback address")
	}
	return nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
