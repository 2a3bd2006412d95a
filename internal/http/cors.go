package http

import (
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/allisson/ciphershield/internal/httputil"
)

// createCORSMiddleware returns the CORS middleware for the desktop web view, or nil when
// CORS is off or no usable origin remains.
//
// The API only listens on loopback, so only origins that resolve to this machine are
// kept: http(s) origins on localhost or a loopback IP, and custom app schemes such as
// tauri://localhost. Anything else is dropped with a warning.
func createCORSMiddleware(enabled bool, allowOriginsStr string, logger *slog.Logger) gin.HandlerFunc {
	if !enabled {
		return nil
	}

	origins := make([]string, 0)
	var customSchemas []string
	for _, origin := range parseOrigins(allowOriginsStr) {
		if !isLocalOrigin(origin) {
			logger.Warn("ignoring non-local CORS origin", slog.String("origin", origin))
			continue
		}
		origins = append(origins, origin)
		if scheme, _, _ := strings.Cut(origin, "://"); scheme != "http" && scheme != "https" {
			customSchemas = append(customSchemas, scheme+"://")
		}
	}

	if len(origins) == 0 {
		logger.Warn("CORS enabled but no local origins configured, CORS will not be applied")
		return nil
	}

	logger.Info("CORS enabled", slog.Any("origins", origins))

	return cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "PATCH"},
		AllowHeaders:  []string{"Content-Type"},
		ExposeHeaders: []string{"X-Request-Id"},
		CustomSchemas: customSchemas,
		MaxAge:        12 * time.Hour,
	})
}

// parseOrigins splits a comma-separated origin list, dropping blanks.
func parseOrigins(originsStr string) []string {
	if originsStr == "" {
		return nil
	}

	var origins []string
	for _, part := range strings.Split(originsStr, ",") {
		if trimmed := strings.TrimRight(strings.TrimSpace(part), "/"); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func isLocalOrigin(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}

	switch u.Scheme {
	case "http", "https":
		return httputil.IsLoopbackHost(u.Hostname())
	default:
		// App shells such as tauri://localhost or app://ciphershield.
		return true
	}
}
