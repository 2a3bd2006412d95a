package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"
	"time"

	"github.com/allisson/ciphershield/internal/engine/domain"
	apperrors "github.com/allisson/ciphershield/internal/errors"
	"github.com/allisson/ciphershield/internal/httputil"
)

const (
	processFilePath  = "/process_file"
	maxErrorBodySize = 64 * 1024
)

type httpsClient struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPSClient creates a client for an engine served over HTTPS on the loopback interface.
// The engine uses a self-signed certificate, so verification is skipped; the dialer refuses
// every non-loopback address to keep that safe.
func NewHTTPSClient(baseURL string, logger *slog.Logger) (Client, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid engine url")
	}
	if u.Scheme != "https" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "engine url must use https")
	}
	if !httputil.IsLoopbackHost(u.Hostname()) {
		return nil, domain.ErrNonLoopbackEndpoint
	}

	dialer := &net.Dialer{
		Timeout: 10 * time.Second,
		Control: func(_, address string, _ syscall.RawConn) error {
			if !httputil.IsLoopbackAddr(address) {
				return domain.ErrNonLoopbackEndpoint
			}
			return nil
		},
	}

	transport := &http.Transport{
		DialContext:         dialer.DialContext,
		TLSClientConfig:     &tls.Config{InsecureSkipVerify: true}, //nolint:gosec
		MaxIdleConns:        4,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &httpsClient{
		endpoint:   u.String() + processFilePath,
		httpClient: &http.Client{Transport: transport},
		logger:     logger,
	}, nil
}

// Process posts the request to /process_file and decodes the reply.
func (h *httpsClient) Process(ctx context.Context, req *domain.Request) (*domain.Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrSerialization, "failed to encode engine request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to build engine request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := h.httpClient.Do(httpReq)
	if err != nil {
		return nil, domain.NewTransportError(fmt.Sprintf("engine unreachable: %v", err), "engine unreachable")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		h.logger.Warn("engine returned error status",
			slog.Int("status_code", resp.StatusCode),
			slog.String("action", string(req.Action)),
		)
		return nil, domain.NewTransportError(string(raw), fmt.Sprintf("engine returned status %d", resp.StatusCode))
	}

	var out domain.Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, apperrors.Wrap(domain.ErrMalformedResponse, err.Error())
	}
	return &out, nil
}
