// Package domain defines the request/response contract of the external anonymization engine.
//
// The engine reads an AES-256-GCM envelope from InputPath, decrypts it with the hex key in
// Password, performs the requested action, and writes a re-encrypted envelope under the
// same key to OutputPath. Only paths and the key cross the boundary; plaintext never does.
package domain

import (
	"strings"

	apperrors "github.com/allisson/ciphershield/internal/errors"
	templatesDomain "github.com/allisson/ciphershield/internal/templates/domain"
)

// Action selects the engine operation.
type Action string

// Supported actions.
const (
	ActionAnonymize   Action = "anonymize"
	ActionDeanonymize Action = "deanonymize"
)

// ParseAction validates a wire action name.
func ParseAction(s string) (Action, error) {
	switch Action(strings.ToLower(strings.TrimSpace(s))) {
	case ActionAnonymize:
		return ActionAnonymize, nil
	case ActionDeanonymize:
		return ActionDeanonymize, nil
	default:
		return "", ErrUnsupportedAction
	}
}

// Request is the engine instruction for one item.
type Request struct {
	Action            Action                             `json:"action"`
	InputPath         string                             `json:"input_path"`
	OutputPath        string                             `json:"output_path"`
	Password          string                             `json:"password"`
	Mappings          []templatesDomain.MappingItem      `json:"mappings"`
	ChunkSize         int                                `json:"chunk_size"`
	OriginalExt       string                             `json:"original_ext"`
	CustomRecognizers []templatesDomain.CustomRecognizer `json:"custom_recognizers"`
}

// Response is the engine reply for a successful item.
type Response struct {
	OutputPath string                        `json:"output_path"`
	Items      []templatesDomain.MappingItem `json:"items"`
}

// TransportError carries the engine's failure text verbatim.
type TransportError struct {
	Message string
}

// Error returns the engine's message unchanged.
func (e *TransportError) Error() string {
	return e.Message
}

// Unwrap classifies the failure as a transport error.
func (e *TransportError) Unwrap() error {
	return apperrors.ErrTransport
}

// NewTransportError builds a TransportError, substituting fallback for an empty message.
func NewTransportError(message, fallback string) *TransportError {
	message = strings.TrimSpace(message)
	if message == "" {
		message = fallback
	}
	return &TransportError{Message: message}
}

// Engine errors.
var (
	// ErrUnsupportedAction indicates an action other than anonymize or deanonymize.
	ErrUnsupportedAction = apperrors.Wrap(apperrors.ErrInvalidInput, "action must be anonymize or deanonymize")

	// ErrNonLoopbackEndpoint indicates an engine address outside the loopback interface.
	ErrNonLoopbackEndpoint = apperrors.Wrap(apperrors.ErrInvalidInput, "engine endpoint must be a loopback address")

	// ErrMalformedResponse indicates the engine reply could not be decoded.
	ErrMalformedResponse = apperrors.Wrap(apperrors.ErrSerialization, "malformed engine response")

	// ErrOutputPathMismatch indicates the engine reported writing somewhere other than requested.
	ErrOutputPathMismatch = apperrors.Wrap(apperrors.ErrTransport, "engine wrote to an unexpected output path")
)
