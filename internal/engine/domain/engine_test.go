package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/ciphershield/internal/errors"
	templatesDomain "github.com/allisson/ciphershield/internal/templates/domain"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		input   string
		want    Action
		wantErr bool
	}{
		{input: "anonymize", want: ActionAnonymize},
		{input: "Deanonymize", want: ActionDeanonymize},
		{input: " anonymize ", want: ActionAnonymize},
		{input: "encrypt", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAction(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequest_WireFormat(t *testing.T) {
	req := Request{
		Action:            ActionAnonymize,
		InputPath:         "/tmp/op/0.in.enc",
		OutputPath:        "/tmp/op/0.out.enc",
		Password:          "00ff",
		Mappings:          []templatesDomain.MappingItem{},
		ChunkSize:         1048576,
		OriginalExt:       "txt",
		CustomRecognizers: []templatesDomain.CustomRecognizer{},
	}

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"action": "anonymize",
		"input_path": "/tmp/op/0.in.enc",
		"output_path": "/tmp/op/0.out.enc",
		"password": "00ff",
		"mappings": [],
		"chunk_size": 1048576,
		"original_ext": "txt",
		"custom_recognizers": []
	}`, string(data))
}

func TestTransportError(t *testing.T) {
	err := NewTransportError("  Unsupported file format: docx\n", "engine failed")

	assert.Equal(t, "Unsupported file format: docx", err.Error())
	assert.ErrorIs(t, err, apperrors.ErrTransport)

	var target *TransportError
	assert.True(t, apperrors.As(apperrors.Wrap(err, "ctx"), &target))

	assert.Equal(t, "engine failed", NewTransportError("", "engine failed").Error())
}
