package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	engineDomain "github.com/allisson/ciphershield/internal/engine/domain"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestProcessFilesRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request ProcessFilesRequest
		wantErr bool
	}{
		{name: "valid anonymize", request: ProcessFilesRequest{Files: []string{"/tmp/a.txt"}, Action: "anonymize"}},
		{
			name:    "valid deanonymize",
			request: ProcessFilesRequest{Files: []string{"/tmp/a.txt"}, Action: "deanonymize", TemplateID: int64Ptr(1)},
		},
		{name: "no files", request: ProcessFilesRequest{Action: "anonymize"}, wantErr: true},
		{name: "blank file", request: ProcessFilesRequest{Files: []string{" "}, Action: "anonymize"}, wantErr: true},
		{name: "relative file", request: ProcessFilesRequest{Files: []string{"docs/a.txt"}, Action: "anonymize"}, wantErr: true},
		{name: "unknown action", request: ProcessFilesRequest{Files: []string{"/tmp/a.txt"}, Action: "encrypt"}, wantErr: true},
		{name: "zero template id", request: ProcessFilesRequest{Files: []string{"/tmp/a.txt"}, Action: "anonymize", TemplateID: int64Ptr(0)}, wantErr: true},
		{
			name: "recognizer without pattern",
			request: ProcessFilesRequest{
				Files:             []string{"/tmp/a.txt"},
				Action:            "anonymize",
				CustomRecognizers: []CustomRecognizerRequest{{EntityType: "ID", Score: 0.5}},
			},
			wantErr: true,
		},
		{
			name: "recognizer score out of range",
			request: ProcessFilesRequest{
				Files:             []string{"/tmp/a.txt"},
				Action:            "anonymize",
				CustomRecognizers: []CustomRecognizerRequest{{EntityType: "ID", Pattern: `\d+`, Score: 1.5}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessTextRequest_Validate(t *testing.T) {
	assert.NoError(t, (&ProcessTextRequest{Text: "Hi John", Action: "anonymize"}).Validate())
	assert.Error(t, (&ProcessTextRequest{Action: "anonymize"}).Validate())
	assert.Error(t, (&ProcessTextRequest{Text: "x", Action: ""}).Validate())
}

func TestProcessFilesRequest_ToInput(t *testing.T) {
	req := ProcessFilesRequest{
		Files:             []string{"/tmp/a.txt"},
		Action:            "anonymize",
		SaveTemplate:      true,
		TemplateName:      "clients",
		CustomRecognizers: []CustomRecognizerRequest{{EntityType: "ID", Pattern: `\d{9}`, Score: 0.9}},
	}

	input := req.ToInput()

	assert.Equal(t, []string{"/tmp/a.txt"}, input.Paths)
	assert.Equal(t, engineDomain.ActionAnonymize, input.Action)
	assert.Nil(t, input.TemplateID)
	assert.True(t, input.SaveTemplate)
	assert.Equal(t, "clients", input.TemplateName)
	assert.Len(t, input.CustomRecognizers, 1)
	assert.Equal(t, `\d{9}`, input.CustomRecognizers[0].Pattern)
}
