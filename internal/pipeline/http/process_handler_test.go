package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	engineDomain "github.com/allisson/ciphershield/internal/engine/domain"
	pipelineDomain "github.com/allisson/ciphershield/internal/pipeline/domain"
	"github.com/allisson/ciphershield/internal/pipeline/http/dto"
	pipelineMocks "github.com/allisson/ciphershield/internal/pipeline/usecase/mocks"
	templatesDomain "github.com/allisson/ciphershield/internal/templates/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func TestProcessHandler_ProcessFilesHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &pipelineMocks.MockPipelineUseCase{}
		handler := NewProcessHandler(uc, testLogger())
		id := int64(4)

		uc.On("ProcessFiles", mock.Anything, mock.MatchedBy(func(in *pipelineDomain.ProcessFilesInput) bool {
			return in.Action == engineDomain.ActionAnonymize && in.SaveTemplate && len(in.Paths) == 2
		})).Return(&pipelineDomain.FilesResult{
			OutputPaths: []string{"/out/a_anonymized.txt", "/out/b_anonymized.txt"},
			TemplateID:  &id,
			Items:       []templatesDomain.MappingItem{{Original: "John", Anonymized: "<PERSON_1>", PIIType: "PERSON", Confidence: 0.85}},
		}, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/process/files", dto.ProcessFilesRequest{
			Files:        []string{"/in/a.txt", "/in/b.txt"},
			Action:       "anonymize",
			SaveTemplate: true,
		})
		handler.ProcessFilesHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"output_paths": ["/out/a_anonymized.txt", "/out/b_anonymized.txt"],
			"template_id": 4,
			"items": [{"original":"John","anonymized":"<PERSON_1>","pii_type":"PERSON","confidence":0.85}]
		}`, w.Body.String())
		uc.AssertExpectations(t)
	})

	t.Run("Error_ItemFailureCarriesEngineText", func(t *testing.T) {
		uc := &pipelineMocks.MockPipelineUseCase{}
		handler := NewProcessHandler(uc, testLogger())

		uc.On("ProcessFiles", mock.Anything, mock.Anything).Return(nil, &pipelineDomain.ItemError{
			Index: 1,
			Name:  "b.txt",
			Err:   &engineDomain.TransportError{Message: "Unsupported file format: docx"},
		}).Once()

		c, w := createTestContext(http.MethodPost, "/v1/process/files", dto.ProcessFilesRequest{
			Files:  []string{"/in/a.txt", "/in/b.docx"},
			Action: "anonymize",
		})
		handler.ProcessFilesHandler(c)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.JSONEq(t, `{
			"output_paths": [],
			"template_id": null,
			"error": "Unsupported file format: docx",
			"items": []
		}`, w.Body.String())
	})

	t.Run("Error_DeanonymizeWithoutTemplate", func(t *testing.T) {
		uc := &pipelineMocks.MockPipelineUseCase{}
		handler := NewProcessHandler(uc, testLogger())

		uc.On("ProcessFiles", mock.Anything, mock.Anything).Return(nil, pipelineDomain.ErrTemplateIDRequired).Once()

		c, w := createTestContext(http.MethodPost, "/v1/process/files", dto.ProcessFilesRequest{
			Files:  []string{"/in/a.txt"},
			Action: "deanonymize",
		})
		handler.ProcessFilesHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var body dto.ProcessFilesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body.Error, "template_id is required")
		assert.Empty(t, body.OutputPaths)
	})

	t.Run("Error_ValidationFailure", func(t *testing.T) {
		uc := &pipelineMocks.MockPipelineUseCase{}
		handler := NewProcessHandler(uc, testLogger())

		c, w := createTestContext(http.MethodPost, "/v1/process/files", dto.ProcessFilesRequest{Action: "scramble"})
		handler.ProcessFilesHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		uc.AssertNotCalled(t, "ProcessFiles", mock.Anything, mock.Anything)
	})

	t.Run("Error_MalformedJSON", func(t *testing.T) {
		uc := &pipelineMocks.MockPipelineUseCase{}
		handler := NewProcessHandler(uc, testLogger())

		gin.SetMode(gin.TestMode)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/v1/process/files", bytes.NewBufferString("{"))
		c.Request.Header.Set("Content-Type", "application/json")

		handler.ProcessFilesHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProcessHandler_ProcessTextHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &pipelineMocks.MockPipelineUseCase{}
		handler := NewProcessHandler(uc, testLogger())
		templateID := int64(2)

		uc.On("ProcessText", mock.Anything, mock.MatchedBy(func(in *pipelineDomain.ProcessTextInput) bool {
			return in.Text == "Hi <PERSON_1>" && in.Action == engineDomain.ActionDeanonymize && *in.TemplateID == 2
		})).Return(&pipelineDomain.TextResult{Result: "Hi John", TemplateID: &templateID}, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/process/text", dto.ProcessTextRequest{
			Text:       "Hi <PERSON_1>",
			Action:     "deanonymize",
			TemplateID: &templateID,
		})
		handler.ProcessTextHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"result":"Hi John","template_id":2,"items":[]}`, w.Body.String())
	})

	t.Run("Error_EngineFailure", func(t *testing.T) {
		uc := &pipelineMocks.MockPipelineUseCase{}
		handler := NewProcessHandler(uc, testLogger())

		uc.On("ProcessText", mock.Anything, mock.Anything).
			Return(nil, &engineDomain.TransportError{Message: "model not loaded"}).Once()

		c, w := createTestContext(http.MethodPost, "/v1/process/text", dto.ProcessTextRequest{
			Text:   "Hi John",
			Action: "anonymize",
		})
		handler.ProcessTextHandler(c)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.JSONEq(t, `{"result":"","template_id":null,"error":"model not loaded","items":[]}`, w.Body.String())
	})
}
