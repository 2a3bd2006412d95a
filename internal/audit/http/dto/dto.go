// Package dto provides data transfer objects for the processed-file endpoints.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	auditDomain "github.com/allisson/ciphershield/internal/audit/domain"
	customValidation "github.com/allisson/ciphershield/internal/validation"
)

// RenameProcessedFileRequest changes the display name of a record.
type RenameProcessedFileRequest struct {
	Name string `json:"name"`
}

// Validate checks if the rename request is valid.
func (r *RenameProcessedFileRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, customValidation.NotBlank, validation.Length(1, 255)),
	)
}

// ProcessedFileResponse is the API representation of a processed-file record.
type ProcessedFileResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// ListProcessedFilesResponse wraps a page of records.
type ListProcessedFilesResponse struct {
	Data []ProcessedFileResponse `json:"data"`
}

// MapProcessedFilesToListResponse converts records to their API representation.
func MapProcessedFilesToListResponse(files []*auditDomain.ProcessedFile) ListProcessedFilesResponse {
	data := make([]ProcessedFileResponse, 0, len(files))
	for _, file := range files {
		data = append(data, ProcessedFileResponse{
			ID:        file.ID,
			Name:      file.Name,
			Path:      file.Path,
			Action:    file.Action,
			Timestamp: file.CreatedAt,
		})
	}
	return ListProcessedFilesResponse{Data: data}
}
