package dto

import (
	pipelineDomain "github.com/allisson/ciphershield/internal/pipeline/domain"
	templatesDomain "github.com/allisson/ciphershield/internal/templates/domain"
)

// ProcessFilesResponse is the result of a file batch. Error is set only on failure.
type ProcessFilesResponse struct {
	OutputPaths []string                      `json:"output_paths"`
	TemplateID  *int64                        `json:"template_id"`
	Error       string                        `json:"error,omitempty"`
	Items       []templatesDomain.MappingItem `json:"items"`
}

// ProcessTextResponse is the result of a text batch. Error is set only on failure.
type ProcessTextResponse struct {
	Result     string                        `json:"result"`
	TemplateID *int64                        `json:"template_id"`
	Error      string                        `json:"error,omitempty"`
	Items      []templatesDomain.MappingItem `json:"items"`
}

// MapFilesResultToResponse converts a file batch result.
func MapFilesResultToResponse(result *pipelineDomain.FilesResult) ProcessFilesResponse {
	return ProcessFilesResponse{
		OutputPaths: nonNil(result.OutputPaths),
		TemplateID:  result.TemplateID,
		Items:       nonNilItems(result.Items),
	}
}

// MapTextResultToResponse converts a text batch result.
func MapTextResultToResponse(result *pipelineDomain.TextResult) ProcessTextResponse {
	return ProcessTextResponse{
		Result:     result.Result,
		TemplateID: result.TemplateID,
		Items:      nonNilItems(result.Items),
	}
}

// FilesFailure is the body of a failed file batch: no outputs, only the error text.
func FilesFailure(message string) ProcessFilesResponse {
	return ProcessFilesResponse{
		OutputPaths: []string{},
		Error:       message,
		Items:       []templatesDomain.MappingItem{},
	}
}

// TextFailure is the body of a failed text batch.
func TextFailure(message string) ProcessTextResponse {
	return ProcessTextResponse{
		Error: message,
		Items: []templatesDomain.MappingItem{},
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilItems(items []templatesDomain.MappingItem) []templatesDomain.MappingItem {
	if items == nil {
		return []templatesDomain.MappingItem{}
	}
	return items
}
