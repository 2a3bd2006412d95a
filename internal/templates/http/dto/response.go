// Package dto provides data transfer objects for the template HTTP endpoints.
package dto

import (
	"time"

	templatesDomain "github.com/allisson/ciphershield/internal/templates/domain"
)

// TemplateResponse is the API representation of a template.
type TemplateResponse struct {
	ID                int64                              `json:"id"`
	Name              string                             `json:"name"`
	Mappings          []templatesDomain.MappingItem      `json:"mappings"`
	CustomRecognizers []templatesDomain.CustomRecognizer `json:"custom_recognizers"`
	CreatedAt         time.Time                          `json:"created_at"`
}

// ListTemplatesResponse wraps the template listing.
type ListTemplatesResponse struct {
	Data []TemplateResponse `json:"data"`
}

// MappingsResponse carries the mapping list of one template.
type MappingsResponse struct {
	TemplateID int64                         `json:"template_id"`
	Mappings   []templatesDomain.MappingItem `json:"mappings"`
}

// MapTemplateToResponse converts a domain template to its API representation.
func MapTemplateToResponse(template *templatesDomain.Template) TemplateResponse {
	return TemplateResponse{
		ID:                template.ID,
		Name:              template.Name,
		Mappings:          template.Mappings,
		CustomRecognizers: template.CustomRecognizers,
		CreatedAt:         template.CreatedAt,
	}
}

// MapTemplatesToListResponse converts a template listing to its API representation.
func MapTemplatesToListResponse(templates []*templatesDomain.Template) ListTemplatesResponse {
	data := make([]TemplateResponse, 0, len(templates))
	for _, template := range templates {
		data = append(data, MapTemplateToResponse(template))
	}
	return ListTemplatesResponse{Data: data}
}
