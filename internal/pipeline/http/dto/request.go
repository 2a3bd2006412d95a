// Package dto provides data transfer objects for the processing endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	engineDomain "github.com/allisson/ciphershield/internal/engine/domain"
	pipelineDomain "github.com/allisson/ciphershield/internal/pipeline/domain"
	templatesDomain "github.com/allisson/ciphershield/internal/templates/domain"
	customValidation "github.com/allisson/ciphershield/internal/validation"
)

var actionRule = validation.In(string(engineDomain.ActionAnonymize), string(engineDomain.ActionDeanonymize)).
	Error("must be anonymize or deanonymize")

// CustomRecognizerRequest is an extra pattern recognizer forwarded to the engine.
type CustomRecognizerRequest struct {
	EntityType string  `json:"entity_type"`
	Pattern    string  `json:"pattern"`
	Score      float64 `json:"score"`
}

// Validate checks if the recognizer is valid.
func (r CustomRecognizerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EntityType, validation.Required, customValidation.NotBlank, validation.Length(1, 100)),
		validation.Field(&r.Pattern, validation.Required, validation.Length(1, 1000)),
		validation.Field(&r.Score, validation.Min(0.0), validation.Max(1.0)),
	)
}

// ProcessFilesRequest contains the parameters of a file batch.
type ProcessFilesRequest struct {
	Files             []string                  `json:"files"`
	Action            string                    `json:"action"`
	TemplateID        *int64                    `json:"template_id"`
	SaveTemplate      bool                      `json:"save_template"`
	TemplateName      string                    `json:"template_name"`
	CustomRecognizers []CustomRecognizerRequest `json:"custom_recognizers"`
}

// Validate checks if the file batch request is valid.
func (r *ProcessFilesRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Files,
			validation.Required,
			validation.Each(validation.Required, customValidation.NotBlank, customValidation.AbsolutePath),
		),
		validation.Field(&r.Action, validation.Required, actionRule),
		validation.Field(&r.TemplateID, validation.NilOrNotEmpty, validation.Min(int64(1))),
		validation.Field(&r.TemplateName, validation.Length(0, 255)),
		validation.Field(&r.CustomRecognizers),
	)
}

// ToInput converts the request to a pipeline input.
func (r *ProcessFilesRequest) ToInput() *pipelineDomain.ProcessFilesInput {
	return &pipelineDomain.ProcessFilesInput{
		Paths:             r.Files,
		Action:            engineDomain.Action(r.Action),
		TemplateID:        r.TemplateID,
		SaveTemplate:      r.SaveTemplate,
		TemplateName:      r.TemplateName,
		CustomRecognizers: mapRecognizers(r.CustomRecognizers),
	}
}

// ProcessTextRequest contains the parameters of a text batch.
type ProcessTextRequest struct {
	Text              string                    `json:"text"`
	Action            string                    `json:"action"`
	TemplateID        *int64                    `json:"template_id"`
	SaveTemplate      bool                      `json:"save_template"`
	TemplateName      string                    `json:"template_name"`
	CustomRecognizers []CustomRecognizerRequest `json:"custom_recognizers"`
}

// Validate checks if the text batch request is valid.
func (r *ProcessTextRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Text, validation.Required),
		validation.Field(&r.Action, validation.Required, actionRule),
		validation.Field(&r.TemplateID, validation.NilOrNotEmpty, validation.Min(int64(1))),
		validation.Field(&r.TemplateName, validation.Length(0, 255)),
		validation.Field(&r.CustomRecognizers),
	)
}

// ToInput converts the request to a pipeline input.
func (r *ProcessTextRequest) ToInput() *pipelineDomain.ProcessTextInput {
	return &pipelineDomain.ProcessTextInput{
		Text:              r.Text,
		Action:            engineDomain.Action(r.Action),
		TemplateID:        r.TemplateID,
		SaveTemplate:      r.SaveTemplate,
		TemplateName:      r.TemplateName,
		CustomRecognizers: mapRecognizers(r.CustomRecognizers),
	}
}

func mapRecognizers(in []CustomRecognizerRequest) []templatesDomain.CustomRecognizer {
	out := make([]templatesDomain.CustomRecognizer, 0, len(in))
	for _, r := range in {
		out = append(out, templatesDomain.CustomRecognizer{
			EntityType: r.EntityType,
			Pattern:    r.Pattern,
			Score:      r.Score,
		})
	}
	return out
}
