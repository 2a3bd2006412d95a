// Package domain defines reusable substitution templates.
//
// A Template records which original values were replaced by which tokens during an
// anonymize batch, so that a later deanonymize batch can restore them. Once persisted,
// a template is never mutated; extending a mapping set always produces a new template.
package domain

import (
	"time"
)

// MappingItem is one original-to-token substitution produced by the engine.
type MappingItem struct {
	Original   string  `json:"original"`
	Anonymized string  `json:"anonymized"`
	PIIType    string  `json:"pii_type"`
	Confidence float64 `json:"confidence"`
}

// CustomRecognizer is an extra detection rule forwarded to the engine untouched.
type CustomRecognizer struct {
	EntityType string  `json:"entity_type"`
	Pattern    string  `json:"pattern"`
	Score      float64 `json:"score"`
}

// Template is a named, persisted mapping set.
type Template struct {
	ID                int64
	Name              string
	Mappings          []MappingItem
	CustomRecognizers []CustomRecognizer
	CreatedAt         time.Time
}

// TemplateRecord is the stored form of a Template. Both blobs are opaque to the repository.
type TemplateRecord struct {
	ID                    int64
	Name                  string
	MappingsBlob          []byte
	CustomRecognizersBlob []byte
	CreatedAt             time.Time
}

// CreateTemplateInput carries a mapping set to persist.
type CreateTemplateInput struct {
	Name              string
	Mappings          []MappingItem
	CustomRecognizers []CustomRecognizer
}
