// Package domain defines batch jobs and results for the processing pipeline.
package domain

import (
	engineDomain "github.com/allisson/ciphershield/internal/engine/domain"
	templatesDomain "github.com/allisson/ciphershield/internal/templates/domain"
)

// ProcessFilesInput describes a batch of files on the local filesystem.
type ProcessFilesInput struct {
	Paths             []string
	Action            engineDomain.Action
	TemplateID        *int64
	SaveTemplate      bool
	TemplateName      string
	CustomRecognizers []templatesDomain.CustomRecognizer
}

// ProcessTextInput describes a single text blob.
type ProcessTextInput struct {
	Text              string
	Action            engineDomain.Action
	TemplateID        *int64
	SaveTemplate      bool
	TemplateName      string
	CustomRecognizers []templatesDomain.CustomRecognizer
}

// FilesResult is returned by a fully successful file batch.
type FilesResult struct {
	OperationID string
	OutputPaths []string
	TemplateID  *int64
	Items       []templatesDomain.MappingItem
}

// TextResult is returned by a successful text batch.
type TextResult struct {
	Result     string
	TemplateID *int64
	Items      []templatesDomain.MappingItem
}

// Item is one unit of work handed to the engine.
type Item struct {
	Index             int
	Action            engineDomain.Action
	Plaintext         []byte
	Ext               string
	Mappings          []templatesDomain.MappingItem
	CustomRecognizers []templatesDomain.CustomRecognizer
}

// ItemOutcome is the decrypted engine result for one Item.
type ItemOutcome struct {
	Plaintext []byte
	Items     []templatesDomain.MappingItem
}
