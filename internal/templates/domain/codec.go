package domain

import (
	"encoding/json"
)

// EncodeMappings serializes mappings as a JSON array. A nil slice encodes as [].
func EncodeMappings(items []MappingItem) ([]byte, error) {
	if items == nil {
		items = []MappingItem{}
	}
	return json.Marshal(items)
}

// DecodeMappings parses a JSON array of mapping items.
func DecodeMappings(data []byte) ([]MappingItem, error) {
	items := []MappingItem{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// EncodeRecognizers serializes recognizers as a JSON array. A nil slice encodes as [].
func EncodeRecognizers(recognizers []CustomRecognizer) ([]byte, error) {
	if recognizers == nil {
		recognizers = []CustomRecognizer{}
	}
	return json.Marshal(recognizers)
}

// DecodeRecognizers parses a JSON array of custom recognizers.
func DecodeRecognizers(data []byte) ([]CustomRecognizer, error) {
	recognizers := []CustomRecognizer{}
	if err := json.Unmarshal(data, &recognizers); err != nil {
		return nil, err
	}
	return recognizers, nil
}
