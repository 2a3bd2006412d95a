package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeMappings(t *testing.T) {
	t.Run("nil encodes as empty array", func(t *testing.T) {
		data, err := EncodeMappings(nil)
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(data))
	})

	t.Run("field names match the engine protocol", func(t *testing.T) {
		data, err := EncodeMappings([]MappingItem{
			{Original: "John Smith", Anonymized: "<PERSON_1>", PIIType: "PERSON", Confidence: 0.85},
		})
		require.NoError(t, err)
		assert.JSONEq(t,
			`[{"original":"John Smith","anonymized":"<PERSON_1>","pii_type":"PERSON","confidence":0.85}]`,
			string(data))
	})
}

func TestDecodeMappings(t *testing.T) {
	t.Run("preserves order", func(t *testing.T) {
		items, err := DecodeMappings([]byte(`[
			{"original":"b","anonymized":"<B>","pii_type":"X","confidence":1},
			{"original":"a","anonymized":"<A>","pii_type":"Y","confidence":0.5}
		]`))
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "b", items[0].Original)
		assert.Equal(t, "a", items[1].Original)
	})

	t.Run("corrupt blob", func(t *testing.T) {
		_, err := DecodeMappings([]byte(`{not json`))
		assert.Error(t, err)
	})
}

func TestRecognizerCodec(t *testing.T) {
	data, err := EncodeRecognizers([]CustomRecognizer{{EntityType: "EMPLOYEE_ID", Pattern: `E\d{6}`, Score: 0.9}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"entity_type":"EMPLOYEE_ID","pattern":"E\\d{6}","score":0.9}]`, string(data))

	decoded, err := DecodeRecognizers(data)
	require.NoError(t, err)
	assert.Equal(t, `E\d{6}`, decoded[0].Pattern)

	empty, err := EncodeRecognizers(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}
