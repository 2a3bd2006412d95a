package validation

import (
	"encoding/hex"

	validation "github.com/jellydator/validation"
)

// HexKey validates that a string is a hex-encoded 32-byte key.
var HexKey = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_hex_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return validation.NewError("validation_hex", "must be valid hex-encoded data")
	}
	if len(b) != 32 {
		return validation.NewError("validation_hex_key_size", "must encode exactly 32 bytes")
	}
	return nil
})
