package commands

import (
	"encoding/base64"
	"fmt"
	"io"

	"gocloud.dev/secrets/localsecrets"
)

// RunCreateTemplateKey prints a fresh localsecrets key URI for TEMPLATE_KEY_URI.
//
// Output format:
//   - TEMPLATE_KEY_URI="base64key://<base64url-encoded-32-byte-key>"
//
// Security: localsecrets keeps the key in the environment. Point TEMPLATE_KEY_URI at a
// hashivault:// transit key when the key must not live next to the database.
func RunCreateTemplateKey(w io.Writer) error {
	key, err := localsecrets.NewRandomKey()
	if err != nil {
		return fmt.Errorf("failed to generate template key: %w", err)
	}

	uri := "base64key://" + base64.URLEncoding.EncodeToString(key[:])

	_, _ = fmt.Fprintln(w, "# Template key configuration")
	_, _ = fmt.Fprintln(w, "# Copy this environment variable to your .env file")
	_, _ = fmt.Fprintln(w, "# Templates saved under one key cannot be read with another")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "TEMPLATE_KEY_URI=\"%s\"\n", uri)

	for i := range key {
		key[i] = 0
	}
	return nil
}
