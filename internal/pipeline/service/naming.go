package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"

	engineDomain "github.com/allisson/ciphershield/internal/engine/domain"
)

const (
	// TextExt is the extension used for text batches and unknown content.
	TextExt = "txt"

	sniffLength = 262
)

// DetectExt returns the lowercase extension of path without the dot.
// Files without one are sniffed from their leading bytes; unknown content is treated as text.
func DetectExt(path string, content []byte) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext != "" {
		return ext
	}

	head := content
	if len(head) > sniffLength {
		head = head[:sniffLength]
	}
	kind, err := filetype.Match(head)
	if err != nil || kind == filetype.Unknown {
		return TextExt
	}
	return kind.Extension
}

// OutputExt is the extension of the decrypted result. The engine emits extracted text for PDFs.
func OutputExt(ext string) string {
	if ext == "pdf" {
		return TextExt
	}
	return ext
}

// OutputName builds "<stem>_<action>d.<ext>" for a source path.
func OutputName(path string, action engineDomain.Action, ext string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		stem = "output"
	}
	return fmt.Sprintf("%s_%sd.%s", stem, action, OutputExt(ext))
}

// UniquePath returns dir/name, suffixing the stem with _1, _2, ... while the name is taken.
func UniquePath(dir, name string) string {
	candidate := filepath.Join(dir, name)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for n := 1; ; n++ {
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, n, ext))
	}
}
