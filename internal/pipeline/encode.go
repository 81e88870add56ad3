package pipeline

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
)

// ResourceLoader reads embeddable resources by identifier.
type ResourceLoader interface {
	LoadResource(identifier string) ([]byte, error)
}

// Encode returns the base64 form of b as one contiguous token.
func Encode(b []byte) string {
	return strings.ReplaceAll(base64.StdEncoding.EncodeToString(b), "\n", "")
}

// EncodeFile reads the file at path and returns its base64 form.
// Returns ErrResourceNotFound if the file cannot be read.
func EncodeFile(path string) (string, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- trusted local tree
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrResourceNotFound, path, err)
	}
	return Encode(content), nil
}

// EncodeResource reads identifier through loader and returns its base64 form.
// Loader errors are returned as-is so callers can still match the loader's
// own sentinels.
func EncodeResource(loader ResourceLoader, identifier string) (string, error) {
	content, err := loader.LoadResource(identifier)
	if err != nil {
		return "", err
	}
	return Encode(content), nil
}
