package config

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// maxConfigSize caps config files at 1 MiB.
var maxConfigSize = 1 << 20

var (
	errEmptyData    = errors.New("empty config data")
	errDataTooLarge = errors.New("config exceeds maximum size")
)

// unmarshalStrict decodes YAML into v and rejects unknown keys, so a typo
// such as "embedAsset" fails loudly instead of being ignored.
func unmarshalStrict(data []byte, v any) error {
	if len(data) == 0 {
		return errEmptyData
	}
	if len(data) > maxConfigSize {
		return fmt.Errorf("%w: %d bytes (max %d)", errDataTooLarge, len(data), maxConfigSize)
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yaml: %w", err)
	}
	return nil
}
