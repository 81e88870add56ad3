// Package config loads go-jammit settings from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-jammit/internal/fileutil"
	"github.com/alnah/go-jammit/internal/pipeline"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// userConfigDirName is the directory under os.UserConfigDir() searched for
// named configs.
const userConfigDirName = "go-jammit"

// Field length limits.
const (
	MaxPathLength             = 4096 // PATH_MAX on Linux
	MaxTemplateFunctionLength = 100  // "template", "_.template", "Handlebars.compile"
	MaxEmbedMarkerLength      = 100  // "embed/"
	MaxEmbedAssetsLength      = 20   // "datauri", "mhtml"
)

// embedModes lists the accepted embedAssets values (lowercased).
var embedModes = map[string]struct{}{
	"": {}, "none": {}, "off": {},
	"datauri": {}, "data-uri": {},
	"mhtml": {}, "multipart": {},
}

// Config holds all configuration for asset compression.
type Config struct {
	// EmbedAssets selects the CSS embedding variant: none, datauri, or mhtml.
	EmbedAssets string `yaml:"embedAssets"`

	// TemplateFunction is the JavaScript function JST strings are passed to.
	// Empty means the bundled "template" compiler.
	TemplateFunction string `yaml:"templateFunction"`

	// EmbedMarker is the path segment marking embeddable resources (default "embed/").
	EmbedMarker string `yaml:"embedMarker"`

	// PublicRoot is the directory resource identifiers resolve against (default "public").
	PublicRoot string `yaml:"publicRoot"`

	// AssetPath overrides bundled scripts with <assetPath>/scripts/*.js. Empty = embedded.
	AssetPath string `yaml:"assetPath"`

	// StrictMimeTypes fails on embeddable resources with unknown extensions.
	StrictMimeTypes bool `yaml:"strictMimeTypes"`
}

// Validate checks field lengths and values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("embedAssets", c.EmbedAssets, MaxEmbedAssetsLength); err != nil {
		return err
	}
	if _, ok := embedModes[strings.ToLower(strings.TrimSpace(c.EmbedAssets))]; !ok {
		return fmt.Errorf("%w: embedAssets: %q (must be none, datauri, or mhtml)", ErrInvalidValue, c.EmbedAssets)
	}

	if err := validateFieldLength("templateFunction", c.TemplateFunction, MaxTemplateFunctionLength); err != nil {
		return err
	}
	if c.TemplateFunction != "" {
		if err := pipeline.ValidateTemplateFunction(c.TemplateFunction); err != nil {
			return fmt.Errorf("%w: templateFunction: %v", ErrInvalidValue, err)
		}
	}

	if err := validateFieldLength("embedMarker", c.EmbedMarker, MaxEmbedMarkerLength); err != nil {
		return err
	}
	if c.EmbedMarker != "" {
		if err := pipeline.ValidateEmbedMarker(c.EmbedMarker); err != nil {
			return fmt.Errorf("%w: embedMarker: %v", ErrInvalidValue, err)
		}
	}

	if err := validateFieldLength("publicRoot", c.PublicRoot, MaxPathLength); err != nil {
		return err
	}

	if err := validateFieldLength("assetPath", c.AssetPath, MaxPathLength); err != nil {
		return err
	}
	if c.AssetPath != "" {
		info, err := os.Stat(c.AssetPath)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("%w: assetPath: directory does not exist: %s", ErrInvalidValue, c.AssetPath)
			}
			return fmt.Errorf("%w: assetPath: cannot access directory: %v", ErrInvalidValue, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%w: assetPath: not a directory: %s", ErrInvalidValue, c.AssetPath)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: no embedding, bundled
// template compiler, library defaults for paths and marker.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := unmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup order:
// ./<name>.yaml, ./<name>.yml, then the same names under
// <user config dir>/go-jammit/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, userConfigDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
