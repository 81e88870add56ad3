package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-jammit/internal/config"
)

// envPrefix marks jammit environment variables.
const envPrefix = "JAMMIT_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath       string // JAMMIT_CONFIG: config file name or path
	EmbedAssets      string // JAMMIT_EMBED: none, datauri, mhtml
	PublicRoot       string // JAMMIT_PUBLIC_ROOT: directory embedded urls resolve under
	EmbedMarker      string // JAMMIT_EMBED_MARKER: path segment marking embeddable images
	TemplateFunction string // JAMMIT_TEMPLATE_FUNCTION: JST compiler function
	AssetPath        string // JAMMIT_ASSET_PATH: custom script directory
	StrictMimeTypes  bool   // JAMMIT_STRICT_MIME: any strconv.ParseBool true value
}

// knownEnvVars lists valid JAMMIT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"JAMMIT_CONFIG":            true,
	"JAMMIT_EMBED":             true,
	"JAMMIT_PUBLIC_ROOT":       true,
	"JAMMIT_EMBED_MARKER":      true,
	"JAMMIT_TEMPLATE_FUNCTION": true,
	"JAMMIT_ASSET_PATH":        true,
	"JAMMIT_STRICT_MIME":       true,
}

// loadEnvConfig reads configuration through getenv.
// Unparseable booleans are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath:       getenv("JAMMIT_CONFIG"),
		EmbedAssets:      getenv("JAMMIT_EMBED"),
		PublicRoot:       getenv("JAMMIT_PUBLIC_ROOT"),
		EmbedMarker:      getenv("JAMMIT_EMBED_MARKER"),
		TemplateFunction: getenv("JAMMIT_TEMPLATE_FUNCTION"),
		AssetPath:        getenv("JAMMIT_ASSET_PATH"),
	}

	if strict := getenv("JAMMIT_STRICT_MIME"); strict != "" {
		if b, err := strconv.ParseBool(strict); err == nil {
			cfg.StrictMimeTypes = b
		}
	}

	return cfg
}

// warnUnknownEnvVars writes a warning for each unrecognized JAMMIT_* variable
// in environ (KEY=value pairs).
// Helps catch typos like JAMMIT_EMBEDD instead of JAMMIT_EMBED.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.EmbedAssets != "" && cfg.EmbedAssets == "" {
		cfg.EmbedAssets = env.EmbedAssets
	}
	if env.PublicRoot != "" && cfg.PublicRoot == "" {
		cfg.PublicRoot = env.PublicRoot
	}
	if env.EmbedMarker != "" && cfg.EmbedMarker == "" {
		cfg.EmbedMarker = env.EmbedMarker
	}
	if env.TemplateFunction != "" && cfg.TemplateFunction == "" {
		cfg.TemplateFunction = env.TemplateFunction
	}
	if env.AssetPath != "" && cfg.AssetPath == "" {
		cfg.AssetPath = env.AssetPath
	}
	if env.StrictMimeTypes && !cfg.StrictMimeTypes {
		cfg.StrictMimeTypes = true
	}
}
