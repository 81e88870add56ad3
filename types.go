package jammit

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/alnah/go-jammit/internal/assets"
	"github.com/alnah/go-jammit/internal/pipeline"
)

// Defaults.
const (
	// DefaultTemplateFunction is the bundled JST compiler. Using it makes
	// CompileJST prepend the bootstrap that defines it and window.JST.
	DefaultTemplateFunction = pipeline.DefaultTemplateFunction

	// DefaultEmbedMarker is the path segment marking embeddable resources.
	DefaultEmbedMarker = pipeline.DefaultEmbedMarker

	// DefaultPublicRoot is the directory embeddable resources are read from.
	DefaultPublicRoot = assets.DefaultPublicRoot

	// MHTMLBoundary separates the parts of the MHTML variant.
	MHTMLBoundary = pipeline.MHTMLBoundary
)

// SupportedExtensions returns the file extensions that resolve to a MIME type
// when embedded, sorted.
func SupportedExtensions() []string {
	return pipeline.SupportedExtensions()
}

// Variant selects how CompressCSS embeds resources.
type Variant string

// Embedding variants.
const (
	VariantNone    Variant = ""        // compressed CSS returned as-is
	VariantDataURI Variant = "datauri" // each reference becomes a data: URL
	VariantMHTML   Variant = "mhtml"   // one multipart document for legacy IE
)

// ParseVariant converts a user-supplied name to a Variant (case-insensitive).
// Accepts "", "none", "off", "datauri", "data-uri", "mhtml", "multipart".
// Returns ErrInvalidVariant for anything else.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "off":
		return VariantNone, nil
	case "datauri", "data-uri":
		return VariantDataURI, nil
	case "mhtml", "multipart":
		return VariantMHTML, nil
	}
	return VariantNone, fmt.Errorf("%w: %q (must be none, datauri, or mhtml)", ErrInvalidVariant, s)
}

// Validate checks that v is one of the declared variants.
func (v Variant) Validate() error {
	switch v {
	case VariantNone, VariantDataURI, VariantMHTML:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidVariant, string(v))
}

// String returns the variant name, "none" for VariantNone.
func (v Variant) String() string {
	if v == VariantNone {
		return "none"
	}
	return string(v)
}

// Option configures a Compressor.
type Option func(*Compressor)

// compressorConfig holds internal configuration for Compressor.
type compressorConfig struct {
	publicRoot       string
	templateFunction string
	embedMarker      string
	assetPath        string
	strictMimeTypes  bool
}

// WithMinifier replaces the default tdewolff-based minifier.
func WithMinifier(m Minifier) Option {
	return func(c *Compressor) {
		c.minifier = m
	}
}

// WithPublicRoot sets the directory embeddable resource paths resolve against.
func WithPublicRoot(dir string) Option {
	return func(c *Compressor) {
		c.cfg.publicRoot = dir
	}
}

// WithTemplateFunction sets the function each JST template string is passed
// to, e.g. "_.template". Any name other than DefaultTemplateFunction
// suppresses the bundled bootstrap.
func WithTemplateFunction(name string) Option {
	return func(c *Compressor) {
		c.cfg.templateFunction = name
	}
}

// WithEmbedMarker sets the path segment that opts a url(...) into embedding.
func WithEmbedMarker(marker string) Option {
	return func(c *Compressor) {
		c.cfg.embedMarker = marker
	}
}

// WithStrictMimeTypes makes resources with unknown extensions fail with
// ErrUnresolvedMimeType instead of being embedded with an empty MIME type.
func WithStrictMimeTypes(strict bool) Option {
	return func(c *Compressor) {
		c.cfg.strictMimeTypes = strict
	}
}

// WithAssetPath sets a directory whose scripts/jst.js overrides the bundled
// JST bootstrap.
func WithAssetPath(dir string) Option {
	return func(c *Compressor) {
		c.cfg.assetPath = dir
	}
}

// WithLogger sets the logger for debug and warning records.
// A nil logger discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Compressor) {
		c.logger = logger
	}
}
