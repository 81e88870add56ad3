package jammit

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/alnah/go-jammit/internal/assets"
	"github.com/alnah/go-jammit/internal/logging"
	"github.com/alnah/go-jammit/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.ResourceLoader = (*assets.PublicRoot)(nil)
	_ assets.ScriptLoader     = (*assets.ScriptResolver)(nil)
)

// Compressor concatenates, minifies, and embeds assets.
// Create with NewCompressor. Configuration is fixed at construction, so a
// Compressor is safe for concurrent use.
type Compressor struct {
	cfg      compressorConfig
	minifier Minifier
	logger   *slog.Logger
	embedder *pipeline.Embedder
	jst      *pipeline.JSTCompiler
}

// NewCompressor creates a Compressor with default configuration.
// Use options to customize behavior (e.g., WithPublicRoot, WithTemplateFunction).
// Returns error if an option value is invalid or the JST bootstrap cannot be loaded.
func NewCompressor(opts ...Option) (*Compressor, error) {
	c := &Compressor{
		cfg: compressorConfig{
			publicRoot:       DefaultPublicRoot,
			templateFunction: DefaultTemplateFunction,
			embedMarker:      DefaultEmbedMarker,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.minifier == nil {
		c.minifier = NewMinifier()
	}
	logger := logging.Default(c.logger)
	c.logger = logger.With("component", "compressor")

	if err := pipeline.ValidateTemplateFunction(c.cfg.templateFunction); err != nil {
		return nil, convertError(err)
	}

	root, err := assets.NewPublicRoot(c.cfg.publicRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: public root: %v", ErrInvalidAssetPath, err)
	}

	c.embedder, err = pipeline.NewEmbedder(root, pipeline.EmbedOptions{
		Marker:          c.cfg.embedMarker,
		StrictMimeTypes: c.cfg.strictMimeTypes,
		Logger:          logger,
	})
	if err != nil {
		return nil, convertError(err)
	}

	c.jst = &pipeline.JSTCompiler{TemplateFunction: c.cfg.templateFunction}
	if c.cfg.templateFunction == DefaultTemplateFunction {
		bootstrap, err := loadBootstrap(c.cfg.assetPath, c.logger)
		if err != nil {
			return nil, err
		}
		c.jst.Bootstrap = bootstrap
	}

	c.logger.Debug("compressor ready",
		"publicRoot", root.Dir(),
		"embedMarker", c.cfg.embedMarker,
		"templateFunction", c.cfg.templateFunction)
	return c, nil
}

// loadBootstrap returns the JST bootstrap script, preferring
// <assetPath>/scripts/jst.js when assetPath is set.
func loadBootstrap(assetPath string, logger *slog.Logger) (string, error) {
	resolver, err := assets.NewScriptResolver(assetPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	script, err := resolver.LoadScript(assets.JSTScriptName)
	if err != nil {
		return "", fmt.Errorf("loading JST bootstrap: %w", convertError(err))
	}
	logger.Debug("loaded JST bootstrap", "customAssetPath", resolver.HasCustomLoader(), "bytes", len(script))
	return script, nil
}

// CompressJS concatenates the files at paths, in order, and minifies the
// result as JavaScript.
func (c *Compressor) CompressJS(paths ...string) (out string, err error) {
	defer recoverInternal(&err)

	source, err := pipeline.Concatenate(paths)
	if err != nil {
		return "", convertError(err)
	}
	out, err = c.minify(c.minifier.MinifyJS, source)
	if err != nil {
		return "", err
	}

	c.logger.Debug("compressed javascript",
		"files", len(paths), "inputBytes", len(source), "outputBytes", len(out))
	return out, nil
}

// CompressCSS concatenates the files at paths, in order, minifies the result
// as CSS, and embeds referenced resources according to variant.
//
// stylesheetURL is accepted for API compatibility and currently ignored;
// relative url(...) references are never rewritten.
func (c *Compressor) CompressCSS(paths []string, variant Variant, stylesheetURL string) (out string, err error) {
	defer recoverInternal(&err)

	if err := variant.Validate(); err != nil {
		return "", err
	}

	source, err := pipeline.Concatenate(paths)
	if err != nil {
		return "", convertError(err)
	}
	minified, err := c.minify(c.minifier.MinifyCSS, source)
	if err != nil {
		return "", err
	}

	switch variant {
	case VariantDataURI:
		out, err = c.embedder.DataURIs(minified)
	case VariantMHTML:
		out, err = c.embedder.MHTML(minified)
	default:
		out = minified
	}
	if err != nil {
		return "", convertError(err)
	}

	c.logger.Debug("compressed stylesheet",
		"files", len(paths), "variant", variant.String(),
		"resources", len(c.embedder.Identifiers(minified)),
		"inputBytes", len(source), "outputBytes", len(out))
	return out, nil
}

// CompileJST compiles the .jst files at paths into one script registering
// each template on window.JST under its base name.
func (c *Compressor) CompileJST(paths ...string) (out string, err error) {
	defer recoverInternal(&err)

	out, err = c.jst.Compile(paths)
	if err != nil {
		return "", convertError(err)
	}

	c.logger.Debug("compiled templates",
		"templates", len(paths), "function", c.cfg.templateFunction, "outputBytes", len(out))
	return out, nil
}

// minify runs fn and guarantees the error matches ErrMinification, whatever
// Minifier produced it.
func (c *Compressor) minify(fn func(string) (string, error), source string) (string, error) {
	out, err := fn(source)
	if err == nil {
		return out, nil
	}
	if errors.Is(err, ErrMinification) {
		return "", err
	}
	return "", fmt.Errorf("%w: %v", ErrMinification, err)
}

// recoverInternal converts a panic in a user-supplied Minifier or loader into
// an error so it does not crash the caller.
func recoverInternal(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("internal error: %v", r)
	}
}
