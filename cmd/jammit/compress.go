package main

import (
	"errors"
	"fmt"
	"log/slog"

	jammit "github.com/alnah/go-jammit"
	"github.com/alnah/go-jammit/internal/config"
	"github.com/alnah/go-jammit/internal/fileutil"
	"github.com/alnah/go-jammit/internal/hints"
	"github.com/alnah/go-jammit/internal/logging"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput     = errors.New("no input files")
	ErrWriteOutput = errors.New("failed to write output")
	ErrUsage       = errors.New("invalid usage")
)

// filePermissions is rw-r--r--: bundles are served as static files.
const filePermissions = 0o644

// runCompress runs one of the js, css, or jst commands.
func runCompress(cmd command, args []string, env *Environment) error {
	flags, paths, err := parseCompressFlags(cmd, args, env.Stderr)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("%w: usage: jammit %s [flags] <file>...", ErrNoInput, cmd)
	}

	envCfg := loadEnvConfig(env.getenv)
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr, env.environ())
	}

	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	cfg, err := loadConfig(configName, env)
	if err != nil {
		return err
	}

	// CLI > env > config > defaults
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	variant, err := jammit.ParseVariant(cfg.EmbedAssets)
	if err != nil {
		return fmt.Errorf("%w%s", err, hints.ForVariant())
	}

	logger := logging.NewCLILogger(env.Stderr, flags.common.verbose, flags.common.quiet)
	c, err := jammit.NewCompressor(compressorOptions(cfg, logger)...)
	if err != nil {
		return fmt.Errorf("initializing compressor: %w", err)
	}

	start := env.Now()
	var out string
	switch cmd {
	case cmdJS:
		out, err = c.CompressJS(paths...)
	case cmdCSS:
		out, err = c.CompressCSS(paths, variant, flags.css.stylesheetURL)
	case cmdJST:
		out, err = c.CompileJST(paths...)
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
	}
	if err != nil {
		return fmt.Errorf("%s: %w%s", cmd, err, hintFor(err, cfg))
	}

	if err := writeOutput(flags.common.output, out, env); err != nil {
		return err
	}

	logger.Debug("bundle written",
		"command", string(cmd),
		"files", len(paths),
		"bytes", len(out),
		"output", outputName(flags.common.output),
		"elapsed", env.Now().Sub(start))
	return nil
}

// loadConfig returns a copy of the environment config, or the named config
// file when nameOrPath is set.
func loadConfig(nameOrPath string, env *Environment) (*config.Config, error) {
	if nameOrPath == "" {
		cfg := config.DefaultConfig()
		if env.Config != nil {
			*cfg = *env.Config
		}
		return cfg, nil
	}

	cfg, err := config.LoadConfig(nameOrPath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(nameOrPath) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(nameOrPath)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags copies explicitly set flags into cfg.
func mergeFlags(flags *compressFlags, cfg *config.Config) {
	changed := flags.changed
	if changed == nil {
		changed = func(string) bool { return false }
	}

	if changed("embed") {
		cfg.EmbedAssets = flags.css.embed
	}
	if changed("public-root") {
		cfg.PublicRoot = flags.css.publicRoot
	}
	if changed("embed-marker") {
		cfg.EmbedMarker = flags.css.embedMarker
	}
	if changed("strict-mime") {
		cfg.StrictMimeTypes = flags.css.strictMime
	}
	if changed("template-function") {
		cfg.TemplateFunction = flags.jst.templateFunction
	}
	if changed("asset-path") {
		cfg.AssetPath = flags.jst.assetPath
	}
}

// compressorOptions translates cfg into library options.
// Empty fields keep library defaults.
func compressorOptions(cfg *config.Config, logger *slog.Logger) []jammit.Option {
	opts := []jammit.Option{
		jammit.WithLogger(logger),
		jammit.WithStrictMimeTypes(cfg.StrictMimeTypes),
	}
	if cfg.PublicRoot != "" {
		opts = append(opts, jammit.WithPublicRoot(cfg.PublicRoot))
	}
	if cfg.TemplateFunction != "" {
		opts = append(opts, jammit.WithTemplateFunction(cfg.TemplateFunction))
	}
	if cfg.EmbedMarker != "" {
		opts = append(opts, jammit.WithEmbedMarker(cfg.EmbedMarker))
	}
	if cfg.AssetPath != "" {
		opts = append(opts, jammit.WithAssetPath(cfg.AssetPath))
	}
	return opts
}

// hintFor returns an actionable hint for a compression error, or "".
func hintFor(err error, cfg *config.Config) string {
	switch {
	case errors.Is(err, jammit.ErrResourceNotFound):
		root := cfg.PublicRoot
		if root == "" {
			root = jammit.DefaultPublicRoot
		}
		return hints.ForResourceNotFound(root)
	case errors.Is(err, jammit.ErrInvalidTemplateName):
		return hints.ForTemplateName()
	case errors.Is(err, jammit.ErrUnresolvedMimeType):
		return hints.ForUnresolvedMime(jammit.SupportedExtensions())
	default:
		return ""
	}
}

// writeOutput writes out to path atomically, or to stdout when path is "" or "-".
func writeOutput(path, out string, env *Environment) error {
	if path == "" || path == "-" {
		if _, err := env.Stdout.Write([]byte(out)); err != nil {
			return fmt.Errorf("%w: stdout: %v", ErrWriteOutput, err)
		}
		return nil
	}

	if err := fileutil.WriteFileAtomic(path, []byte(out), filePermissions); err != nil {
		return fmt.Errorf("%w: %s: %v%s", ErrWriteOutput, path, err, hints.ForOutputDirectory())
	}
	return nil
}

// outputName labels the destination in log records.
func outputName(path string) string {
	if path == "" || path == "-" {
		return "stdout"
	}
	return path
}
