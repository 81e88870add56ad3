package main

import (
	"errors"
	"os"

	jammit "github.com/alnah/go-jammit"
	"github.com/alnah/go-jammit/internal/config"
)

// Exit codes for the jammit CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error, including minifier failures
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Source or resource not found, output not writable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, jammit.ErrResourceNotFound) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, jammit.ErrInvalidVariant) ||
		errors.Is(err, jammit.ErrInvalidTemplateName) ||
		errors.Is(err, jammit.ErrInvalidTemplateFunction) ||
		errors.Is(err, jammit.ErrInvalidEmbedMarker) ||
		errors.Is(err, jammit.ErrInvalidAssetPath) ||
		errors.Is(err, jammit.ErrUnresolvedMimeType) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, ErrUsage) {
		return ExitUsage
	}

	return ExitGeneral
}
