package jammit

import (
	"errors"

	"github.com/alnah/go-jammit/internal/assets"
	"github.com/alnah/go-jammit/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	// ErrResourceNotFound is returned when a source file, template, or
	// embedded resource cannot be read.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrInvalidTemplateName is returned when a template path is not <name>.jst.
	ErrInvalidTemplateName = errors.New("invalid template name")

	// ErrUnresolvedMimeType is returned in strict mode when an embedded
	// resource's extension has no known MIME type.
	ErrUnresolvedMimeType = errors.New("unresolved MIME type")

	ErrInvalidVariant          = errors.New("invalid embedding variant")
	ErrMinification            = errors.New("minification failed")
	ErrInvalidTemplateFunction = errors.New("invalid template function")
	ErrInvalidEmbedMarker      = errors.New("invalid embed marker")
	ErrInvalidAssetPath        = errors.New("invalid asset path")
)

// convertError maps internal errors to public errors.
func convertError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, pipeline.ErrResourceNotFound),
		errors.Is(err, assets.ErrResourceNotFound),
		errors.Is(err, assets.ErrPathTraversal):
		return wrapError(ErrResourceNotFound, err)
	case errors.Is(err, pipeline.ErrInvalidTemplateName):
		return wrapError(ErrInvalidTemplateName, err)
	case errors.Is(err, pipeline.ErrUnresolvedMimeType):
		return wrapError(ErrUnresolvedMimeType, err)
	case errors.Is(err, pipeline.ErrInvalidTemplateFunction):
		return wrapError(ErrInvalidTemplateFunction, err)
	case errors.Is(err, pipeline.ErrInvalidEmbedMarker):
		return wrapError(ErrInvalidEmbedMarker, err)
	case errors.Is(err, assets.ErrInvalidBasePath),
		errors.Is(err, assets.ErrInvalidAssetName),
		errors.Is(err, assets.ErrScriptNotFound),
		errors.Is(err, assets.ErrAssetRead):
		return wrapError(ErrInvalidAssetPath, err)
	default:
		return err
	}
}

// wrapError creates a new error that wraps the original with a public sentinel.
// The resulting error preserves the original message via Error() and supports
// errors.Is() matching against the public sentinel via Unwrap().
func wrapError(sentinel, original error) error {
	return &wrappedError{sentinel: sentinel, original: original}
}

type wrappedError struct {
	sentinel error
	original error
}

func (e *wrappedError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is() matching.
// Internal errors are not exposed since they're in internal/ packages.
func (e *wrappedError) Unwrap() error {
	return e.sentinel
}
