package pipeline

import "errors"

// Sentinel errors for pipeline stages.
var (
	// ErrResourceNotFound indicates a source file, template, or embedded
	// resource could not be read.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrInvalidTemplateName indicates a template path does not end in
	// /<name>.jst with a word-character name.
	ErrInvalidTemplateName = errors.New("invalid template name")

	// ErrUnresolvedMimeType indicates an embedded resource has an extension
	// outside the MIME table. Only returned in strict mode.
	ErrUnresolvedMimeType = errors.New("unresolved MIME type")

	// ErrInvalidTemplateFunction indicates the template function is not a
	// dotted JavaScript identifier.
	ErrInvalidTemplateFunction = errors.New("invalid template function")

	// ErrInvalidEmbedMarker indicates the embed marker is empty or contains
	// characters that cannot appear inside an unquoted url(...).
	ErrInvalidEmbedMarker = errors.New("invalid embed marker")
)
