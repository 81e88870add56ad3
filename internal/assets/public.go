package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPublicRoot is the directory resource identifiers resolve against
// when none is configured.
const DefaultPublicRoot = "public"

// PublicRoot resolves embeddable resource identifiers against a public
// directory. The directory is not required to exist until a resource is read,
// so stylesheets without embeddable references never touch the filesystem.
// Implements ResourceLoader interface.
type PublicRoot struct {
	basePath string
}

// NewPublicRoot creates a PublicRoot for dir.
// Returns ErrInvalidBasePath if dir is empty or cannot be made absolute.
func NewPublicRoot(dir string) (*PublicRoot, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}
	absPath, err := resolveBasePath(dir)
	if err != nil {
		return nil, err
	}
	return &PublicRoot{basePath: absPath}, nil
}

// Dir returns the absolute public directory.
func (p *PublicRoot) Dir() string {
	return p.basePath
}

// Path maps identifier to a file path under the public root.
// Returns ErrPathTraversal if the identifier escapes the root.
func (p *PublicRoot) Path(identifier string) (string, error) {
	rel := strings.TrimLeft(identifier, "/")
	if rel == "" {
		return "", fmt.Errorf("%w: empty identifier", ErrResourceNotFound)
	}
	filePath := filepath.Join(p.basePath, filepath.FromSlash(rel))
	if err := verifyPathContainment(p.basePath, filePath); err != nil {
		return "", fmt.Errorf("%w: %s", err, identifier)
	}
	return filePath, nil
}

// LoadResource reads the resource behind identifier.
// Any read failure is reported as ErrResourceNotFound.
func (p *PublicRoot) LoadResource(identifier string) ([]byte, error) {
	filePath, err := p.Path(identifier)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(filePath) // #nosec G304 -- path validated above
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrResourceNotFound, identifier, err)
	}

	return content, nil
}

// Compile-time interface check.
var _ ResourceLoader = (*PublicRoot)(nil)
