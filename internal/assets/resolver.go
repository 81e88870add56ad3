package assets

import (
	"errors"
)

// ScriptResolver combines custom and embedded loaders with fallback logic.
// When a custom loader is configured, it tries custom first, then falls back
// to embedded if the script is not found in the custom location.
type ScriptResolver struct {
	custom   ScriptLoader // nil if no custom path configured
	embedded ScriptLoader
}

// NewScriptResolver creates a ScriptResolver.
// If customBasePath is empty, only embedded scripts are used.
// If customBasePath is set, custom scripts take precedence with fallback to embedded.
// Returns error if customBasePath is set but invalid.
func NewScriptResolver(customBasePath string) (*ScriptResolver, error) {
	resolver := &ScriptResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadScript loads a script, trying the custom loader first if available.
func (r *ScriptResolver) LoadScript(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadScript(name)
	}

	content, err := r.custom.LoadScript(name)
	if err == nil {
		return content, nil
	}

	// Only fall back for "not found" errors, not validation or I/O errors
	if !errors.Is(err, ErrScriptNotFound) {
		return "", err
	}

	return r.embedded.LoadScript(name)
}

// HasCustomLoader returns true if a custom script loader is configured.
func (r *ScriptResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ ScriptLoader = (*ScriptResolver)(nil)
