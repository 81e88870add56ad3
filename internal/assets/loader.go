package assets

// JSTScriptName is the name of the bundled JST bootstrap script.
const JSTScriptName = "jst"

// ScriptLoader defines the contract for loading bundled JavaScript helpers.
// Implementations may load from embedded assets, filesystem, etc.
type ScriptLoader interface {
	// LoadScript loads a script by name (without .js extension).
	// Returns ErrScriptNotFound if the script doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadScript(name string) (string, error)
}

// ResourceLoader reads embeddable resources by their URL path identifier.
type ResourceLoader interface {
	// LoadResource returns the raw bytes of the resource behind identifier
	// (an absolute URL path such as /images/embed/logo.png).
	// Returns ErrResourceNotFound if the resource cannot be read.
	LoadResource(identifier string) ([]byte, error)
}
