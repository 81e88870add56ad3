package assets

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadScript loads a bundled script by name using the default embedded loader.
// The name should not include the .js extension or path components.
// Returns ErrScriptNotFound if the script does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadScript(name string) (string, error) {
	return defaultLoader.LoadScript(name)
}
