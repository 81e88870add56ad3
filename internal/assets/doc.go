// Package assets provides the bundled JavaScript helpers and the filesystem
// roots that the compressor reads embeddable resources from.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	ScriptLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (bundled scripts)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── ScriptResolver    - combines both with custom-first fallback
//
//	ResourceLoader (interface)
//	    │
//	    └── PublicRoot        - resolves embeddable resource identifiers
//
// EmbeddedLoader provides the built-in JST bootstrap (jst.js) embedded at
// compile time. FilesystemLoader lets users override it from a directory.
// ScriptResolver tries the custom loader first and falls back to the embedded
// one when the script is not found there.
//
// PublicRoot maps absolute URL paths found in stylesheets (for example
// /assets/embed/logo.png) onto files under the public directory.
//
// # Directory Structure
//
//	{assetPath}/
//	└── scripts/
//	    └── {name}.js            # Bootstrap scripts (e.g., jst.js)
//
//	{publicRoot}/
//	└── ...                      # Mirrors the URL space served to browsers
//
// # Security
//
// Script names are validated to prevent path traversal attacks. Both
// FilesystemLoader and PublicRoot resolve symlinks and verify that the final
// path stays within their base directory.
package assets
