package pipeline

import (
	"path"
	"sort"
)

// mimeTypes is the fixed table of embeddable image types, keyed by extension.
var mimeTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
}

// MimeType returns the MIME type for the extension of p.
// Matching is exact, so ".PNG" is unknown. The second result reports whether
// the extension is in the table.
func MimeType(p string) (string, bool) {
	mt, ok := mimeTypes[path.Ext(p)]
	return mt, ok
}

// SupportedExtensions returns the extensions in the MIME table, sorted.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(mimeTypes))
	for ext := range mimeTypes {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
