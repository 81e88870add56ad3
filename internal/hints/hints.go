// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForResourceNotFound returns hints for unreadable sources or embedded resources.
// url(/images/embed/a.png) is read from <publicRoot>/images/embed/a.png.
func ForResourceNotFound(publicRoot string) string {
	var hints []string
	if publicRoot != "" {
		hints = append(hints, "embedded urls resolve under "+filepath.Clean(publicRoot)+", set --public-root to change it")
	}
	hints = append(hints, "source paths are relative to the working directory")
	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-jammit/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForTemplateName returns a hint for template paths that are not <name>.jst.
func ForTemplateName() string {
	return format("template files must be named <word>.jst, e.g. user_row.jst")
}

// ForUnresolvedMime returns a hint listing the extensions that can be embedded.
func ForUnresolvedMime(supported []string) string {
	if len(supported) == 0 {
		return ""
	}
	return formatHints([]string{
		"supported: " + strings.Join(supported, ", "),
		"drop --strict-mime to embed with an empty type",
	})
}

// ForVariant returns a hint listing the embedding variants.
func ForVariant() string {
	return format("use --embed none, datauri, or mhtml")
}

// ForOutputDirectory returns hints for output file write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
